package models

import "time"

// MaxDailyHours caps a single day's logged study time.
const MaxDailyHours = 24.0

// StudyLog holds the hours studied on one calendar day. The unique index
// on (student_id, study_date) keeps the one-row-per-day invariant even
// when two requests race on the same day.
type StudyLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"not null;uniqueIndex:uidx_student_study_day" json:"student_id"`
	StudyDate time.Time `gorm:"type:date;not null;uniqueIndex:uidx_student_study_day" json:"study_date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
