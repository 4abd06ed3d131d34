package models

import "time"

const (
	MinStudentAge = 14
	MaxStudentAge = 30
)

// Student is registered once and afterwards only its streak pair changes.
// LastStudyDate is nil until the first study session is logged.
type Student struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Age           int        `gorm:"not null" json:"age"`
	CurrentStreak int        `gorm:"not null;default:0" json:"current_streak"`
	LastStudyDate *time.Time `gorm:"type:date" json:"last_study_date"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
}
