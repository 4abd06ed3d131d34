package models

import "time"

const (
	SubjectPhysics   = "physics"
	SubjectChemistry = "chemistry"
	SubjectBiology   = "biology"
)

const (
	CadenceDaily   = "daily"
	CadenceWeekly  = "weekly"
	CadenceMonthly = "monthly"
)

// Task is free-form per-student CRUD with no coupling to the streak
// engine. CompletedAt is set exactly when IsCompleted flips to true and
// cleared when it flips back.
type Task struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	StudentID        uint       `gorm:"not null;index" json:"student_id"`
	Title            string     `gorm:"not null" json:"title"`
	Subject          string     `gorm:"not null" json:"subject"`
	Cadence          string     `gorm:"not null" json:"cadence"`
	IsCompleted      bool       `gorm:"not null;default:false" json:"is_completed"`
	EstimatedMinutes *int       `json:"estimated_minutes"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
}

func IsValidSubject(subject string) bool {
	switch subject {
	case SubjectPhysics, SubjectChemistry, SubjectBiology:
		return true
	default:
		return false
	}
}

func IsValidCadence(cadence string) bool {
	switch cadence {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	default:
		return false
	}
}
