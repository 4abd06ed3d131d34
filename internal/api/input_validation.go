package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type createStudentInput struct {
	Name string `json:"name" validate:"required,max=120"`
	Age  int    `json:"age" validate:"required,min=14,max=30"`
}

type updateStudentInput struct {
	CurrentStreak *int    `json:"current_streak" validate:"omitempty,min=0"`
	LastStudyDate *string `json:"last_study_date" validate:"omitempty,datetime=2006-01-02"`
}

type createStudyLogInput struct {
	StudentID uint    `json:"student_id" validate:"required"`
	Hours     float64 `json:"hours" validate:"min=0,max=24"`
	StudyDate string  `json:"study_date" validate:"omitempty,datetime=2006-01-02"`
}

type updateStudyLogInput struct {
	Hours float64 `json:"hours" validate:"min=0,max=24"`
}

type createTaskInput struct {
	StudentID        uint   `json:"student_id" validate:"required"`
	Title            string `json:"title" validate:"required,max=200"`
	Subject          string `json:"subject" validate:"required,oneof=physics chemistry biology"`
	Cadence          string `json:"cadence" validate:"required,oneof=daily weekly monthly"`
	EstimatedMinutes *int   `json:"estimated_minutes" validate:"omitempty,min=0"`
}

type updateTaskInput struct {
	Title            *string `json:"title" validate:"omitempty,max=200"`
	Subject          *string `json:"subject" validate:"omitempty,oneof=physics chemistry biology"`
	Cadence          *string `json:"cadence" validate:"omitempty,oneof=daily weekly monthly"`
	EstimatedMinutes *int    `json:"estimated_minutes" validate:"omitempty,min=0"`
	IsCompleted      *bool   `json:"is_completed"`
}

type adminLoginInput struct {
	Password string `json:"password" validate:"required"`
}

// parseBody binds the JSON payload and runs struct-tag validation in one
// step; handlers reject on any error before touching the store.
func (handler *Handler) parseBody(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return err
	}
	return handler.validate.Struct(target)
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func normalizeName(raw string) string {
	return strings.TrimSpace(raw)
}
