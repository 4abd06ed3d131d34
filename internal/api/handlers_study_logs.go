package api

import (
	"errors"
	"time"

	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/arjunr07/studybuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListStudyLogs(c *fiber.Ctx) error {
	studentID, err := parseStudentIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "student_id required")
	}

	logs, err := handler.study.RecentLogs(studentID, recentLogsLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch study logs")
	}
	return dataResponse(c, logs)
}

// CreateStudyLog is the write path behind "log hours today": an
// idempotent per-day upsert followed by one streak advance. Repeating
// the call replaces the day's hours, it never adds a second row.
func (handler *Handler) CreateStudyLog(c *fiber.Ctx) error {
	input := createStudyLogInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "hours must be between 0 and 24")
	}

	// The streak always runs against request-time "today"; a pinned
	// study_date backfills hours without touching the streak.
	now := time.Now().In(handler.location)
	day := now
	if input.StudyDate != "" {
		parsed, err := parseDayParam(input.StudyDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid study_date")
		}
		day = parsed
	}

	entry, student, err := handler.study.LogStudyTime(input.StudentID, input.Hours, day, now)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidHours):
			return apiError(c, fiber.StatusBadRequest, "hours must be between 0 and 24")
		case errors.Is(err, services.ErrStudentNotFound):
			return apiError(c, fiber.StatusNotFound, "student not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save study log")
		}
	}
	metrics.StudyLogsSaved.Inc()

	return dataResponse(c, fiber.Map{
		"log":     entry,
		"student": student,
	})
}

// UpdateStudyLog keeps the original two-endpoint contract alive: PATCH
// replaces the hours of a known log id with the same validation and
// replace semantics as the POST path.
func (handler *Handler) UpdateStudyLog(c *fiber.Ctx) error {
	logID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid study log id")
	}

	input := updateStudyLogInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "hours must be between 0 and 24")
	}

	entry, err := handler.study.ReplaceLogHours(logID, input.Hours, time.Now().In(handler.location))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidHours):
			return apiError(c, fiber.StatusBadRequest, "hours must be between 0 and 24")
		case errors.Is(err, services.ErrStudyLogNotFound):
			return apiError(c, fiber.StatusNotFound, "study log not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update study log")
		}
	}
	metrics.StudyLogsSaved.Inc()

	return dataResponse(c, entry)
}
