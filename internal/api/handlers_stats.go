package api

import (
	"time"

	"github.com/arjunr07/studybuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetCompletionStats folds the student's current task rows into counts
// and rounded percentages at read time; nothing is materialized.
func (handler *Handler) GetCompletionStats(c *fiber.Ctx) error {
	studentID, err := parseStudentIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "student_id required")
	}

	tasks, err := handler.repos.Tasks.ListByStudent(studentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	return dataResponse(c, services.BuildCompletionStats(tasks))
}

func (handler *Handler) GetStudyTimeStats(c *fiber.Ctx) error {
	studentID, err := parseStudentIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "student_id required")
	}

	logs, err := handler.study.AllLogs(studentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch study logs")
	}
	stats := services.BuildStudyTimeStats(logs, time.Now().In(handler.location), handler.location)
	return dataResponse(c, stats)
}
