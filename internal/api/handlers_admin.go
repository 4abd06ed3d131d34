package api

import (
	"github.com/arjunr07/studybuddy/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type adminStudentSummary struct {
	Student   models.Student `json:"student"`
	TaskCount int64          `json:"task_count"`
}

func (handler *Handler) AdminLogin(c *fiber.Ctx) error {
	if handler.adminPasswordHash == "" {
		return apiError(c, fiber.StatusServiceUnavailable, "admin access is not configured")
	}

	input := adminLoginInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password required")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(handler.adminPasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	}

	if err := handler.setAdminCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue session")
	}
	return dataResponse(c, fiber.Map{"ok": true})
}

func (handler *Handler) AdminLogout(c *fiber.Ctx) error {
	handler.clearAdminCookie(c)
	return dataResponse(c, fiber.Map{"ok": true})
}

func (handler *Handler) AdminOverview(c *fiber.Ctx) error {
	studentCount, err := handler.repos.Students.CountAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch overview")
	}
	taskCount, err := handler.repos.Tasks.CountAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch overview")
	}
	logCount, err := handler.repos.StudyLogs.CountAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch overview")
	}

	return dataResponse(c, fiber.Map{
		"students":   studentCount,
		"tasks":      taskCount,
		"study_logs": logCount,
	})
}

func (handler *Handler) AdminListStudents(c *fiber.Ctx) error {
	students, err := handler.repos.Students.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch students")
	}
	taskCounts, err := handler.repos.Tasks.CountByStudent()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch students")
	}

	summaries := make([]adminStudentSummary, 0, len(students))
	for _, student := range students {
		summaries = append(summaries, adminStudentSummary{
			Student:   student,
			TaskCount: taskCounts[student.ID],
		})
	}
	return dataResponse(c, summaries)
}
