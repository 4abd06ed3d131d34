package api

import (
	"time"

	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/arjunr07/studybuddy/internal/models"
	"github.com/arjunr07/studybuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListStudents(c *fiber.Ctx) error {
	students, err := handler.repos.Students.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch students")
	}
	return dataResponse(c, students)
}

func (handler *Handler) GetStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	student, found, err := handler.repos.Students.FindByID(studentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}
	return dataResponse(c, student)
}

// CreateStudent registers a student, or returns the existing one when an
// exact (name, age) pair already exists. Registration is the only
// "identity" in the student-facing API.
func (handler *Handler) CreateStudent(c *fiber.Ctx) error {
	input := createStudentInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "name and age (14-30) are required")
	}

	name := normalizeName(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name and age (14-30) are required")
	}

	existing, found, err := handler.repos.Students.FindByNameAndAge(name, input.Age)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}
	if found {
		return dataResponse(c, existing)
	}

	student := models.Student{
		Name:      name,
		Age:       input.Age,
		CreatedAt: time.Now().In(handler.location),
	}
	if err := handler.repos.Students.Create(&student); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create student")
	}
	return dataResponse(c, student)
}

// UpdateStudent applies a streak pair verbatim. It exists for clients
// that run the streak computation themselves; the study-log endpoint
// already does it server-side.
func (handler *Handler) UpdateStudent(c *fiber.Ctx) error {
	studentID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid student id")
	}

	input := updateStudentInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	student, found, err := handler.repos.Students.FindByID(studentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch student")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "student not found")
	}

	streak := student.CurrentStreak
	if input.CurrentStreak != nil {
		streak = *input.CurrentStreak
	}

	lastStudyDate := student.LastStudyDate
	if input.LastStudyDate != nil {
		parsed, err := parseDayParam(*input.LastStudyDate, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid last_study_date")
		}
		day := services.DateAtLocation(parsed, handler.location)
		lastStudyDate = &day
	}

	if err := handler.repos.Students.ApplyStreak(studentID, streak, lastStudyDate); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update student")
	}
	metrics.StreakUpdates.Inc()

	student.CurrentStreak = streak
	student.LastStudyDate = lastStudyDate
	return dataResponse(c, student)
}
