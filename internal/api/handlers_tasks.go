package api

import (
	"errors"
	"time"

	"github.com/arjunr07/studybuddy/internal/models"
	"github.com/arjunr07/studybuddy/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	if c.Query("student_id") == "" {
		tasks, err := handler.repos.Tasks.ListAll()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
		}
		return dataResponse(c, tasks)
	}

	studentID, err := parseStudentIDQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid student_id")
	}
	tasks, err := handler.repos.Tasks.ListByStudent(studentID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch tasks")
	}
	return dataResponse(c, tasks)
}

// CreateTask is plain insert CRUD. It is deliberately not idempotent:
// retrying the request creates a second task.
func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	input := createTaskInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task payload")
	}

	task := models.Task{
		StudentID:        input.StudentID,
		Title:            normalizeName(input.Title),
		Subject:          input.Subject,
		Cadence:          input.Cadence,
		EstimatedMinutes: input.EstimatedMinutes,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.repos.Tasks.Create(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return dataResponse(c, task)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	input := updateTaskInput{}
	if err := handler.parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task payload")
	}

	task, found, err := handler.repos.Tasks.FindByID(taskID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch task")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "task not found")
	}

	if input.Title != nil {
		task.Title = normalizeName(*input.Title)
	}
	if input.Subject != nil {
		task.Subject = *input.Subject
	}
	if input.Cadence != nil {
		task.Cadence = *input.Cadence
	}
	if input.EstimatedMinutes != nil {
		task.EstimatedMinutes = input.EstimatedMinutes
	}
	if err := handler.repos.Tasks.Save(&task); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update task")
	}

	// Completion goes through the service so completed_at stays honest.
	if input.IsCompleted != nil {
		task, err = handler.tasks.SetCompletion(taskID, *input.IsCompleted, time.Now().In(handler.location))
		if err != nil {
			if errors.Is(err, services.ErrTaskNotFound) {
				return apiError(c, fiber.StatusNotFound, "task not found")
			}
			return apiError(c, fiber.StatusInternalServerError, "failed to update task")
		}
	}

	return dataResponse(c, task)
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid task id")
	}

	if err := handler.tasks.Delete(taskID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete task")
	}
	return dataResponse(c, nil)
}
