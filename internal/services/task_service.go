package services

import (
	"errors"
	"time"

	"github.com/arjunr07/studybuddy/internal/models"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrTaskLoadFailed = errors.New("load task failed")
	ErrTaskSaveFailed = errors.New("save task failed")
)

type TaskStore interface {
	FindByID(taskID uint) (models.Task, bool, error)
	Save(task *models.Task) error
	DeleteByID(taskID uint) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

// SetCompletion moves is_completed and keeps completed_at honest: it is
// stamped exactly on the false-to-true transition and cleared on
// true-to-false. Setting the same value twice is a no-op write.
func (service *TaskService) SetCompletion(taskID uint, completed bool, now time.Time) (models.Task, error) {
	task, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return models.Task{}, ErrTaskLoadFailed
	}
	if !found {
		return models.Task{}, ErrTaskNotFound
	}

	if task.IsCompleted != completed {
		task.IsCompleted = completed
		if completed {
			completedAt := now
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
		if err := service.tasks.Save(&task); err != nil {
			return models.Task{}, ErrTaskSaveFailed
		}
	}

	return task, nil
}

// Toggle flips completion from its current state.
func (service *TaskService) Toggle(taskID uint, now time.Time) (models.Task, error) {
	task, found, err := service.tasks.FindByID(taskID)
	if err != nil {
		return models.Task{}, ErrTaskLoadFailed
	}
	if !found {
		return models.Task{}, ErrTaskNotFound
	}
	return service.SetCompletion(taskID, !task.IsCompleted, now)
}

func (service *TaskService) Delete(taskID uint) error {
	if err := service.tasks.DeleteByID(taskID); err != nil {
		return ErrTaskSaveFailed
	}
	return nil
}
