package db

import (
	"github.com/arjunr07/studybuddy/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

func (repo *TaskRepository) ListAll() ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByStudent(studentID uint) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByID(taskID uint) (models.Task, bool, error) {
	task := models.Task{}
	result := repo.database.Limit(1).Find(&task, taskID)
	if result.Error != nil {
		return models.Task{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Task{}, false, nil
	}
	return task, true, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) Save(task *models.Task) error {
	return repo.database.Save(task).Error
}

// DeleteByID is a hard delete. Deleting an already-missing task is not
// an error, matching unconditional delete semantics.
func (repo *TaskRepository) DeleteByID(taskID uint) error {
	return repo.database.Delete(&models.Task{}, taskID).Error
}

func (repo *TaskRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Task{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type taskCountRow struct {
	StudentID uint  `gorm:"column:student_id"`
	Total     int64 `gorm:"column:total"`
}

func (repo *TaskRepository) CountByStudent() (map[uint]int64, error) {
	rows := make([]taskCountRow, 0)
	if err := repo.database.Model(&models.Task{}).
		Select("student_id, COUNT(*) AS total").
		Group("student_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.StudentID] = row.Total
	}
	return counts, nil
}
