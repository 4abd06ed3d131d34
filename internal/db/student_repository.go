package db

import (
	"time"

	"github.com/arjunr07/studybuddy/internal/models"
	"gorm.io/gorm"
)

type StudentRepository struct {
	database *gorm.DB
}

func NewStudentRepository(database *gorm.DB) *StudentRepository {
	return &StudentRepository{database: database}
}

func (repo *StudentRepository) ListAll() ([]models.Student, error) {
	students := make([]models.Student, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (repo *StudentRepository) FindByID(studentID uint) (models.Student, bool, error) {
	student := models.Student{}
	result := repo.database.Limit(1).Find(&student, studentID)
	if result.Error != nil {
		return models.Student{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Student{}, false, nil
	}
	return student, true, nil
}

// FindByNameAndAge backs the find-or-create registration contract:
// an exact (name, age) match counts as the same student.
func (repo *StudentRepository) FindByNameAndAge(name string, age int) (models.Student, bool, error) {
	student := models.Student{}
	result := repo.database.
		Where("name = ? AND age = ?", name, age).
		Order("created_at ASC, id ASC").
		Limit(1).
		Find(&student)
	if result.Error != nil {
		return models.Student{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Student{}, false, nil
	}
	return student, true, nil
}

func (repo *StudentRepository) Create(student *models.Student) error {
	return repo.database.Create(student).Error
}

// ApplyStreak writes the streak counter and last study date in one
// UPDATE so the pair can never be observed half-written.
func (repo *StudentRepository) ApplyStreak(studentID uint, streak int, lastStudyDate *time.Time) error {
	return repo.database.Model(&models.Student{}).
		Where("id = ?", studentID).
		Updates(map[string]any{
			"current_streak":  streak,
			"last_study_date": lastStudyDate,
		}).Error
}

func (repo *StudentRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Student{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
