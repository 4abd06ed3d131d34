package db

import (
	"time"

	"github.com/arjunr07/studybuddy/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyLogRepository struct {
	database *gorm.DB
}

func NewStudyLogRepository(database *gorm.DB) *StudyLogRepository {
	return &StudyLogRepository{database: database}
}

func (repo *StudyLogRepository) ListRecentByStudent(studentID uint, limit int) ([]models.StudyLog, error) {
	logs := make([]models.StudyLog, 0)
	query := repo.database.
		Where("student_id = ?", studentID).
		Order("study_date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *StudyLogRepository) ListByStudent(studentID uint) ([]models.StudyLog, error) {
	logs := make([]models.StudyLog, 0)
	if err := repo.database.
		Where("student_id = ?", studentID).
		Order("study_date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *StudyLogRepository) FindByID(logID uint) (models.StudyLog, bool, error) {
	entry := models.StudyLog{}
	result := repo.database.Limit(1).Find(&entry, logID)
	if result.Error != nil {
		return models.StudyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *StudyLogRepository) FindByStudentAndDayRange(studentID uint, dayStart time.Time, dayEnd time.Time) (models.StudyLog, bool, error) {
	entry := models.StudyLog{}
	result := repo.database.
		Where("student_id = ? AND study_date >= ? AND study_date < ?", studentID, dayStart, dayEnd).
		Order("study_date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.StudyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.StudyLog{}, false, nil
	}
	return entry, true, nil
}

// Upsert inserts the day's log or, when the (student_id, study_date) row
// already exists, replaces its hours. Last write wins; hours never
// accumulate. The conflict target is the unique index, so the invariant
// holds even when two requests race on the same day.
func (repo *StudyLogRepository) Upsert(entry *models.StudyLog) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "study_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"hours", "updated_at"}),
	}).Create(entry).Error
}

func (repo *StudyLogRepository) UpdateHours(entry *models.StudyLog) error {
	return repo.database.Model(entry).Select("hours").Updates(entry).Error
}

func (repo *StudyLogRepository) CountAll() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.StudyLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
