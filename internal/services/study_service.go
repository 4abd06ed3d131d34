package services

import (
	"errors"
	"time"

	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/arjunr07/studybuddy/internal/models"
)

var (
	ErrInvalidHours       = errors.New("hours must be between 0 and 24")
	ErrStudentNotFound    = errors.New("student not found")
	ErrStudyLogNotFound   = errors.New("study log not found")
	ErrStudyLogLoadFailed = errors.New("load study log failed")
	ErrStudyLogSaveFailed = errors.New("save study log failed")
	ErrStreakSaveFailed   = errors.New("save streak failed")
)

type StudyLogStore interface {
	FindByID(logID uint) (models.StudyLog, bool, error)
	FindByStudentAndDayRange(studentID uint, dayStart time.Time, dayEnd time.Time) (models.StudyLog, bool, error)
	Upsert(entry *models.StudyLog) error
	UpdateHours(entry *models.StudyLog) error
	ListRecentByStudent(studentID uint, limit int) ([]models.StudyLog, error)
	ListByStudent(studentID uint) ([]models.StudyLog, error)
}

type StudentStore interface {
	FindByID(studentID uint) (models.Student, bool, error)
	ApplyStreak(studentID uint, streak int, lastStudyDate *time.Time) error
}

type StudyService struct {
	logs     StudyLogStore
	students StudentStore
	location *time.Location
}

func NewStudyService(logs StudyLogStore, students StudentStore, location *time.Location) *StudyService {
	if location == nil {
		location = time.UTC
	}
	return &StudyService{
		logs:     logs,
		students: students,
		location: location,
	}
}

// LogStudyTime records hours studied for the calendar day of day,
// replacing any hours already logged for that day. The streak advances
// only when day is the current calendar day: backfilling an earlier day
// records its hours without moving the streak pair. It returns the
// stored log and the student as persisted after the call.
func (service *StudyService) LogStudyTime(studentID uint, hours float64, day time.Time, now time.Time) (models.StudyLog, models.Student, error) {
	if hours < 0 || hours > models.MaxDailyHours {
		return models.StudyLog{}, models.Student{}, ErrInvalidHours
	}

	student, found, err := service.students.FindByID(studentID)
	if err != nil {
		return models.StudyLog{}, models.Student{}, ErrStudyLogLoadFailed
	}
	if !found {
		return models.StudyLog{}, models.Student{}, ErrStudentNotFound
	}

	dayStart, dayEnd := DayRange(day, service.location)

	entry := models.StudyLog{
		StudentID: studentID,
		StudyDate: dayStart,
		Hours:     hours,
	}
	if err := service.logs.Upsert(&entry); err != nil {
		return models.StudyLog{}, models.Student{}, ErrStudyLogSaveFailed
	}

	// Re-read the canonical row: on a conflict-update the insert model
	// does not carry the surviving row's id or created_at.
	stored, found, err := service.logs.FindByStudentAndDayRange(studentID, dayStart, dayEnd)
	if err != nil || !found {
		return models.StudyLog{}, models.Student{}, ErrStudyLogLoadFailed
	}

	updated := student
	if SameDay(dayStart, now, service.location) {
		updated, err = service.advanceStreak(student, dayStart)
		if err != nil {
			return models.StudyLog{}, models.Student{}, err
		}
	}

	return stored, updated, nil
}

// ReplaceLogHours overwrites the hours of an existing log. It feeds the
// streak engine only when the log belongs to the current calendar day;
// editing an older day's hours must not move the streak.
func (service *StudyService) ReplaceLogHours(logID uint, hours float64, now time.Time) (models.StudyLog, error) {
	if hours < 0 || hours > models.MaxDailyHours {
		return models.StudyLog{}, ErrInvalidHours
	}

	entry, found, err := service.logs.FindByID(logID)
	if err != nil {
		return models.StudyLog{}, ErrStudyLogLoadFailed
	}
	if !found {
		return models.StudyLog{}, ErrStudyLogNotFound
	}

	entry.Hours = hours
	if err := service.logs.UpdateHours(&entry); err != nil {
		return models.StudyLog{}, ErrStudyLogSaveFailed
	}

	if SameDay(entry.StudyDate, now, service.location) {
		student, found, err := service.students.FindByID(entry.StudentID)
		if err != nil {
			return models.StudyLog{}, ErrStudyLogLoadFailed
		}
		if found {
			if _, err := service.advanceStreak(student, DateAtLocation(now, service.location)); err != nil {
				return models.StudyLog{}, err
			}
		}
	}

	return entry, nil
}

func (service *StudyService) RecentLogs(studentID uint, limit int) ([]models.StudyLog, error) {
	return service.logs.ListRecentByStudent(studentID, limit)
}

func (service *StudyService) AllLogs(studentID uint) ([]models.StudyLog, error) {
	return service.logs.ListByStudent(studentID)
}

// advanceStreak persists the streak pair in a single write, or skips
// persistence when the student already studied on day.
func (service *StudyService) advanceStreak(student models.Student, day time.Time) (models.Student, error) {
	next, changed := ComputeNextStreak(student.LastStudyDate, student.CurrentStreak, day, service.location)
	if !changed {
		return student, nil
	}

	studyDay := DateAtLocation(day, service.location)
	if err := service.students.ApplyStreak(student.ID, next, &studyDay); err != nil {
		return models.Student{}, ErrStreakSaveFailed
	}
	metrics.StreakUpdates.Inc()

	student.CurrentStreak = next
	student.LastStudyDate = &studyDay
	return student, nil
}
