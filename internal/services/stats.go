package services

import (
	"math"
	"time"

	"github.com/arjunr07/studybuddy/internal/models"
)

type SubjectCompletion struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type CompletionStats struct {
	Total      int                          `json:"total"`
	Completed  int                          `json:"completed"`
	Percentage int                          `json:"percentage"`
	BySubject  map[string]SubjectCompletion `json:"by_subject"`
}

type DayHours struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Hours   float64 `json:"hours"`
}

type StudyTimeStats struct {
	TodayHours float64    `json:"today_hours"`
	TotalHours float64    `json:"total_hours"`
	Weekly     []DayHours `json:"weekly"`
}

// CompletionPercentage rounds 100*completed/total to the nearest whole
// percent, with 0 for an empty task list.
func CompletionPercentage(completed int, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// BuildCompletionStats folds over the current task rows; nothing here is
// persisted or cached.
func BuildCompletionStats(tasks []models.Task) CompletionStats {
	stats := CompletionStats{
		BySubject: map[string]SubjectCompletion{
			models.SubjectPhysics:   {},
			models.SubjectChemistry: {},
			models.SubjectBiology:   {},
		},
	}

	for _, task := range tasks {
		stats.Total++
		subject := stats.BySubject[task.Subject]
		subject.Total++
		if task.IsCompleted {
			stats.Completed++
			subject.Completed++
		}
		stats.BySubject[task.Subject] = subject
	}

	stats.Percentage = CompletionPercentage(stats.Completed, stats.Total)
	return stats
}

// BuildStudyTimeStats reduces a student's logs to today's hours, the
// lifetime total, and a 7-day series ending today (oldest first). Days
// without a log contribute zero hours.
func BuildStudyTimeStats(logs []models.StudyLog, now time.Time, location *time.Location) StudyTimeStats {
	today := DateAtLocation(now, location)

	hoursByDay := make(map[string]float64, len(logs))
	total := 0.0
	for _, entry := range logs {
		key := DateAtLocation(entry.StudyDate, location).Format("2006-01-02")
		hoursByDay[key] = entry.Hours
		total += entry.Hours
	}

	weekly := make([]DayHours, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		key := day.Format("2006-01-02")
		weekly = append(weekly, DayHours{
			Date:    key,
			Weekday: day.Format("Mon"),
			Hours:   hoursByDay[key],
		})
	}

	return StudyTimeStats{
		TodayHours: hoursByDay[today.Format("2006-01-02")],
		TotalHours: total,
		Weekly:     weekly,
	}
}
