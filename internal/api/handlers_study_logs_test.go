package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arjunr07/studybuddy/internal/models"
)

type studyLogResult struct {
	Log     models.StudyLog `json:"log"`
	Student models.Student  `json:"student"`
}

func TestListStudyLogsRequiresStudentID(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/study_logs", nil)
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
	require.Equal(t, "student_id required", decodeError(t, response))
}

func TestCreateStudyLogUnknownStudent(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
		"student_id": 42,
		"hours":      2,
	})
	require.Equal(t, http.StatusNotFound, response.StatusCode)
	require.Equal(t, "student not found", decodeError(t, response))
}

func TestCreateStudyLogValidatesHours(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	for _, hours := range []float64{-1, 24.5, 100} {
		response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
			"student_id": student.ID,
			"hours":      hours,
		})
		require.Equal(t, http.StatusBadRequest, response.StatusCode, "hours=%v", hours)
	}

	// Both ends of the range are loggable, zero included.
	for _, hours := range []float64{0, 24} {
		response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
			"student_id": student.ID,
			"hours":      hours,
		})
		require.Equal(t, http.StatusOK, response.StatusCode, "hours=%v", hours)
	}
}

func TestCreateStudyLogReplacesSameDayEntry(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	payload := map[string]any{
		"student_id": student.ID,
		"hours":      2.5,
		"study_date": "2024-03-10",
	}
	response := performRequest(t, app, http.MethodPost, "/api/study_logs", payload)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var first studyLogResult
	decodeData(t, response, &first)
	require.Equal(t, 2.5, first.Log.Hours)

	payload["hours"] = 6.0
	response = performRequest(t, app, http.MethodPost, "/api/study_logs", payload)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var second studyLogResult
	decodeData(t, response, &second)
	require.Equal(t, 6.0, second.Log.Hours, "same-day hours are replaced, not summed")
	require.Equal(t, first.Log.ID, second.Log.ID, "the day keeps a single row")

	target := fmt.Sprintf("/api/study_logs?student_id=%d", student.ID)
	response = performRequest(t, app, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var logs []models.StudyLog
	decodeData(t, response, &logs)
	require.Len(t, logs, 1)
	require.Equal(t, 6.0, logs[0].Hours)
}

func TestCreateStudyLogAdvancesStreak(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	// Seed the pair as if the student studied yesterday.
	response := performRequest(t, app, http.MethodPatch, "/api/students/1", map[string]any{
		"current_streak":  3,
		"last_study_date": yesterday,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var result studyLogResult
	response = performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
		"student_id": student.ID,
		"hours":      1.5,
		"study_date": today,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	decodeData(t, response, &result)
	require.Equal(t, 4, result.Student.CurrentStreak, "consecutive day increments")
	require.NotNil(t, result.Student.LastStudyDate)
	require.Equal(t, today, result.Student.LastStudyDate.Format("2006-01-02"))

	// Logging the same day again replaces hours and leaves the streak alone.
	response = performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
		"student_id": student.ID,
		"hours":      4.0,
		"study_date": today,
	})
	decodeData(t, response, &result)
	require.Equal(t, 4, result.Student.CurrentStreak)
}

func TestCreateStudyLogBackfillLeavesStreakAlone(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	today := time.Now().UTC().Format("2006-01-02")
	pastDay := time.Now().UTC().AddDate(0, 0, -6).Format("2006-01-02")

	response := performRequest(t, app, http.MethodPatch, "/api/students/1", map[string]any{
		"current_streak":  5,
		"last_study_date": today,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	// Filling in a forgotten day records the hours without resetting the
	// streak or dragging last_study_date backwards.
	var result studyLogResult
	response = performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
		"student_id": student.ID,
		"hours":      2.0,
		"study_date": pastDay,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)
	decodeData(t, response, &result)

	require.Equal(t, pastDay, result.Log.StudyDate.UTC().Format("2006-01-02"))
	require.Equal(t, 5, result.Student.CurrentStreak)
	require.NotNil(t, result.Student.LastStudyDate)
	require.Equal(t, today, result.Student.LastStudyDate.Format("2006-01-02"))

	response = performRequest(t, app, http.MethodGet, "/api/students/1", nil)
	var fetched models.Student
	decodeData(t, response, &fetched)
	require.Equal(t, 5, fetched.CurrentStreak)
	require.Equal(t, today, fetched.LastStudyDate.UTC().Format("2006-01-02"))
}

func TestListStudyLogsNewestFirstCapped(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	for offset := 1; offset <= 35; offset++ {
		response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
			"student_id": student.ID,
			"hours":      1.0,
			"study_date": fmt.Sprintf("2024-01-%02d", offset%28+1),
		})
		require.Equal(t, http.StatusOK, response.StatusCode)
	}

	for offset := 1; offset <= 10; offset++ {
		response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
			"student_id": student.ID,
			"hours":      1.0,
			"study_date": fmt.Sprintf("2024-02-%02d", offset),
		})
		require.Equal(t, http.StatusOK, response.StatusCode)
	}

	target := fmt.Sprintf("/api/study_logs?student_id=%d", student.ID)
	response := performRequest(t, app, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var logs []models.StudyLog
	decodeData(t, response, &logs)
	require.Len(t, logs, 30)
	for index := 1; index < len(logs); index++ {
		require.True(t, logs[index-1].StudyDate.After(logs[index].StudyDate), "newest first")
	}
}

func TestUpdateStudyLogReplacesHours(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ravi", 18)

	response := performRequest(t, app, http.MethodPost, "/api/study_logs", map[string]any{
		"student_id": student.ID,
		"hours":      2.0,
		"study_date": "2024-03-10",
	})
	var created studyLogResult
	decodeData(t, response, &created)

	target := fmt.Sprintf("/api/study_logs/%d", created.Log.ID)
	response = performRequest(t, app, http.MethodPatch, target, map[string]any{"hours": 5.0})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var updated models.StudyLog
	decodeData(t, response, &updated)
	require.Equal(t, 5.0, updated.Hours)
	require.Equal(t, created.Log.ID, updated.ID)

	response = performRequest(t, app, http.MethodPatch, target, map[string]any{"hours": 25.0})
	require.Equal(t, http.StatusBadRequest, response.StatusCode)

	response = performRequest(t, app, http.MethodPatch, "/api/study_logs/999", map[string]any{"hours": 5.0})
	require.Equal(t, http.StatusNotFound, response.StatusCode)
	require.Equal(t, "study log not found", decodeError(t, response))
}
