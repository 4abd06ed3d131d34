package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/arjunr07/studybuddy/internal/models"
)

func createTestStudent(t *testing.T, app *fiber.App, name string, age int) models.Student {
	t.Helper()

	response := performRequest(t, app, http.MethodPost, "/api/students", map[string]any{
		"name": name,
		"age":  age,
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var student models.Student
	decodeData(t, response, &student)
	require.NotZero(t, student.ID)
	return student
}

func TestCreateStudentAndFetch(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTestStudent(t, app, "Ananya", 17)
	require.Equal(t, "Ananya", created.Name)
	require.Equal(t, 17, created.Age)
	require.Equal(t, 0, created.CurrentStreak)
	require.Nil(t, created.LastStudyDate)

	response := performRequest(t, app, http.MethodGet, "/api/students/1", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var fetched models.Student
	decodeData(t, response, &fetched)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Ananya", fetched.Name)
}

func TestCreateStudentReturnsExistingOnSamePair(t *testing.T) {
	app, _ := newTestApp(t)

	first := createTestStudent(t, app, "Ananya", 17)
	second := createTestStudent(t, app, "  Ananya ", 17)
	require.Equal(t, first.ID, second.ID, "same trimmed name and age resolve to the same student")

	// A different age is a different student.
	third := createTestStudent(t, app, "Ananya", 18)
	require.NotEqual(t, first.ID, third.ID)

	response := performRequest(t, app, http.MethodGet, "/api/students", nil)
	require.Equal(t, http.StatusOK, response.StatusCode)

	var students []models.Student
	decodeData(t, response, &students)
	require.Len(t, students, 2)
}

func TestCreateStudentRejectsInvalidInput(t *testing.T) {
	app, _ := newTestApp(t)

	cases := []map[string]any{
		{"name": "", "age": 17},
		{"name": "   ", "age": 17},
		{"name": "Ananya"},
		{"name": "Ananya", "age": 13},
		{"name": "Ananya", "age": 31},
	}
	for _, payload := range cases {
		response := performRequest(t, app, http.MethodPost, "/api/students", payload)
		require.Equal(t, http.StatusBadRequest, response.StatusCode, "payload %v", payload)
		require.NotEmpty(t, decodeError(t, response))
	}

	response := performRequest(t, app, http.MethodGet, "/api/students", nil)
	var students []models.Student
	decodeData(t, response, &students)
	require.Empty(t, students, "rejected payloads must not create rows")
}

func TestGetStudentNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	response := performRequest(t, app, http.MethodGet, "/api/students/999", nil)
	require.Equal(t, http.StatusNotFound, response.StatusCode)
	require.Equal(t, "student not found", decodeError(t, response))

	response = performRequest(t, app, http.MethodGet, "/api/students/abc", nil)
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestUpdateStudentAppliesStreakPairVerbatim(t *testing.T) {
	app, _ := newTestApp(t)
	student := createTestStudent(t, app, "Ananya", 17)

	response := performRequest(t, app, http.MethodPatch, "/api/students/1", map[string]any{
		"current_streak":  7,
		"last_study_date": "2024-03-10",
	})
	require.Equal(t, http.StatusOK, response.StatusCode)

	var updated models.Student
	decodeData(t, response, &updated)
	require.Equal(t, student.ID, updated.ID)
	require.Equal(t, 7, updated.CurrentStreak)
	require.NotNil(t, updated.LastStudyDate)
	require.Equal(t, "2024-03-10", updated.LastStudyDate.Format("2006-01-02"))

	// The pair is stored as sent, no recomputation on the way in.
	response = performRequest(t, app, http.MethodGet, "/api/students/1", nil)
	var fetched models.Student
	decodeData(t, response, &fetched)
	require.Equal(t, 7, fetched.CurrentStreak)
}
