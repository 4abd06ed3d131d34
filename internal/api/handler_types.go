package api

import (
	"time"

	appdb "github.com/arjunr07/studybuddy/internal/db"
	"github.com/arjunr07/studybuddy/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db                *gorm.DB
	repos             *appdb.Repositories
	study             *services.StudyService
	tasks             *services.TaskService
	secretKey         []byte
	adminPasswordHash string
	location          *time.Location
	cookieSecure      bool
	validate          *validator.Validate
}

func NewHandler(database *gorm.DB, secretKey string, adminPasswordHash string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := appdb.NewRepositories(database)
	return &Handler{
		db:                database,
		repos:             repos,
		study:             services.NewStudyService(repos.StudyLogs, repos.Students, location),
		tasks:             services.NewTaskService(repos.Tasks),
		secretKey:         []byte(secretKey),
		adminPasswordHash: adminPasswordHash,
		location:          location,
		cookieSecure:      cookieSecure,
		validate:          validator.New(),
	}
}

const (
	adminCookieName = "studybuddy_admin"
	adminTokenTTL   = 12 * time.Hour

	// recentLogsLimit caps GET /api/study_logs to the newest entries.
	recentLogsLimit = 30
)

type adminClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
