package api

import (
	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := app.Group("/api")

	students := api.Group("/students")
	students.Get("", handler.ListStudents)
	students.Get("/:id", handler.GetStudent)
	students.Post("", handler.CreateStudent)
	students.Patch("/:id", handler.UpdateStudent)

	studyLogs := api.Group("/study_logs")
	studyLogs.Get("", handler.ListStudyLogs)
	studyLogs.Post("", handler.CreateStudyLog)
	studyLogs.Patch("/:id", handler.UpdateStudyLog)

	tasks := api.Group("/tasks")
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Patch("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	stats := api.Group("/stats")
	stats.Get("/completion", handler.GetCompletionStats)
	stats.Get("/study_time", handler.GetStudyTimeStats)

	admin := api.Group("/admin")
	admin.Post("/login", handler.AdminLogin)
	admin.Post("/logout", handler.AdminLogout)
	admin.Get("/overview", handler.AdminRequired, handler.AdminOverview)
	admin.Get("/students", handler.AdminRequired, handler.AdminListStudents)
}
