package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunr07/studybuddy/internal/api"
	"github.com/arjunr07/studybuddy/internal/config"
	"github.com/arjunr07/studybuddy/internal/db"
	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()

	location := mustLoadLocation(cfg.TimeZone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	metrics.Register()
	handler := api.NewHandler(database, cfg.SecretKey, cfg.AdminPasswordHash, location, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "StudyBuddy",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(api.MetricsMiddleware)

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("StudyBuddy listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.ServerPort, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
