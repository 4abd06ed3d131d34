package api

import (
	"strconv"
	"time"

	"github.com/arjunr07/studybuddy/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware counts every request and observes its duration,
// labelled by the registered route pattern rather than the raw path so
// /api/tasks/42 and /api/tasks/7 share a series.
func MetricsMiddleware(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	path := c.Route().Path
	status := c.Response().StatusCode()
	metrics.RequestCount.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
	metrics.RequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

	return err
}
