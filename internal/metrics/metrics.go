package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studybuddy_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "studybuddy_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)

	StudyLogsSaved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studybuddy_study_logs_saved_total",
			Help: "Study-time log upserts that reached the store",
		},
	)

	StreakUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studybuddy_streak_updates_total",
			Help: "Streak recomputations that were persisted",
		},
	)
)

var registered = false

// Register installs the collectors into the default registry. Safe to
// call once per process; tests that build several apps share it.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(RequestCount, RequestDuration, StudyLogsSaved, StreakUpdates)
	registered = true
}

func Handler() http.Handler {
	return promhttp.Handler()
}
