package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	LessonCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lesson_completions_total",
			Help: "Lesson completion requests by result (recorded, already_completed)",
		},
		[]string{"result"},
	)

	ExerciseAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exercise_attempts_total",
			Help: "Recorded exercise attempts by correctness",
		},
		[]string{"correct"},
	)

	TableRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_table_rows",
			Help: "Row count per table, refreshed by the diagnostics job",
		},
		[]string{"table"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(LessonCompletions)
		prometheus.MustRegister(ExerciseAttempts)
		prometheus.MustRegister(TableRows)
	})
}

func ObserveCompletion(alreadyCompleted bool) {
	result := "recorded"
	if alreadyCompleted {
		result = "already_completed"
	}
	LessonCompletions.WithLabelValues(result).Inc()
}

func ObserveAttempt(correct bool) {
	ExerciseAttempts.WithLabelValues(strconv.FormatBool(correct)).Inc()
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
