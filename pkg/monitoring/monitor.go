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
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	StudyPlansGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "study_plans_generated_total",
			Help: "Number of study plans generated",
		},
	)

	StudyTaskUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "study_task_updates_total",
			Help: "Study task completion updates by target state",
		},
		[]string{"completed"},
	)

	StudyPlanConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "study_plan_conflicts_total",
			Help: "Generations or task updates rejected because the current plan changed",
		},
	)

	InterviewsRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interviews_recorded_total",
			Help: "Completed interviews recorded by type",
		},
		[]string{"type"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			StudyPlansGenerated,
			StudyTaskUpdates,
			StudyPlanConflicts,
			InterviewsRecorded,
		)
	})
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
