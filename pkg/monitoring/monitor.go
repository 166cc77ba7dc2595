package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 答题结果标签
const (
	AttemptAccepted      = "accepted"
	AttemptLimitExceeded = "limit_exceeded"
	AttemptRejected      = "rejected"
	AttemptFailed        = "error"
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
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	QuizAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_attempts_total",
			Help: "Quiz submissions by outcome",
		},
		[]string{"result"},
	)

	QuizScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_score",
			Help:    "Scores of accepted quiz attempts",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	CertificatesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "certificates_issued_total",
			Help: "Certificates issued",
		},
	)

	registerOnce sync.Once
)

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(QuizAttempts)
		prometheus.MustRegister(QuizScore)
		prometheus.MustRegister(CertificatesIssued)
	})
}

// ObserveAttempt 记录一次提交的结果
func ObserveAttempt(result string, score int) {
	QuizAttempts.WithLabelValues(result).Inc()
	if result == AttemptAccepted {
		QuizScore.Observe(float64(score))
	}
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
