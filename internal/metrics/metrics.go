package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry served on /metrics.
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)

	// DraftEdits counts draft mutations (edit batches, item adds and removals)
	// by outcome.
	DraftEdits = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "draft_edits_total", Help: "Draft mutations by result."},
		[]string{"result"},
	)
	RecommendationSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "recommendation_saves_total", Help: "Recommendation saves by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the collectors on Registry. Safe to call more
// than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DraftEdits)
		Registry.MustRegister(RecommendationSaves)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Middleware records request counts and latencies labelled by route pattern,
// so /trips/:id is one series rather than one per trip.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		labels := []string{c.Method(), route, strconv.Itoa(status)}
		HTTPRequests.WithLabelValues(labels...).Inc()
		HTTPDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		return err
	}
}
