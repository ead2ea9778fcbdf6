package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	campaignsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaigns_generated_total",
			Help: "Total number of campaign generation attempts",
		},
		[]string{"origin", "status"},
	)

	campaignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_generation_duration_seconds",
			Help:    "Time to generate a full email sequence",
			Buckets: []float64{1, 2.5, 5, 10, 20, 40, 80},
		},
	)

	generationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_errors_total",
			Help: "Total number of failed LLM generations",
		},
		[]string{"kind"},
	)

	followUpsDue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "followups_due_total",
			Help: "Total number of follow-ups flagged as due",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		path := routePattern(r)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// routePattern keeps campaign IDs out of the label set.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// RecordCampaign counts one campaign attempt. origin is "api", "queue" or "cli".
func RecordCampaign(origin, status string, elapsed time.Duration) {
	campaignsGenerated.WithLabelValues(origin, status).Inc()
	if status == "success" {
		campaignDuration.Observe(elapsed.Seconds())
	}
}

func RecordGenerationError(kind string) {
	generationErrors.WithLabelValues(kind).Inc()
}

func RecordFollowUpsDue(n int) {
	followUpsDue.Add(float64(n))
}
