package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vastu_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	rateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vastu_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Database metrics
	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vastu_db_connections_in_use",
			Help: "Number of database connections in use",
		},
	)

	dbConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vastu_db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	// Business metrics
	authAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"status"}, // success, failure
	)

	consultationsBookedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_consultations_booked_total",
			Help: "Total number of consultation bookings",
		},
		[]string{"type"},
	)

	enquiriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vastu_enquiries_total",
			Help: "Total number of contact enquiries",
		},
	)

	feedbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_feedback_total",
			Help: "Total number of feedback submissions",
		},
		[]string{"rating"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_notifications_total",
			Help: "Total number of notification dispatches",
		},
		[]string{"kind", "status"}, // success, failure
	)

	chatMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vastu_chat_messages_total",
			Help: "Total number of chat messages answered",
		},
		[]string{"intent", "language"},
	)
)

// PrometheusMiddleware records request count and latency, labelled by the matched mux
// route template so path parameters do not explode cardinality.
func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		route := "unmatched"
		if cr := mux.CurrentRoute(r); cr != nil {
			if tpl, err := cr.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func RecordRateLimited() {
	rateLimitedTotal.Inc()
}

func RecordAuthAttempt(success bool) {
	authAttemptsTotal.WithLabelValues(status(success)).Inc()
}

func RecordConsultationBooked(consultationType string) {
	consultationsBookedTotal.WithLabelValues(consultationType).Inc()
}

func RecordEnquiry() {
	enquiriesTotal.Inc()
}

func RecordFeedback(rating int) {
	feedbackTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func RecordNotification(kind string, success bool) {
	notificationsTotal.WithLabelValues(kind, status(success)).Inc()
}

func RecordChatMessage(intent, language string) {
	chatMessagesTotal.WithLabelValues(intent, language).Inc()
}

// UpdateDBStats copies pool statistics into the connection gauges.
func UpdateDBStats(stats sql.DBStats) {
	dbConnectionsInUse.Set(float64(stats.InUse))
	dbConnectionsIdle.Set(float64(stats.Idle))
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
