package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APICallDuration times every call to the remote API.
	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchboard_api_call_duration_seconds",
			Help:    "Remote API call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"operation", "outcome"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchboard_http_request_duration_seconds",
			Help:    "Dashboard HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "route", "status"},
	)

	Toasts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchboard_toasts_total",
			Help: "Notifications shown to users",
		},
		[]string{"level"},
	)
)

// ObserveAPICall records one remote call.
func ObserveAPICall(operation, outcome string, start time.Time) {
	APICallDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

// ObserveRequest records one inbound request. route is the matched mux
// pattern so that path ids don't explode cardinality.
func ObserveRequest(method, route string, status int, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
