// Package metrics exposes Prometheus collectors for inbound dashboard
// traffic and outbound calls to the analytics API.
package metrics

import (
	"bufio"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xenodash_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xenodash_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xenodash_upstream_requests_total",
			Help: "Total number of requests sent to the analytics API",
		},
		[]string{"client", "code", "method"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "xenodash_upstream_request_duration_seconds",
			Help:    "Analytics API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"client", "code", "method"},
	)

	DashboardFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "xenodash_dashboard_fetches_total",
			Help: "Dashboard fan-out fetches by outcome",
		},
		[]string{"outcome"},
	)

	DashboardStates = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "xenodash_dashboard_states",
			Help: "Number of per-session dashboard states held in memory",
		},
	)
)

// InstrumentTransport wraps base so every upstream round trip is counted and
// timed under the given client label. A nil base means http.DefaultTransport.
func InstrumentTransport(client string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	labels := prometheus.Labels{"client": client}
	return promhttp.InstrumentRoundTripperCounter(
		UpstreamRequestsTotal.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(
			UpstreamRequestDuration.MustCurryWith(labels),
			base,
		),
	)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack keeps the wrapper transparent for handlers that need the raw conn.
func (rw *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	return h.Hijack()
}

// Flush passes through so streamed CSV downloads are not buffered.
func (rw *statusRecorder) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Middleware records request counts and latencies labelled by chi route
// pattern, so /static/* does not explode label cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := strconv.Itoa(rw.status)
		HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route, status).Observe(time.Since(start).Seconds())
	})
}
