package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goaltime_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "goaltime_request_duration_seconds",
			Help: "Request duration seconds",
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(reqCount, reqDuration)
}

// Metrics records request counts and latencies per method and path
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			written:        false,
		}

		next.ServeHTTP(rw, r)

		path := metricsPath(r.URL.Path)
		reqCount.WithLabelValues(r.Method, path, strconv.Itoa(rw.statusCode)).Inc()
		reqDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// metricsPath truncates the path to its first two segments so resource
// IDs do not blow up label cardinality ("/app/goals/123" -> "/app/goals").
func metricsPath(path string) string {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(segments) >= 2 {
		return "/" + segments[0] + "/" + segments[1]
	}
	return "/" + segments[0]
}
