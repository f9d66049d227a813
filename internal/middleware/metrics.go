package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/settleup/backend/internal/metrics"
)

// Metrics observes request duration per method, route and status.
// IDs are stripped from the path so label cardinality stays bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, routeLabel(r.URL.Path), strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

// routeLabel collapses UUID path segments to ":id".
func routeLabel(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if _, err := uuid.Parse(seg); err == nil {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}
