package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-movie-catalog/internal/metrics"
)

// MetricsMiddleware records request count, latency and in-flight requests.
// Requests are labelled with the chi route pattern so ids do not explode cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.RecordAPIRequest(r.Method, routePattern(r), strconv.Itoa(rec.statusCode), time.Since(start))
	})
}
