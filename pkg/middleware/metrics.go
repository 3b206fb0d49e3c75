package middleware

import (
	"net/http"
	"time"

	"github.com/benchtrust/budgetplanung-api/pkg/metrics"
)

// MetricsMiddleware registra a duração de cada requisição por método e status
func MetricsMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := newLoggingResponseWriter(w)

			next.ServeHTTP(lrw, r)

			m.ObserveRequest(r.Method, lrw.statusCode, time.Since(start))
		})
	}
}
