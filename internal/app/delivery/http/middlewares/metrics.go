package middlewares

import (
	"mrn-validator-service/internal/pkg/metrics"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Metrics counts requests by method, matched route pattern and status.
func (m *Middlewares) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode)).Inc()
	})
}
