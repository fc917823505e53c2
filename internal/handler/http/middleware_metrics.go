package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records a request counter and latency observation for every
// handled request. The route label uses the chi route pattern rather than
// the raw URI so that /api/auth/profile/1 and /api/auth/profile/2 land in
// the same series.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.RecordRequest(r.Method, route, lw.status, time.Since(start))
	})
}
