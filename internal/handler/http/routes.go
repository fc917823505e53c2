package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/logout", h.logout)
		r.Get("/api/auth/refresh-token", h.refreshToken)
	})

	// routes behind the request guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/profile/{userId}", h.profile)
		r.Get("/api/auth/users", h.users)
	})

	router.Method("GET", "/metrics", h.metrics.Handler())

	return router
}
