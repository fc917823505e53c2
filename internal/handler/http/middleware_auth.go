// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and cookie utilities for the
// REST API. Authentication, logging, tracing and metrics concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/utils"
)

// auth is the request guard enforcing JWT-based authentication on the
// protected routes.
//
// It reads the access token from the "token" cookie, validates it via
// [service.AuthService.ParseAccessToken], and on success stores the
// authenticated user's email in the request context under
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "token" cookie is absent ([ErrNoAccessTokenCookie]).
//   - The cookie is present but holds an empty value ([ErrEmptyToken]).
//   - The token is expired, malformed or otherwise fails verification.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(accessTokenCookieName)
		if err != nil {
			log.Err(ErrNoAccessTokenCookie).Send()
			http.Error(w, "Token not found", http.StatusUnauthorized)
			return
		}

		if cookie.Value == "" {
			log.Err(ErrEmptyToken).Send()
			http.Error(w, "Token not found", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseAccessToken(ctx, cookie.Value)
		if err != nil {
			log.Err(err).Msg("access token failed verification")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's email in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
