package service

import (
	"context"

	"github.com/MKhiriev/go-auth-sessions/models"
)

// AuthService owns the authentication and session-lifecycle logic:
// registration, credential verification, token issuance, refresh-token
// rotation and request-time token validation. All error decisions are made
// here; the transport layer only maps them to status codes.
type AuthService interface {
	// RegisterUser creates a new account. No token is issued on
	// registration; the user must log in separately.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error)

	// Login verifies the credentials and, on success, issues an access and
	// a refresh token and persists the refresh token against the user.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// GetUserProfile returns the public projection of the user with the
	// given id.
	GetUserProfile(ctx context.Context, userID int64) (models.PublicUser, error)

	// GetAllUsers returns the public projections of every stored user.
	GetAllUsers(ctx context.Context) ([]models.PublicUser, error)

	// RefreshAccessToken exchanges a live refresh token for a fresh access
	// token. The refresh token must be cryptographically valid AND textually
	// equal to the value currently stored against the user.
	RefreshAccessToken(ctx context.Context, refreshToken string) (models.Token, error)

	// ParseAccessToken validates a raw access-token string on the guard
	// path and returns its decoded claims.
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
}
