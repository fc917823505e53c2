package store

import (
	"context"

	"github.com/MKhiriev/go-auth-sessions/models"
)

// UserRepository is the narrow persistence contract the authentication core
// depends on: lookups by email, id and stored refresh-token value, user
// creation, and conditional update of the single refresh-token column.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields. Fails with ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email, without the
	// password digest. The digest is excluded from this projection by
	// default to prevent accidental leakage.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByEmailWithPassword is the login-path variant that also
	// exposes the stored password digest.
	FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given id, without the
	// password digest.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByRefreshToken returns the user whose stored refresh token is
	// textually equal to the given value. A miss means the token was
	// rotated away or never issued.
	FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error)

	// UpdateRefreshToken overwrites the stored refresh token of the given
	// user. The previous value becomes un-rotatable.
	UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error

	// GetAllUsers returns every stored user, without password digests.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}
