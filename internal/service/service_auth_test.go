// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-sessions/internal/config"
	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/store"
	"github.com/MKhiriev/go-auth-sessions/internal/utils"
	"github.com/MKhiriev/go-auth-sessions/models"
)

// ─────────────────────────────────────────────
// Mock UserRepository
// ─────────────────────────────────────────────

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn                  func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn             func(ctx context.Context, email string) (models.User, error)
	findUserByEmailWithPasswordFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn                func(ctx context.Context, userID int64) (models.User, error)
	findUserByRefreshTokenFn      func(ctx context.Context, refreshToken string) (models.User, error)
	updateRefreshTokenFn          func(ctx context.Context, userID int64, refreshToken string) error
	getAllUsersFn                 func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindUserByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailWithPasswordFn(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFn(ctx, userID)
}

func (m *mockUserRepository) FindUserByRefreshToken(ctx context.Context, refreshToken string) (models.User, error) {
	return m.findUserByRefreshTokenFn(ctx, refreshToken)
}

func (m *mockUserRepository) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken string) error {
	return m.updateRefreshTokenFn(ctx, userID, refreshToken)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAppConfig() config.App {
	return config.App{
		AccessTokenSignKey:   "access-secret",
		RefreshTokenSignKey:  "refresh-secret",
		TokenIssuer:          "test-issuer",
		AccessTokenDuration:  120 * time.Second,
		RefreshTokenDuration: time.Hour,
	}
}

func newTestAuthSvc(repo store.UserRepository) AuthService {
	return NewAuthService(repo, testAppConfig(), logger.Nop())
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	digest, err := utils.HashPassword(password)
	require.NoError(t, err)
	return digest
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthSvc(repo)

	public, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:     "alice@example.com",
		Password:  "pw123",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), public.UserID)
	assert.Equal(t, "alice@example.com", public.Email)

	// the plaintext must never be persisted; the digest must verify
	assert.NotEqual(t, "pw123", persisted.PasswordHash)
	assert.True(t, utils.CheckPassword("pw123", persisted.PasswordHash))
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthSvc(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "any-password",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthSvc(&mockUserRepository{})

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty email", models.RegisterRequest{Password: "pw123"}},
		{"empty password", models.RegisterRequest{Email: "alice@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	stored := models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: hashFor(t, "pw123"),
		FirstName:    "Alice",
	}

	var rotatedTo string
	repo := &mockUserRepository{
		findUserByEmailWithPasswordFn: func(_ context.Context, email string) (models.User, error) {
			require.Equal(t, stored.Email, email)
			return stored, nil
		},
		updateRefreshTokenFn: func(_ context.Context, userID int64, refreshToken string) error {
			require.Equal(t, stored.UserID, userID)
			rotatedTo = refreshToken
			return nil
		},
	}
	svc := newTestAuthSvc(repo)

	session, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", session.User.Email)
	assert.NotEmpty(t, session.AccessToken.SignedString)
	assert.NotEmpty(t, session.RefreshToken.SignedString)

	// the issued refresh token is exactly what was persisted
	assert.Equal(t, session.RefreshToken.SignedString, rotatedTo)

	// the access token verifies with the access secret only
	cfg := testAppConfig()
	_, err = utils.ValidateAndParseJWTToken(session.AccessToken.SignedString, cfg.AccessTokenSignKey, cfg.TokenIssuer)
	assert.NoError(t, err)
	_, err = utils.ValidateAndParseJWTToken(session.AccessToken.SignedString, cfg.RefreshTokenSignKey, cfg.TokenIssuer)
	assert.Error(t, err)
}

func TestLogin_NoEnumerationSignal(t *testing.T) {
	// unknown email and wrong password must be indistinguishable
	repo := &mockUserRepository{
		findUserByEmailWithPasswordFn: func(_ context.Context, email string) (models.User, error) {
			if email == "known@example.com" {
				return models.User{UserID: 1, Email: email, PasswordHash: hashFor(t, "right-password")}, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthSvc(repo)

	_, unknownErr := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	_, wrongPwErr := svc.Login(context.Background(), models.LoginRequest{Email: "known@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLogin_RefreshPersistenceFailure(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailWithPasswordFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hashFor(t, "pw123")}, nil
		},
		updateRefreshTokenFn: func(_ context.Context, _ int64, _ string) error {
			return errors.New("db network error")
		},
	}
	svc := newTestAuthSvc(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// RefreshAccessToken
// ─────────────────────────────────────────────

func TestRefreshAccessToken_Success(t *testing.T) {
	cfg := testAppConfig()
	refresh, err := utils.GenerateJWTToken(cfg.TokenIssuer, "alice@example.com", cfg.RefreshTokenDuration, cfg.RefreshTokenSignKey)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByRefreshTokenFn: func(_ context.Context, token string) (models.User, error) {
			require.Equal(t, refresh.SignedString, token)
			return models.User{UserID: 1, Email: "alice@example.com", RefreshToken: token}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	access, err := svc.RefreshAccessToken(context.Background(), refresh.SignedString)
	require.NoError(t, err)

	parsed, err := utils.ValidateAndParseJWTToken(access.SignedString, cfg.AccessTokenSignKey, cfg.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", parsed.Email)
}

func TestRefreshAccessToken_Missing(t *testing.T) {
	svc := newTestAuthSvc(&mockUserRepository{})

	_, err := svc.RefreshAccessToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoRefreshTokenProvided)
}

func TestRefreshAccessToken_RotatedAway(t *testing.T) {
	repo := &mockUserRepository{
		findUserByRefreshTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthSvc(repo)

	_, err := svc.RefreshAccessToken(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrRefreshTokenNotRecognized)
}

func TestRefreshAccessToken_ExpiredToken(t *testing.T) {
	cfg := testAppConfig()
	// a token whose lifetime already lies in the past
	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, "alice@example.com", -time.Minute, cfg.RefreshTokenSignKey)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByRefreshTokenFn: func(_ context.Context, token string) (models.User, error) {
			return models.User{UserID: 1, Email: "alice@example.com", RefreshToken: token}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	_, err = svc.RefreshAccessToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrRefreshTokenNotRecognized)
}

func TestRefreshAccessToken_EmailClaimMismatch(t *testing.T) {
	cfg := testAppConfig()
	refresh, err := utils.GenerateJWTToken(cfg.TokenIssuer, "mallory@example.com", cfg.RefreshTokenDuration, cfg.RefreshTokenSignKey)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findUserByRefreshTokenFn: func(_ context.Context, token string) (models.User, error) {
			return models.User{UserID: 1, Email: "alice@example.com", RefreshToken: token}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	_, err = svc.RefreshAccessToken(context.Background(), refresh.SignedString)
	assert.ErrorIs(t, err, ErrRefreshTokenNotRecognized)
}

// TestRefreshAccessToken_SecondLoginInvalidatesFirstToken runs the rotation
// scenario end to end against an in-memory store: after a second login for
// the same user, the refresh token from the first login must be rejected
// even though its signature would still verify.
func TestRefreshAccessToken_SecondLoginInvalidatesFirstToken(t *testing.T) {
	stored := models.User{
		UserID:       1,
		Email:        "alice@example.com",
		PasswordHash: hashFor(t, "pw123"),
	}

	repo := &mockUserRepository{
		findUserByEmailWithPasswordFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
		updateRefreshTokenFn: func(_ context.Context, _ int64, refreshToken string) error {
			stored.RefreshToken = refreshToken
			return nil
		},
		findUserByRefreshTokenFn: func(_ context.Context, token string) (models.User, error) {
			// textual equality against the single stored value
			if token == stored.RefreshToken {
				return stored, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthSvc(repo)
	ctx := context.Background()
	creds := models.LoginRequest{Email: "alice@example.com", Password: "pw123"}

	first, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	// the first token rotates fine while it is the stored value
	_, err = svc.RefreshAccessToken(ctx, first.RefreshToken.SignedString)
	require.NoError(t, err)

	second, err := svc.Login(ctx, creds)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken.SignedString, second.RefreshToken.SignedString)

	// the first token is rotated away now
	_, err = svc.RefreshAccessToken(ctx, first.RefreshToken.SignedString)
	assert.ErrorIs(t, err, ErrRefreshTokenNotRecognized)

	// the second one still works
	_, err = svc.RefreshAccessToken(ctx, second.RefreshToken.SignedString)
	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// Profile and listing
// ─────────────────────────────────────────────

func TestGetUserProfile_Success(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{
				UserID:       userID,
				Email:        "alice@example.com",
				PasswordHash: "digest",
				RefreshToken: "live-token",
			}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	public, err := svc.GetUserProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", public.Email)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthSvc(repo)

	_, err := svc.GetUserProfile(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestGetAllUsers_AppliesProjection(t *testing.T) {
	repo := &mockUserRepository{
		getAllUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{
				{UserID: 1, Email: "alice@example.com", PasswordHash: "digest-a", RefreshToken: "tok-a"},
				{UserID: 2, Email: "bob@example.com", PasswordHash: "digest-b", RefreshToken: "tok-b"},
			}, nil
		},
	}
	svc := newTestAuthSvc(repo)

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

// ─────────────────────────────────────────────
// ParseAccessToken
// ─────────────────────────────────────────────

func TestParseAccessToken_Success(t *testing.T) {
	cfg := testAppConfig()
	access, err := utils.GenerateJWTToken(cfg.TokenIssuer, "alice@example.com", cfg.AccessTokenDuration, cfg.AccessTokenSignKey)
	require.NoError(t, err)

	svc := newTestAuthSvc(&mockUserRepository{})

	token, err := svc.ParseAccessToken(context.Background(), access.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", token.Email)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	cfg := testAppConfig()
	// signed with the refresh secret, presented on the access path
	foreign, err := utils.GenerateJWTToken(cfg.TokenIssuer, "alice@example.com", cfg.AccessTokenDuration, cfg.RefreshTokenSignKey)
	require.NoError(t, err)

	svc := newTestAuthSvc(&mockUserRepository{})

	_, err = svc.ParseAccessToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseAccessToken_Malformed(t *testing.T) {
	svc := newTestAuthSvc(&mockUserRepository{})

	_, err := svc.ParseAccessToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
