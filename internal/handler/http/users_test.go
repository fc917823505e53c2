package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-sessions/internal/store"
	"github.com/MKhiriev/go-auth-sessions/models"
)

// profileRequest builds a GET request for /api/auth/profile/{userId} with the
// chi route context populated, so that chi.URLParam resolves the parameter.
func profileRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile/"+userID, nil)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("userId", userID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

// TestProfile_Success verifies that a known user id yields 200 OK and the
// public projection of the user.
func TestProfile_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserProfileFn: func(_ context.Context, userID int64) (models.PublicUser, error) {
			require.Equal(t, int64(42), userID)
			return models.PublicUser{UserID: 42, Email: "alice@example.com", FirstName: "Alice"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("42"))

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, int64(42), user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
}

// TestProfile_ResponseCarriesNoSecrets verifies that the serialised profile
// contains neither a password digest nor a refresh token field.
func TestProfile_ResponseCarriesNoSecrets(t *testing.T) {
	auth := &mockAuthService{
		getUserProfileFn: func(_ context.Context, _ int64) (models.PublicUser, error) {
			return models.PublicUser{UserID: 1, Email: "alice@example.com"}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("1"))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "refresh_token")
	assert.NotContains(t, body, "refreshToken")
}

// TestProfile_InvalidUserID verifies that a non-numeric path parameter
// results in 400 Bad Request.
func TestProfile_InvalidUserID(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("not-a-number"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid user id")
}

// TestProfile_UserNotFound verifies that store.ErrNoUserWasFound maps to
// 404 Not Found.
func TestProfile_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		getUserProfileFn: func(_ context.Context, _ int64) (models.PublicUser, error) {
			return models.PublicUser{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("404"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

// TestProfile_WrappedUserNotFound verifies that a wrapped
// store.ErrNoUserWasFound is still matched via errors.Is.
func TestProfile_WrappedUserNotFound(t *testing.T) {
	auth := &mockAuthService{
		getUserProfileFn: func(_ context.Context, _ int64) (models.PublicUser, error) {
			return models.PublicUser{}, errors.Join(errors.New("outer"), store.ErrNoUserWasFound)
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("404"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestProfile_UnexpectedError verifies that an unknown error from
// GetUserProfile maps to 500 Internal Server Error.
func TestProfile_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		getUserProfileFn: func(_ context.Context, _ int64) (models.PublicUser, error) {
			return models.PublicUser{}, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.profile(rec, profileRequest("1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

// TestUsers_Success verifies that the listing yields 200 OK and every stored
// user in public projection.
func TestUsers_Success(t *testing.T) {
	auth := &mockAuthService{
		getAllUsersFn: func(_ context.Context) ([]models.PublicUser, error) {
			return []models.PublicUser{
				{UserID: 1, Email: "alice@example.com"},
				{UserID: 2, Email: "bob@example.com"},
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()

	h.users(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.PublicUser
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
	assert.Equal(t, "bob@example.com", users[1].Email)
}

// TestUsers_Empty verifies that an empty store yields 200 OK and an empty
// JSON array rather than an error.
func TestUsers_Empty(t *testing.T) {
	auth := &mockAuthService{
		getAllUsersFn: func(_ context.Context) ([]models.PublicUser, error) {
			return []models.PublicUser{}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()

	h.users(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// TestUsers_UnexpectedError verifies that an unknown error from GetAllUsers
// maps to 500 Internal Server Error.
func TestUsers_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		getAllUsersFn: func(_ context.Context) ([]models.PublicUser, error) {
			return nil, errors.New("db connection lost")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()

	h.users(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
