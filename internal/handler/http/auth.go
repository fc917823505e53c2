package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/service"
	"github.com/MKhiriev/go-auth-sessions/internal/store"
	"github.com/MKhiriev/go-auth-sessions/internal/utils"
	"github.com/MKhiriev/go-auth-sessions/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			utils.WriteJSON(w, models.MessageResponse{Message: "User already exists"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Registration successful"}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid email or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", session.User.UserID).Msg("user successfully logged in")

	setAccessTokenCookie(w, session.AccessToken.SignedString)
	setRefreshTokenCookie(w, session.RefreshToken.SignedString)

	utils.WriteJSON(w, models.LoginResponse{
		Token:      session.AccessToken.SignedString,
		UserDetail: session.User,
		Message:    "Login Successfully",
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w)

	utils.WriteJSON(w, models.MessageResponse{Message: "Logout Successfully"}, http.StatusOK)
}

func (h *Handler) refreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(refreshTokenCookieName)
	if err != nil {
		log.Err(ErrNoRefreshTokenCookie).Send()
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	accessToken, err := h.services.AuthService.RefreshAccessToken(ctx, cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoRefreshTokenProvided):
			log.Err(err).Msg("no refresh token provided")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrRefreshTokenNotRecognized):
			log.Err(err).Msg("refresh token not recognized")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	setAccessTokenCookie(w, accessToken.SignedString)

	utils.WriteJSON(w, models.RefreshResponse{AccessToken: accessToken.SignedString}, http.StatusOK)
}
