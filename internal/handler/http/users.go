package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-auth-sessions/internal/logger"
	"github.com/MKhiriev/go-auth-sessions/internal/store"
	"github.com/MKhiriev/go-auth-sessions/internal/utils"
	"github.com/MKhiriev/go-auth-sessions/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.GetUserProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("id", userID).Msg("user not found")
			utils.WriteJSON(w, models.MessageResponse{Message: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("id", userID).Msg("unexpected error occurred during profile lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
