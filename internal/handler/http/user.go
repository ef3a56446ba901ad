package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velichkin/innerpath/internal/app"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var onboarding models.UserOnboarding
	if err := json.NewDecoder(r.Body).Decode(&onboarding); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, onboarding)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userHash := chi.URLParam(r, "userHash")

	user, err := h.services.UserService.GetUser(ctx, userHash)
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userHash := chi.URLParam(r, "userHash")

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, userHash, update)
	if err != nil {
		log.Err(err).Msg("user update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Success: true, User: user}, http.StatusOK)
}
