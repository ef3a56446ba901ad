package http

import (
	"encoding/json"
	"net/http"

	"github.com/velichkin/innerpath/internal/app"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var submission models.RatingSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	rating, err := h.services.RatingService.SubmitRating(ctx, submission)
	if err != nil {
		log.Err(err).Msg("rating submission failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RatingResponse{Success: true, Rating: rating}, http.StatusOK)
}

type engagementRequest struct {
	UserHash     string  `json:"user_hash"`
	JourneyDay   int     `json:"journey_day"`
	Reflection   *string `json:"reflection"`
	ViewedDeeper *bool   `json:"viewed_deeper"`
}

func (h *Handler) updateEngagement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req engagementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	rating, err := h.services.RatingService.UpdateEngagement(ctx, req.UserHash, req.JourneyDay, models.EngagementUpdate{
		Reflection:   req.Reflection,
		ViewedDeeper: req.ViewedDeeper,
	})
	if err != nil {
		log.Err(err).Msg("engagement update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.RatingResponse{Success: true, Rating: rating}, http.StatusOK)
}
