package http

import (
	"encoding/json"
	"net/http"

	"github.com/velichkin/innerpath/internal/app"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

type dailyPassageRequest struct {
	UserHash   string `json:"user_hash"`
	JourneyDay int    `json:"journey_day"`
}

func (h *Handler) dailyPassage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req dailyPassageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	content, err := h.services.SelectionService.DailyContent(ctx, req.UserHash, req.JourneyDay)
	if err != nil {
		log.Err(err).Msg("daily content selection failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DailyPassageResponse{Success: true, DailyContent: content}, http.StatusOK)
}
