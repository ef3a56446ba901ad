package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userHash := chi.URLParam(r, "userHash")

	progress, err := h.services.ProgressService.Progress(ctx, userHash)
	if err != nil {
		log.Err(err).Msg("progress aggregation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.ProgressResponse{Success: true, Progress: progress}, http.StatusOK)
}
