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

type generateReportRequest struct {
	UserHash string `json:"user_hash"`
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req generateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	report, err := h.services.ReportService.GenerateReport(ctx, req.UserHash)
	if err != nil {
		log.Err(err).Msg("report generation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, reportResponse(report), http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userHash := chi.URLParam(r, "userHash")

	report, err := h.services.ReportService.GetReport(ctx, userHash)
	if err != nil {
		log.Err(err).Msg("report lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, reportResponse(report), http.StatusOK)
}

// reportResponse duplicates the headline fields next to the record for
// clients that render without keeping the report object.
func reportResponse(report models.Report) models.ReportResponse {
	return models.ReportResponse{
		Success:              true,
		Report:               report,
		TraditionPercentages: report.TraditionPercentages,
		TopTradition:         report.TopTradition,
		Insights:             report.Insights,
	}
}
