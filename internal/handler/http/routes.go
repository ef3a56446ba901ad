package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velichkin/innerpath/internal/app"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/users/create", h.createUser)
		r.Get("/users/{userHash}", h.getUser)
		r.Patch("/users/{userHash}", h.updateUser)

		r.Post("/passages/daily", h.dailyPassage)

		r.Post("/ratings/create", h.submitRating)
		r.Post("/ratings/engagement", h.updateEngagement)

		r.Get("/progress/{userHash}", h.progress)

		r.Post("/reports/generate", h.generateReport)
		r.Get("/reports/{userHash}", h.getReport)

		r.Get("/version", h.getServerVersion)
	})

	router.Handle("/metrics", promhttp.Handler())

	// unknown paths and wrong methods both answer with the NotSupported
	// envelope so clients see one failure shape everywhere
	router.NotFound(notSupported)
	router.MethodNotAllowed(notSupported)

	return router
}

func notSupported(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUnsupportedOperation}, http.StatusNotImplemented)
}
