package http

import (
	"errors"
	"net/http"

	"github.com/velichkin/innerpath/internal/app"
	"github.com/velichkin/innerpath/internal/service"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order: specific validation sentinels first,
// then not-found, then the ErrValidation root as a catch-all for wrapped
// validation failures without their own entry.
var errorMappings = []errorMapping{
	{validators.ErrNoUserHash, http.StatusBadRequest, app.MsgUserHashRequired},
	{validators.ErrRatingOutOfRange, http.StatusBadRequest, app.MsgRatingOutOfRange},
	{validators.ErrNegativeJourneyDay, http.StatusBadRequest, app.MsgJourneyDayNegative},
	{validators.ErrInvalidSubscription, http.StatusBadRequest, app.MsgInvalidSubscription},
	{service.ErrUnknownTradition, http.StatusBadRequest, app.MsgUnknownTradition},
	{service.ErrUnknownPassage, http.StatusBadRequest, app.MsgUnknownPassage},
	{service.ErrInsufficientRatings, http.StatusBadRequest, app.MsgInsufficientRatings},
	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrRatingNotFound, http.StatusNotFound, app.MsgRatingNotFound},
	{store.ErrReportNotFound, http.StatusNotFound, app.MsgReportNotFound},
}

// writeError maps a service or store error onto the failure envelope.
// Anything without a mapping is an internal fault and stays opaque to the
// caller.
func writeError(w http.ResponseWriter, err error) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			utils.WriteJSON(w, models.ErrorResponse{Error: mapping.message}, mapping.status)
			return
		}
	}
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInternalServerError}, http.StatusInternalServerError)
}
