package service

import "errors"

var (
	// ErrValidation is the root of the validation error family. Every
	// request-shape failure wraps it so the transport layer can map the
	// whole family to one status code.
	ErrValidation = errors.New("validation error")

	ErrUnknownTradition    = errors.New("unknown tradition")
	ErrUnknownPassage      = errors.New("unknown passage")
	ErrInsufficientRatings = errors.New("need at least 5 ratings to generate report")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
