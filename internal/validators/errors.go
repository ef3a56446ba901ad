package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoUserHash          = errors.New("user_hash required")
	ErrRatingOutOfRange    = errors.New("rating must be between 0 and 6")
	ErrNegativeJourneyDay  = errors.New("journey_day must not be negative")
	ErrInvalidSubscription = errors.New("invalid subscription status")
)
