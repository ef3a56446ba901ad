package validators

import (
	"context"
	"fmt"

	"github.com/velichkin/innerpath/models"
)

const (
	FieldUserHash     = "user_hash"
	FieldRating       = "rating"
	FieldJourneyDay   = "journey_day"
	FieldSubscription = "subscription_status"
)

var allowedSubscriptions = []string{
	models.SubscriptionTrial,
	models.SubscriptionActive,
	models.SubscriptionExpired,
}

// JourneyValidator checks the structural rules of the journey request
// payloads: identifier presence, rating bounds, day index sign and
// subscription plan membership. Rules that need catalog or storage lookups
// stay in the service layer.
type JourneyValidator struct {
}

func NewJourneyValidator() Validator {
	return &JourneyValidator{}
}

func (v *JourneyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RatingSubmission:
		return v.validateRatingSubmission(ctx, value, fields...)
	case *models.RatingSubmission:
		return v.validateRatingSubmission(ctx, *value, fields...)

	case models.UserOnboarding:
		return v.validateUserOnboarding(ctx, value, fields...)
	case *models.UserOnboarding:
		return v.validateUserOnboarding(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *JourneyValidator) validateRatingSubmission(_ context.Context, submission models.RatingSubmission, fields ...string) error {
	for _, field := range fieldsOrDefault(fields, FieldUserHash, FieldRating, FieldJourneyDay) {
		switch field {
		case FieldUserHash:
			if submission.UserHash == "" {
				return ErrNoUserHash
			}
		case FieldRating:
			if submission.Score < models.RatingMin || submission.Score > models.RatingMax {
				return ErrRatingOutOfRange
			}
		case FieldJourneyDay:
			if submission.JourneyDay < 0 {
				return ErrNegativeJourneyDay
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *JourneyValidator) validateUserOnboarding(_ context.Context, onboarding models.UserOnboarding, fields ...string) error {
	for _, field := range fieldsOrDefault(fields, FieldSubscription) {
		switch field {
		case FieldSubscription:
			if onboarding.SubscriptionStatus != "" && !subscriptionAllowed(onboarding.SubscriptionStatus) {
				return ErrInvalidSubscription
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *JourneyValidator) validateUserUpdate(_ context.Context, update models.UserUpdate, fields ...string) error {
	for _, field := range fieldsOrDefault(fields, FieldJourneyDay, FieldSubscription) {
		switch field {
		case FieldJourneyDay:
			if update.JourneyDay != nil && *update.JourneyDay < 0 {
				return ErrNegativeJourneyDay
			}
		case FieldSubscription:
			if update.SubscriptionStatus != nil && !subscriptionAllowed(*update.SubscriptionStatus) {
				return ErrInvalidSubscription
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func subscriptionAllowed(subscription string) bool {
	for _, allowed := range allowedSubscriptions {
		if subscription == allowed {
			return true
		}
	}
	return false
}

func fieldsOrDefault(fields []string, defaults ...string) []string {
	if len(fields) > 0 {
		return fields
	}
	return defaults
}
