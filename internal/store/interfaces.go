package store

import (
	"context"
	"time"

	"github.com/velichkin/innerpath/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository owns the users collection. It is the only component allowed
// to mutate user records; the monotonic day-advance rule lives in
// AdvanceJourneyDay so the invariant holds even under concurrent writers.
type UserRepository interface {
	// Create persists a new user and returns it with the server-assigned ID.
	Create(ctx context.Context, user models.User) (models.User, error)

	// GetByHash returns the user owning the given hash.
	// Returns [ErrUserNotFound] if no record matches.
	GetByHash(ctx context.Context, userHash string) (models.User, error)

	// Update applies the allow-listed fields of upd to the user record and
	// returns the updated row. Nil fields are left untouched.
	// Returns [ErrUserNotFound] if no record matches.
	Update(ctx context.Context, userHash string, upd models.UserUpdate) (models.User, error)

	// AdvanceJourneyDay raises the user's journey_day to day if and only if
	// the stored value is lower. A no-op when the stored value is already
	// greater or equal; never decreases the counter.
	AdvanceJourneyDay(ctx context.Context, userHash string, day int) error
}

// RatingRepository owns the ratings collection. The one-rating-per-day rule
// is driven by the service layer through GetByUserDay + Insert/UpdateScore;
// the storage unique index is a backstop, not the primary enforcement.
type RatingRepository interface {
	// GetByUserDay returns the rating stored for (userHash, journeyDay).
	// Returns [ErrRatingNotFound] if none exists.
	GetByUserDay(ctx context.Context, userHash string, journeyDay int) (models.Rating, error)

	// Insert persists a new rating row and returns it with the
	// server-assigned ID.
	Insert(ctx context.Context, rating models.Rating) (models.Rating, error)

	// UpdateScore overwrites the rating value and timestamp of an existing
	// row, leaving the passage reference and engagement fields untouched.
	// Returns [ErrRatingNotFound] if none exists.
	UpdateScore(ctx context.Context, userHash string, journeyDay, score int, ratedAt time.Time) (models.Rating, error)

	// UpdateEngagement applies the non-nil engagement fields to an existing
	// rating. Returns [ErrRatingNotFound] if none exists.
	UpdateEngagement(ctx context.Context, userHash string, journeyDay int, upd models.EngagementUpdate) (models.Rating, error)

	// ListByUser returns every rating of the user ordered by journey_day
	// ascending. The result is recomputed on each call.
	ListByUser(ctx context.Context, userHash string) ([]models.Rating, error)

	// CountByUser returns the user's total number of ratings.
	CountByUser(ctx context.Context, userHash string) (int, error)
}

// ReportRepository owns the reports collection, at most one row per user.
type ReportRepository interface {
	// Replace atomically removes any prior report of the same user and
	// inserts the new one, returning it with the server-assigned ID.
	Replace(ctx context.Context, report models.Report) (models.Report, error)

	// GetByUserID returns the current report of the user.
	// Returns [ErrReportNotFound] if none exists.
	GetByUserID(ctx context.Context, userID int64) (models.Report, error)
}
