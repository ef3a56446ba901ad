package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/metrics"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type ratingService struct {
	userRepository   store.UserRepository
	ratingRepository store.RatingRepository
	catalog          *catalog.Catalog
	validator        validators.Validator
	locks            *userLock

	logger *logger.Logger
}

func NewRatingService(userRepository store.UserRepository, ratingRepository store.RatingRepository, catalog *catalog.Catalog, logger *logger.Logger) RatingService {
	return &ratingService{
		userRepository:   userRepository,
		ratingRepository: ratingRepository,
		catalog:          catalog,
		validator:        validators.NewJourneyValidator(),
		locks:            newUserLock(),
		logger:           logger,
	}
}

// SubmitRating stores the day's rating, overwriting the score and timestamp
// if one already exists for (user, day). A successful submission also pulls
// the user's journey day forward when the rated day is ahead of it; it never
// moves the day back.
func (r *ratingService) SubmitRating(ctx context.Context, submission models.RatingSubmission) (models.Rating, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, submission); err != nil {
		return models.Rating{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if _, ok := r.catalog.PassageByID(submission.PassageID); !ok {
		return models.Rating{}, fmt.Errorf("%w: %w: %d", ErrValidation, ErrUnknownPassage, submission.PassageID)
	}

	if _, err := r.userRepository.GetByHash(ctx, submission.UserHash); err != nil {
		return models.Rating{}, err
	}

	unlock := r.locks.Lock(submission.UserHash)
	defer unlock()

	now := time.Now().UTC()

	rating, err := r.upsert(ctx, submission, now)
	if err != nil {
		log.Err(err).Str("func", "*ratingService.SubmitRating").Msg("error: storing rating")
		return models.Rating{}, err
	}

	if err = r.userRepository.AdvanceJourneyDay(ctx, submission.UserHash, submission.JourneyDay); err != nil {
		log.Err(err).Str("func", "*ratingService.SubmitRating").Msg("error: advancing journey day")
		return models.Rating{}, err
	}

	metrics.RatingsSubmitted.Inc()

	return rating, nil
}

// upsert holds the check-then-write sequence executed under the user lock.
// The passage reference of an existing rating stays as-is: re-rating a day
// changes the score, not which passage the day showed.
func (r *ratingService) upsert(ctx context.Context, submission models.RatingSubmission, now time.Time) (models.Rating, error) {
	_, err := r.ratingRepository.GetByUserDay(ctx, submission.UserHash, submission.JourneyDay)
	switch {
	case err == nil:
		return r.ratingRepository.UpdateScore(ctx, submission.UserHash, submission.JourneyDay, submission.Score, now)
	case errors.Is(err, store.ErrRatingNotFound):
	default:
		return models.Rating{}, err
	}

	rating, err := r.ratingRepository.Insert(ctx, models.Rating{
		UserHash:   submission.UserHash,
		PassageID:  submission.PassageID,
		Score:      submission.Score,
		JourneyDay: submission.JourneyDay,
		RatedAt:    now,
	})
	if errors.Is(err, store.ErrDuplicateRating) {
		// lost a race with another writer; fall through to overwrite
		return r.ratingRepository.UpdateScore(ctx, submission.UserHash, submission.JourneyDay, submission.Score, now)
	}
	return rating, err
}

// UpdateEngagement attaches the reflection and deeper-content fields to an
// already submitted rating. A day with no rating cannot take engagement.
func (r *ratingService) UpdateEngagement(ctx context.Context, userHash string, journeyDay int, update models.EngagementUpdate) (models.Rating, error) {
	log := logger.FromContext(ctx)

	if userHash == "" {
		return models.Rating{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}
	if journeyDay < 0 {
		return models.Rating{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNegativeJourneyDay)
	}

	rating, err := r.ratingRepository.UpdateEngagement(ctx, userHash, journeyDay, update)
	if err != nil {
		if !errors.Is(err, store.ErrRatingNotFound) {
			log.Err(err).Str("func", "*ratingService.UpdateEngagement").Msg("error: updating engagement")
		}
		return models.Rating{}, err
	}

	return rating, nil
}
