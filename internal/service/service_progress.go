package service

import (
	"context"
	"fmt"
	"time"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/config"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type progressService struct {
	userRepository   store.UserRepository
	ratingRepository store.RatingRepository
	aggregation      AggregationService
	catalog          *catalog.Catalog
	cfg              config.App

	logger *logger.Logger

	// now is swapped in tests to pin the trailing-days window.
	now func() time.Time
}

func NewProgressService(storages *store.Storages, aggregation AggregationService, catalog *catalog.Catalog, cfg config.App, logger *logger.Logger) ProgressService {
	return &progressService{
		userRepository:   storages.UserRepository,
		ratingRepository: storages.RatingRepository,
		aggregation:      aggregation,
		catalog:          catalog,
		cfg:              cfg,
		logger:           logger,
		now:              time.Now,
	}
}

// Progress assembles the full journey state of a user: the rating history
// joined with catalog content, the trailing-days window, per-tradition
// aggregates and the countdown to journey end.
func (p *progressService) Progress(ctx context.Context, userHash string) (models.Progress, error) {
	if userHash == "" {
		return models.Progress{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}

	user, err := p.userRepository.GetByHash(ctx, userHash)
	if err != nil {
		return models.Progress{}, err
	}

	ratings, err := p.ratingRepository.ListByUser(ctx, userHash)
	if err != nil {
		return models.Progress{}, err
	}
	rated := joinRatings(p.catalog, ratings)

	scores := p.aggregation.TraditionScores(user, rated)
	percentages := p.aggregation.TraditionPercentages(scores)

	daysRemaining := p.cfg.JourneyLengthDays - user.JourneyDay
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return models.Progress{
		User:                 user,
		Ratings:              rated,
		LastDays:             p.lastDays(user, rated),
		TraditionScores:      scores,
		TraditionPercentages: percentages,
		TotalRatings:         len(rated),
		DaysRemaining:        daysRemaining,
		ReportAvailable:      len(rated) >= p.cfg.ReportRecommendedRatings,
	}, nil
}

// lastDays builds the trailing window ending at the user's current day. The
// window is capped by calendar time since journey start, so a user who bulk
// advanced journey_day past today still sees a window ending at today.
func (p *progressService) lastDays(user models.User, rated []models.RatedPassage) []models.DayStatus {
	daysSinceStart := int(p.now().UTC().Sub(user.JourneyStartDate).Hours() / 24)
	currentDay := user.JourneyDay
	if daysSinceStart < currentDay {
		currentDay = daysSinceStart
	}

	ratedDays := make(map[int]bool, len(rated))
	for _, rating := range rated {
		ratedDays[rating.JourneyDay] = true
	}

	first := currentDay - (p.cfg.ProgressWindowDays - 1)
	if first < 0 {
		first = 0
	}

	var window []models.DayStatus
	for day := first; day <= currentDay; day++ {
		window = append(window, models.DayStatus{
			Day:   day,
			Rated: ratedDays[day],
			Date:  user.JourneyStartDate.AddDate(0, 0, day),
		})
	}

	return window
}

// joinRatings decorates each rating with its catalog passage. Ratings whose
// passage vanished from the catalog keep empty content fields rather than
// dropping out of the history.
func joinRatings(c *catalog.Catalog, ratings []models.Rating) []models.RatedPassage {
	joined := make([]models.RatedPassage, 0, len(ratings))
	for _, rating := range ratings {
		rated := models.RatedPassage{Rating: rating}
		if passage, ok := c.PassageByID(rating.PassageID); ok {
			rated.Tradition = passage.Tradition
			rated.Text = passage.Text
			rated.Source = passage.Source
		}
		joined = append(joined, rated)
	}
	return joined
}
