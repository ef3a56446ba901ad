package service

import (
	"context"
	"fmt"
	"time"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/config"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/metrics"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type reportService struct {
	userRepository   store.UserRepository
	ratingRepository store.RatingRepository
	reportRepository store.ReportRepository
	aggregation      AggregationService
	catalog          *catalog.Catalog
	cfg              config.App

	logger *logger.Logger
}

func NewReportService(storages *store.Storages, aggregation AggregationService, catalog *catalog.Catalog, cfg config.App, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:   storages.UserRepository,
		ratingRepository: storages.RatingRepository,
		reportRepository: storages.ReportRepository,
		aggregation:      aggregation,
		catalog:          catalog,
		cfg:              cfg,
		logger:           logger,
	}
}

// GenerateReport computes the alignment report from the user's full rating
// history and stores it, replacing any prior report. The eligibility floor
// is the engine's own minimum; clients may advertise a higher recommended
// count but that gate lives in the progress payload, not here.
func (r *reportService) GenerateReport(ctx context.Context, userHash string) (models.Report, error) {
	log := logger.FromContext(ctx)

	if userHash == "" {
		return models.Report{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}

	user, err := r.userRepository.GetByHash(ctx, userHash)
	if err != nil {
		return models.Report{}, err
	}

	ratings, err := r.ratingRepository.ListByUser(ctx, userHash)
	if err != nil {
		return models.Report{}, err
	}
	if len(ratings) < r.cfg.ReportMinRatings {
		return models.Report{}, fmt.Errorf("%w: %w", ErrValidation, ErrInsufficientRatings)
	}

	rated := joinRatings(r.catalog, ratings)
	scores := r.aggregation.TraditionScores(user, rated)
	percentages := r.aggregation.TraditionPercentages(scores)

	topTradition, highest := topOf(orderedTraditions(user, r.catalog), percentages)

	report := models.Report{
		UserID:               user.ID,
		TopTradition:         topTradition,
		TraditionPercentages: percentages,
		Insights: []string{
			fmt.Sprintf("Your reflection journey reveals a %d%% resonance with %s.", highest, topTradition),
			fmt.Sprintf("You have logged %d ratings over %d days.", len(rated), user.JourneyDay),
			"Consistency builds clarity. Keep showing up for your daily passage.",
		},
		GeneratedAt: time.Now().UTC(),
	}

	stored, err := r.reportRepository.Replace(ctx, report)
	if err != nil {
		log.Err(err).Str("func", "*reportService.GenerateReport").Msg("error: storing report")
		return models.Report{}, err
	}

	metrics.ReportsGenerated.Inc()

	return stored, nil
}

// GetReport returns the user's stored report without recomputing it.
func (r *reportService) GetReport(ctx context.Context, userHash string) (models.Report, error) {
	if userHash == "" {
		return models.Report{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}

	user, err := r.userRepository.GetByHash(ctx, userHash)
	if err != nil {
		return models.Report{}, err
	}

	return r.reportRepository.GetByUserID(ctx, user.ID)
}

// topOf picks the tradition with the strictly highest percentage, walking
// the traditions in their selected order so ties resolve to the earlier one.
func topOf(traditions []string, percentages map[string]int) (string, int) {
	var top string
	var highest int
	for _, tradition := range traditions {
		if pct := percentages[tradition]; pct > highest {
			highest = pct
			top = tradition
		}
	}
	return top, highest
}

func orderedTraditions(user models.User, c *catalog.Catalog) []string {
	if len(user.SelectedTraditions) > 0 {
		return user.SelectedTraditions
	}
	return c.Traditions()
}
