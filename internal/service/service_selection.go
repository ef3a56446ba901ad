package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type selectionService struct {
	userRepository   store.UserRepository
	ratingRepository store.RatingRepository
	catalog          *catalog.Catalog

	logger *logger.Logger
}

func NewSelectionService(userRepository store.UserRepository, ratingRepository store.RatingRepository, catalog *catalog.Catalog, logger *logger.Logger) SelectionService {
	return &selectionService{
		userRepository:   userRepository,
		ratingRepository: ratingRepository,
		catalog:          catalog,
		logger:           logger,
	}
}

// DailyContent resolves the passage and practice for the requested journey
// day. The tradition rotates through the user's selected set by day index;
// within a tradition the concrete passage is a pure function of (user hash,
// day), so repeated calls for the same day always return the same content.
func (s *selectionService) DailyContent(ctx context.Context, userHash string, journeyDay int) (models.DailyContent, error) {
	log := logger.FromContext(ctx)

	if userHash == "" {
		return models.DailyContent{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}
	if journeyDay < 0 {
		return models.DailyContent{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNegativeJourneyDay)
	}

	user, err := s.userRepository.GetByHash(ctx, userHash)
	if err != nil {
		return models.DailyContent{}, err
	}

	traditions := user.SelectedTraditions
	if len(traditions) == 0 {
		traditions = s.catalog.Traditions()
	}
	tradition := traditions[journeyDay%len(traditions)]

	passages := s.catalog.PassagesByTradition(tradition)
	practices := s.catalog.PracticesByTradition(tradition)
	if len(passages) == 0 || len(practices) == 0 {
		log.Error().Str("func", "*selectionService.DailyContent").Str("tradition", tradition).Msg("error: tradition has no content")
		return models.DailyContent{}, fmt.Errorf("no content for tradition %q", tradition)
	}

	seed := selectionSeed(userHash, journeyDay)
	content := models.DailyContent{
		Passage:  passages[seed%uint64(len(passages))],
		Practice: practices[seed%uint64(len(practices))],
	}

	existing, err := s.ratingRepository.GetByUserDay(ctx, userHash, journeyDay)
	switch {
	case err == nil:
		content.ExistingRating = &existing
	case errors.Is(err, store.ErrRatingNotFound):
	default:
		return models.DailyContent{}, err
	}

	return content, nil
}

// selectionSeed hashes (userHash, journeyDay) so different users see
// different passages on the same day while each user's pick stays stable.
func selectionSeed(userHash string, journeyDay int) uint64 {
	h := fnv.New64a()
	h.Write([]byte(userHash))
	h.Write([]byte{byte(journeyDay), byte(journeyDay >> 8), byte(journeyDay >> 16), byte(journeyDay >> 24)})
	return h.Sum64()
}
