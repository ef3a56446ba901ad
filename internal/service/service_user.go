package service

import (
	"context"
	"fmt"
	"time"

	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/metrics"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
)

type userService struct {
	userRepository store.UserRepository
	catalog        *catalog.Catalog
	validator      validators.Validator
	hashGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, catalog *catalog.Catalog, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		catalog:        catalog,
		validator:      validators.NewJourneyValidator(),
		hashGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateUser registers a new anonymous user from the onboarding answers. The
// user hash is generated server-side and journey state starts at day zero.
func (u *userService) CreateUser(ctx context.Context, onboarding models.UserOnboarding) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, onboarding); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	for _, tradition := range onboarding.SelectedTraditions {
		if !u.catalog.HasTradition(tradition) {
			return models.User{}, fmt.Errorf("%w: %w: %q", ErrValidation, ErrUnknownTradition, tradition)
		}
	}

	// an empty selection means the journey rotates through the full catalog
	traditions := onboarding.SelectedTraditions
	if len(traditions) == 0 {
		traditions = u.catalog.Traditions()
	}

	subscription := onboarding.SubscriptionStatus
	if subscription == "" {
		subscription = models.SubscriptionTrial
	}

	user := models.User{
		UserHash:             u.hashGenerator.Generate(),
		JourneyDay:           0,
		JourneyStartDate:     time.Now().UTC(),
		SelectedTraditions:   traditions,
		SubscriptionStatus:   subscription,
		NotificationsEnabled: true,
		DarkModeEnabled:      false,
		HapticsEnabled:       true,
		AudioEnabled:         true,
		GraceDaysUsed:        0,
		Intention:            onboarding.Intention,
		Commitment:           onboarding.Commitment,
		LearningPreference:   onboarding.LearningPreference,
	}

	created, err := u.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error: creating user")
		return models.User{}, err
	}

	metrics.UsersCreated.Inc()

	return created, nil
}

// GetUser returns the user record for the given hash.
func (u *userService) GetUser(ctx context.Context, userHash string) (models.User, error) {
	if userHash == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}
	return u.userRepository.GetByHash(ctx, userHash)
}

// UpdateUser applies the non-nil fields of update to the stored record. The
// patch operation may set journey_day to any non-negative value, backwards
// included, for out-of-band tooling.
func (u *userService) UpdateUser(ctx context.Context, userHash string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if userHash == "" {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoUserHash)
	}
	if err := u.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated, err := u.userRepository.Update(ctx, userHash, update)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Msg("error: updating user")
		return models.User{}, err
	}

	return updated, nil
}
