package service

import (
	"context"

	"github.com/velichkin/innerpath/models"
)

type UserService interface {
	CreateUser(ctx context.Context, onboarding models.UserOnboarding) (models.User, error)
	GetUser(ctx context.Context, userHash string) (models.User, error)
	UpdateUser(ctx context.Context, userHash string, update models.UserUpdate) (models.User, error)
}

// SelectionService resolves which passage and practice a user sees on a
// given journey day.
type SelectionService interface {
	DailyContent(ctx context.Context, userHash string, journeyDay int) (models.DailyContent, error)
}

type RatingService interface {
	SubmitRating(ctx context.Context, submission models.RatingSubmission) (models.Rating, error)
	UpdateEngagement(ctx context.Context, userHash string, journeyDay int, update models.EngagementUpdate) (models.Rating, error)
}

// AggregationService turns a user's accumulated ratings into per-tradition
// score summaries and alignment percentages.
type AggregationService interface {
	TraditionScores(user models.User, ratings []models.RatedPassage) map[string]*models.TraditionScore
	TraditionPercentages(scores map[string]*models.TraditionScore) map[string]int
}

type ReportService interface {
	GenerateReport(ctx context.Context, userHash string) (models.Report, error)
	GetReport(ctx context.Context, userHash string) (models.Report, error)
}

type ProgressService interface {
	Progress(ctx context.Context, userHash string) (models.Progress, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
