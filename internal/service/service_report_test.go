package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velichkin/innerpath/internal/config"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/mock"
	"github.com/velichkin/innerpath/internal/store"
	"github.com/velichkin/innerpath/internal/validators"
	"github.com/velichkin/innerpath/models"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		JourneyLengthDays:        30,
		ReportMinRatings:         5,
		ReportRecommendedRatings: 10,
		ProgressWindowDays:       7,
		Version:                  "test",
	}
}

func newTestReportService(t *testing.T, ctrl *gomock.Controller) (ReportService, *mock.MockUserRepository, *mock.MockRatingRepository, *mock.MockReportRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	ratings := mock.NewMockRatingRepository(ctrl)
	reports := mock.NewMockReportRepository(ctrl)

	storages := &store.Storages{
		UserRepository:   users,
		RatingRepository: ratings,
		ReportRepository: reports,
	}
	cat := testCatalog(t)
	svc := NewReportService(storages, NewAggregationService(cat), cat, testAppConfig(), logger.Nop())

	return svc, users, ratings, reports
}

// fiveDayHistory covers the eligibility floor exactly: three Christianity
// passages rated 5 and two Buddhism passages rated 1.
func fiveDayHistory() []models.Rating {
	return []models.Rating{
		{ID: 1, UserHash: "hash-1", PassageID: 1, Score: 5, JourneyDay: 0},
		{ID: 2, UserHash: "hash-1", PassageID: 2, Score: 5, JourneyDay: 1},
		{ID: 3, UserHash: "hash-1", PassageID: 3, Score: 5, JourneyDay: 2},
		{ID: 4, UserHash: "hash-1", PassageID: 4, Score: 1, JourneyDay: 3},
		{ID: 5, UserHash: "hash-1", PassageID: 5, Score: 1, JourneyDay: 4},
	}
}

// ─────────────────────────────────────────────
// GenerateReport
// ─────────────────────────────────────────────

func TestReportService_GenerateReport_AtEligibilityFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, ratings, reports := newTestReportService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:                 3,
		UserHash:           "hash-1",
		JourneyDay:         4,
		SelectedTraditions: []string{"Christianity", "Buddhism"},
	}

	users.EXPECT().GetByHash(ctx, "hash-1").Return(user, nil)
	ratings.EXPECT().ListByUser(ctx, "hash-1").Return(fiveDayHistory(), nil)
	reports.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.Report) (models.Report, error) {
			report.ID = 9
			return report, nil
		})

	report, err := svc.GenerateReport(ctx, "hash-1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.UserID)
	assert.Equal(t, "Christianity", report.TopTradition)
	assert.Equal(t, 83, report.TraditionPercentages["Christianity"])
	assert.Equal(t, 17, report.TraditionPercentages["Buddhism"])
	assert.False(t, report.GeneratedAt.IsZero())

	require.Len(t, report.Insights, 3)
	assert.Equal(t, "Your reflection journey reveals a 83% resonance with Christianity.", report.Insights[0])
	assert.Equal(t, "You have logged 5 ratings over 4 days.", report.Insights[1])
	assert.Equal(t, "Consistency builds clarity. Keep showing up for your daily passage.", report.Insights[2])
}

func TestReportService_GenerateReport_BelowEligibilityFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, ratings, _ := newTestReportService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByHash(ctx, "hash-1").Return(models.User{ID: 3, UserHash: "hash-1"}, nil)
	ratings.EXPECT().ListByUser(ctx, "hash-1").Return(fiveDayHistory()[:4], nil)

	_, err := svc.GenerateReport(ctx, "hash-1")
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, ErrInsufficientRatings)
}

func TestReportService_GenerateReport_TieResolvesToSelectionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, ratings, reports := newTestReportService(t, ctrl)
	ctx := context.Background()

	user := models.User{
		ID:                 3,
		UserHash:           "hash-1",
		JourneyDay:         5,
		SelectedTraditions: []string{"Islam", "Hinduism"},
	}

	// identical averages on both traditions: passages 7-9 are Islam, 10 Hinduism
	history := []models.Rating{
		{ID: 1, UserHash: "hash-1", PassageID: 7, Score: 3, JourneyDay: 0},
		{ID: 2, UserHash: "hash-1", PassageID: 8, Score: 3, JourneyDay: 1},
		{ID: 3, UserHash: "hash-1", PassageID: 10, Score: 3, JourneyDay: 2},
		{ID: 4, UserHash: "hash-1", PassageID: 9, Score: 3, JourneyDay: 3},
		{ID: 5, UserHash: "hash-1", PassageID: 10, Score: 3, JourneyDay: 4},
	}

	users.EXPECT().GetByHash(ctx, "hash-1").Return(user, nil)
	ratings.EXPECT().ListByUser(ctx, "hash-1").Return(history, nil)
	reports.EXPECT().
		Replace(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, report models.Report) (models.Report, error) {
			return report, nil
		})

	report, err := svc.GenerateReport(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "Islam", report.TopTradition, "ties must resolve to the earlier selected tradition")
}

func TestReportService_GenerateReport_EmptyHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestReportService(t, ctrl)

	_, err := svc.GenerateReport(context.Background(), "")
	require.ErrorIs(t, err, validators.ErrNoUserHash)
}

func TestReportService_GenerateReport_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, _ := newTestReportService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByHash(ctx, "missing").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GenerateReport(ctx, "missing")
	require.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// GetReport
// ─────────────────────────────────────────────

func TestReportService_GetReport_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, reports := newTestReportService(t, ctrl)
	ctx := context.Background()

	expected := models.Report{ID: 9, UserID: 3, TopTradition: "Christianity"}

	users.EXPECT().GetByHash(ctx, "hash-1").Return(models.User{ID: 3, UserHash: "hash-1"}, nil)
	reports.EXPECT().GetByUserID(ctx, int64(3)).Return(expected, nil)

	report, err := svc.GetReport(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestReportService_GetReport_NotGeneratedYet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _, reports := newTestReportService(t, ctrl)
	ctx := context.Background()

	users.EXPECT().GetByHash(ctx, "hash-1").Return(models.User{ID: 3, UserHash: "hash-1"}, nil)
	reports.EXPECT().GetByUserID(ctx, int64(3)).Return(models.Report{}, store.ErrReportNotFound)

	_, err := svc.GetReport(ctx, "hash-1")
	require.ErrorIs(t, err, store.ErrReportNotFound)
}
