package service

import (
	"github.com/velichkin/innerpath/internal/catalog"
	"github.com/velichkin/innerpath/internal/config"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/store"
)

type Services struct {
	UserService        UserService
	SelectionService   SelectionService
	RatingService      RatingService
	AggregationService AggregationService
	ReportService      ReportService
	ProgressService    ProgressService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, catalog *catalog.Catalog, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	aggregation := NewAggregationService(catalog)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserService:        NewUserService(storages.UserRepository, catalog, logger),
		SelectionService:   NewSelectionService(storages.UserRepository, storages.RatingRepository, catalog, logger),
		RatingService:      NewRatingService(storages.UserRepository, storages.RatingRepository, catalog, logger),
		AggregationService: aggregation,
		ReportService:      NewReportService(storages, aggregation, catalog, cfg.App, logger),
		ProgressService:    NewProgressService(storages, aggregation, catalog, cfg.App, logger),
		AppInfoService:     appInfo,
	}, nil
}
