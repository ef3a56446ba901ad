package store

import (
	"context"
	"fmt"

	"github.com/velichkin/innerpath/internal/config"
	"github.com/velichkin/innerpath/internal/logger"
)

// Storages bundles the three entity repositories behind one construction
// point so the service layer receives a single dependency.
type Storages struct {
	UserRepository   UserRepository
	RatingRepository RatingRepository
	ReportRepository ReportRepository
}

// NewStorages connects the backend selected by cfg and wires the
// repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "postgres":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RatingRepository: NewRatingRepository(db, log),
		ReportRepository: NewReportRepository(db, log),
	}, nil
}
