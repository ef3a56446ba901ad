package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

// reportRepository is the SQL-backed implementation of [ReportRepository].
// The at-most-one-report-per-user invariant is realized through Replace:
// delete and insert inside a single transaction.
type reportRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReportRepository constructs a [ReportRepository] backed by the provided
// database connection and logger.
func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

// Replace removes any prior report of the user and inserts the new one in a
// single transaction, so readers never observe zero or two reports for a
// user that has generated one.
func (r *reportRepository) Replace(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	percentages, err := json.Marshal(report.TraditionPercentages)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: encoding percentages")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insights, err := json.Marshal(report.Insights)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: encoding insights")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete(report.TableName()).
		Where(sq.Eq{"user_id": report.UserID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: building delete query")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.db.builder.
		Insert(report.TableName()).
		Columns(reportColumns[1:]...).
		Values(
			report.UserID,
			report.TopTradition,
			percentages,
			insights,
			report.GeneratedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: building insert query")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: beginning transaction")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: deleting prior report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&report.ID); err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: inserting report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reportRepository.Replace").Msg("error: committing transaction")
		return models.Report{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return report, nil
}

// GetByUserID returns the current report of the user.
func (r *reportRepository) GetByUserID(ctx context.Context, userID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(reportColumns...).
		From(models.Report{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reportRepository.GetByUserID").Msg("error: building select query")
		return models.Report{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var report models.Report
	var percentages, insights []byte

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&report.ID,
		&report.UserID,
		&report.TopTradition,
		&percentages,
		&insights,
		&report.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).Str("func", "*reportRepository.GetByUserID").Msg("error: scanning report row")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(percentages, &report.TraditionPercentages); err != nil {
		return models.Report{}, fmt.Errorf("decoding percentages: %w", err)
	}
	if err = json.Unmarshal(insights, &report.Insights); err != nil {
		return models.Report{}, fmt.Errorf("decoding insights: %w", err)
	}

	return report, nil
}
