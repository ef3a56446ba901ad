package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

// ratingRepository is the SQL-backed implementation of [RatingRepository].
// It maintains the one-rating-per-(user, day) collection and the engagement
// fields attached to each rating.
type ratingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRatingRepository constructs a [RatingRepository] backed by the provided
// database connection and logger.
func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{
		db:     db,
		logger: logger,
	}
}

// GetByUserDay retrieves the rating stored for (userHash, journeyDay).
func (r *ratingRepository) GetByUserDay(ctx context.Context, userHash string, journeyDay int) (models.Rating, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(ratingColumns...).
		From(models.Rating{}.TableName()).
		Where(sq.Eq{"user_hash": userHash, "journey_day": journeyDay}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.GetByUserDay").Msg("error: building select query")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rating, err := scanRating(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rating{}, ErrRatingNotFound
		}
		log.Err(err).Str("func", "*ratingRepository.GetByUserDay").Msg("error: scanning rating row")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rating, nil
}

// Insert persists a new rating row. A unique_violation means another writer
// has already created the day's rating and is mapped to [ErrDuplicateRating].
func (r *ratingRepository) Insert(ctx context.Context, rating models.Rating) (models.Rating, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(rating.TableName()).
		Columns(ratingColumns[1:]...).
		Values(
			rating.UserHash,
			rating.PassageID,
			rating.Score,
			rating.JourneyDay,
			rating.RatedAt,
			rating.ViewedDeeperContent,
			reflectionValue(rating.EndOfDayReflection),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.Insert").Msg("error: building insert query")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&rating.ID); err != nil {
		log.Err(err).Str("func", "*ratingRepository.Insert").Msg("error: inserting rating")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Rating{}, ErrDuplicateRating
		default:
			return models.Rating{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return rating, nil
}

// UpdateScore overwrites rating and rated_at of an existing row. The passage
// reference and engagement fields deliberately stay untouched on re-rating.
func (r *ratingRepository) UpdateScore(ctx context.Context, userHash string, journeyDay, score int, ratedAt time.Time) (models.Rating, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Rating{}.TableName()).
		Set("rating", score).
		Set("rated_at", ratedAt).
		Where(sq.Eq{"user_hash": userHash, "journey_day": journeyDay}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateScore").Msg("error: building update query")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateScore").Msg("error: executing update")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateScore").Msg("error: reading rows affected")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Rating{}, ErrRatingNotFound
	}

	return r.GetByUserDay(ctx, userHash, journeyDay)
}

// UpdateEngagement applies the non-nil engagement fields to an existing
// rating. Absent fields never enter the SET clause.
func (r *ratingRepository) UpdateEngagement(ctx context.Context, userHash string, journeyDay int, upd models.EngagementUpdate) (models.Rating, error) {
	log := logger.FromContext(ctx)

	if upd.Reflection == nil && upd.ViewedDeeper == nil {
		return r.GetByUserDay(ctx, userHash, journeyDay)
	}

	builder := r.db.builder.
		Update(models.Rating{}.TableName()).
		Where(sq.Eq{"user_hash": userHash, "journey_day": journeyDay})

	if upd.Reflection != nil {
		builder = builder.Set("end_of_day_reflection", *upd.Reflection)
	}
	if upd.ViewedDeeper != nil {
		builder = builder.Set("viewed_deeper_content", *upd.ViewedDeeper)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateEngagement").Msg("error: building update query")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateEngagement").Msg("error: executing update")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.UpdateEngagement").Msg("error: reading rows affected")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Rating{}, ErrRatingNotFound
	}

	return r.GetByUserDay(ctx, userHash, journeyDay)
}

// ListByUser returns every rating of the user ordered by journey_day
// ascending.
func (r *ratingRepository) ListByUser(ctx context.Context, userHash string) ([]models.Rating, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(ratingColumns...).
		From(models.Rating{}.TableName()).
		Where(sq.Eq{"user_hash": userHash}).
		OrderBy("journey_day ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.ListByUser").Msg("error: building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.ListByUser").Msg("error: executing select")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			log.Err(err).Str("func", "*ratingRepository.ListByUser").Msg("error: scanning rating rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ratings = append(ratings, rating)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*ratingRepository.ListByUser").Msg("error: iterating rating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}

// CountByUser returns the user's total rating count.
func (r *ratingRepository) CountByUser(ctx context.Context, userHash string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(models.Rating{}.TableName()).
		Where(sq.Eq{"user_hash": userHash}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ratingRepository.CountByUser").Msg("error: building count query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*ratingRepository.CountByUser").Msg("error: scanning count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func scanRating(row rowScanner) (models.Rating, error) {
	var rating models.Rating
	var reflection sql.NullString

	err := row.Scan(
		&rating.ID,
		&rating.UserHash,
		&rating.PassageID,
		&rating.Score,
		&rating.JourneyDay,
		&rating.RatedAt,
		&rating.ViewedDeeperContent,
		&reflection,
	)
	if err != nil {
		return models.Rating{}, err
	}

	if reflection.Valid {
		rating.EndOfDayReflection = &reflection.String
	}

	return rating, nil
}

func reflectionValue(reflection *string) any {
	if reflection == nil {
		return nil
	}
	return *reflection
}
