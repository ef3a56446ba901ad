package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles journey participant creation, lookup, and allow-listed updates
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the fully populated
// [models.User] with the server-assigned ID.
//
// The caller (user service) generates the user hash; a unique_violation on
// it is effectively unreachable given the hash entropy and is surfaced as a
// wrapped DB error rather than a sentinel.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	traditions, err := json.Marshal(user.SelectedTraditions)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: encoding selected traditions")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns(userColumns[1:]...).
		Values(
			user.UserHash,
			user.JourneyDay,
			user.JourneyStartDate,
			traditions,
			user.SubscriptionStatus,
			user.NotificationsEnabled,
			user.DarkModeEnabled,
			user.HapticsEnabled,
			user.AudioEnabled,
			user.GraceDaysUsed,
			user.Intention,
			user.Commitment,
			user.LearningPreference,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, fmt.Errorf("user hash collision: %w", err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// GetByHash retrieves the user record whose user_hash matches the one
// provided. Returns [ErrUserNotFound] for an empty result set.
func (r *userRepository) GetByHash(ctx context.Context, userHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_hash": userHash}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetByHash").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetByHash").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// Update applies the non-nil fields of upd to the user record. The SET
// clause is built dynamically, so absent fields never appear in the
// statement at all. Returns the updated row.
func (r *userRepository) Update(ctx context.Context, userHash string, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if upd.IsEmpty() {
		// nothing to write, behave as a read
		return r.GetByHash(ctx, userHash)
	}

	builder := r.db.builder.
		Update(models.User{}.TableName()).
		Where(sq.Eq{"user_hash": userHash})

	if upd.JourneyDay != nil {
		builder = builder.Set("journey_day", *upd.JourneyDay)
	}
	if upd.SubscriptionStatus != nil {
		builder = builder.Set("subscription_status", *upd.SubscriptionStatus)
	}
	if upd.NotificationsEnabled != nil {
		builder = builder.Set("notifications_enabled", *upd.NotificationsEnabled)
	}
	if upd.DarkModeEnabled != nil {
		builder = builder.Set("dark_mode_enabled", *upd.DarkModeEnabled)
	}
	if upd.HapticsEnabled != nil {
		builder = builder.Set("haptics_enabled", *upd.HapticsEnabled)
	}
	if upd.AudioEnabled != nil {
		builder = builder.Set("audio_enabled", *upd.AudioEnabled)
	}
	if upd.GraceDaysUsed != nil {
		builder = builder.Set("grace_days_used", *upd.GraceDaysUsed)
	}
	if upd.Intention != nil {
		builder = builder.Set("intention", *upd.Intention)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: executing update")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Msg("error: reading rows affected")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.GetByHash(ctx, userHash)
}

// AdvanceJourneyDay raises journey_day to day only when the stored value is
// lower. The guard lives in the WHERE clause so the monotonic invariant
// holds even if two submissions race past the service-level lock.
func (r *userRepository) AdvanceJourneyDay(ctx context.Context, userHash string, day int) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("journey_day", day).
		Where(sq.Eq{"user_hash": userHash}).
		Where(sq.Lt{"journey_day": day}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AdvanceJourneyDay").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// zero affected rows is the normal case for a re-rated or past day
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.AdvanceJourneyDay").Msg("error: executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var traditions []byte

	err := row.Scan(
		&user.ID,
		&user.UserHash,
		&user.JourneyDay,
		&user.JourneyStartDate,
		&traditions,
		&user.SubscriptionStatus,
		&user.NotificationsEnabled,
		&user.DarkModeEnabled,
		&user.HapticsEnabled,
		&user.AudioEnabled,
		&user.GraceDaysUsed,
		&user.Intention,
		&user.Commitment,
		&user.LearningPreference,
	)
	if err != nil {
		return models.User{}, err
	}

	if err = json.Unmarshal(traditions, &user.SelectedTraditions); err != nil {
		return models.User{}, fmt.Errorf("decoding selected traditions: %w", err)
	}

	return user, nil
}
