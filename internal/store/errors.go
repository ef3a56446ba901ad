package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup or update targets a user hash
	// that does not exist in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrRatingNotFound is returned when a lookup or update targets a rating
	// (identified by user_hash and journey_day) that does not exist.
	ErrRatingNotFound = errors.New("rating not found")

	// ErrReportNotFound is returned when no report exists for the given user.
	ErrReportNotFound = errors.New("report not found")

	// ErrDuplicateRating is returned when an INSERT violates the one rating
	// per (user_hash, journey_day) rule at the storage level. The service
	// layer serializes writes per user, so hitting this indicates a caller
	// bypassed the upsert path.
	ErrDuplicateRating = errors.New("rating already exists for this day")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
