package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

func newTestRatingRepo(t *testing.T) (*ratingRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &ratingRepository{
		db:     &DB{DB: db, builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func ratingRows(rating models.Rating, reflection any) *sqlmock.Rows {
	return sqlmock.
		NewRows(ratingColumns).
		AddRow(
			rating.ID,
			rating.UserHash,
			rating.PassageID,
			rating.Score,
			rating.JourneyDay,
			rating.RatedAt,
			rating.ViewedDeeperContent,
			reflection,
		)
}

func TestRatingRepository_GetByUserDay_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Rating{
		ID:         1,
		UserHash:   "hash-1",
		PassageID:  4,
		Score:      5,
		JourneyDay: 2,
		RatedAt:    time.Now().UTC(),
	}

	// sq.Eq orders WHERE args by sorted column name: journey_day before user_hash
	mock.ExpectQuery("SELECT id").
		WithArgs(2, "hash-1").
		WillReturnRows(ratingRows(stored, nil))

	found, err := repo.GetByUserDay(ctx, "hash-1", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Score != 5 {
		t.Errorf("expected score 5, got %d", found.Score)
	}
	if found.EndOfDayReflection != nil {
		t.Errorf("expected nil reflection, got %v", *found.EndOfDayReflection)
	}
}

func TestRatingRepository_GetByUserDay_NotFound(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(9, "hash-1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUserDay(ctx, "hash-1", 9)
	if !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestRatingRepository_Insert_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	rating := models.Rating{
		UserHash:   "hash-1",
		PassageID:  4,
		Score:      5,
		JourneyDay: 2,
		RatedAt:    time.Now().UTC(),
	}

	rows := sqlmock.NewRows([]string{"id"}).AddRow(11)

	mock.ExpectQuery("INSERT INTO ratings").
		WithArgs(rating.UserHash, rating.PassageID, rating.Score, rating.JourneyDay, rating.RatedAt, false, nil).
		WillReturnRows(rows)

	created, err := repo.Insert(ctx, rating)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 11 {
		t.Errorf("expected ID=11, got %d", created.ID)
	}
}

func TestRatingRepository_Insert_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO ratings").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(ctx, models.Rating{UserHash: "hash-1", JourneyDay: 2})
	if !errors.Is(err, ErrDuplicateRating) {
		t.Fatalf("expected ErrDuplicateRating, got %v", err)
	}
}

func TestRatingRepository_Insert_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO ratings").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Insert(ctx, models.Rating{UserHash: "hash-1"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestRatingRepository_UpdateScore_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	stored := models.Rating{
		ID:         1,
		UserHash:   "hash-1",
		PassageID:  4,
		Score:      2,
		JourneyDay: 3,
		RatedAt:    now,
	}

	mock.ExpectExec("UPDATE ratings").
		WithArgs(2, now, 3, "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").
		WithArgs(3, "hash-1").
		WillReturnRows(ratingRows(stored, nil))

	updated, err := repo.UpdateScore(ctx, "hash-1", 3, 2, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Score != 2 {
		t.Errorf("expected score 2, got %d", updated.Score)
	}
}

func TestRatingRepository_UpdateScore_NotFound(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE ratings").
		WithArgs(2, now, 9, "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateScore(ctx, "hash-1", 9, 2, now)
	if !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestRatingRepository_UpdateEngagement_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	reflection := "a quiet day"
	stored := models.Rating{
		ID:                 1,
		UserHash:           "hash-1",
		JourneyDay:         3,
		RatedAt:            time.Now().UTC(),
		EndOfDayReflection: &reflection,
	}

	mock.ExpectExec("UPDATE ratings").
		WithArgs(reflection, 3, "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").
		WithArgs(3, "hash-1").
		WillReturnRows(ratingRows(stored, reflection))

	updated, err := repo.UpdateEngagement(ctx, "hash-1", 3, models.EngagementUpdate{Reflection: &reflection})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.EndOfDayReflection == nil || *updated.EndOfDayReflection != reflection {
		t.Errorf("expected reflection %q, got %v", reflection, updated.EndOfDayReflection)
	}
}

func TestRatingRepository_UpdateEngagement_NotFound(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	viewed := true

	mock.ExpectExec("UPDATE ratings").
		WithArgs(viewed, 9, "hash-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateEngagement(ctx, "hash-1", 9, models.EngagementUpdate{ViewedDeeper: &viewed})
	if !errors.Is(err, ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestRatingRepository_UpdateEngagement_EmptyPatchBehavesAsRead(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.Rating{ID: 1, UserHash: "hash-1", JourneyDay: 3, RatedAt: time.Now().UTC()}

	mock.ExpectQuery("SELECT id").
		WithArgs(3, "hash-1").
		WillReturnRows(ratingRows(stored, nil))

	_, err := repo.UpdateEngagement(ctx, "hash-1", 3, models.EngagementUpdate{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRatingRepository_ListByUser_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(ratingColumns).
		AddRow(1, "hash-1", 4, 5, 0, now, false, nil).
		AddRow(2, "hash-1", 7, 3, 1, now, true, "wrote a note")

	mock.ExpectQuery("SELECT id").
		WithArgs("hash-1").
		WillReturnRows(rows)

	ratings, err := repo.ListByUser(ctx, "hash-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	if ratings[0].JourneyDay != 0 || ratings[1].JourneyDay != 1 {
		t.Errorf("unexpected day order: %d, %d", ratings[0].JourneyDay, ratings[1].JourneyDay)
	}
	if ratings[1].EndOfDayReflection == nil || *ratings[1].EndOfDayReflection != "wrote a note" {
		t.Errorf("expected reflection on second rating, got %v", ratings[1].EndOfDayReflection)
	}
}

func TestRatingRepository_ListByUser_Empty(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows(ratingColumns))

	ratings, err := repo.ListByUser(ctx, "hash-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ratings) != 0 {
		t.Errorf("expected no ratings, got %d", len(ratings))
	}
}

func TestRatingRepository_CountByUser_Success(t *testing.T) {
	repo, mock, db := newTestRatingRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("hash-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountByUser(ctx, "hash-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 6 {
		t.Errorf("expected count 6, got %d", count)
	}
}
