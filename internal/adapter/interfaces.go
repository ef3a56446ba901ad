// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Velichkin

// Package adapter provides transport-layer abstractions for communicating
// with the innerpath server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrNotSupported] for 501).
package adapter

import (
	"context"

	"github.com/velichkin/innerpath/models"
)

// ServerAdapter defines transport-agnostic communication with the innerpath
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// CreateUser registers a new user from the onboarding answers and
	// returns the created record including the server-issued user hash.
	CreateUser(ctx context.Context, onboarding models.UserOnboarding) (models.User, error)

	// GetUser fetches the user record for the given hash.
	GetUser(ctx context.Context, userHash string) (models.User, error)

	// UpdateUser patches the allow-listed user fields and returns the
	// updated record.
	UpdateUser(ctx context.Context, userHash string, update models.UserUpdate) (models.User, error)

	// DailyContent fetches the passage and practice of the given journey
	// day, plus the existing rating when the day was already rated.
	DailyContent(ctx context.Context, userHash string, journeyDay int) (models.DailyContent, error)

	// SubmitRating stores the day's rating, overwriting a prior one.
	SubmitRating(ctx context.Context, submission models.RatingSubmission) (models.Rating, error)

	// UpdateEngagement attaches reflection and deeper-content fields to an
	// already submitted rating.
	UpdateEngagement(ctx context.Context, userHash string, journeyDay int, update models.EngagementUpdate) (models.Rating, error)

	// Progress fetches the aggregated journey state of the user.
	Progress(ctx context.Context, userHash string) (models.Progress, error)

	// GenerateReport asks the server to compute and store the alignment
	// report from the user's full rating history.
	GenerateReport(ctx context.Context, userHash string) (models.Report, error)

	// GetReport fetches the stored report without recomputing it.
	GetReport(ctx context.Context, userHash string) (models.Report, error)
}
