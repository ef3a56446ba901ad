package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/internal/utils"
	"github.com/velichkin/innerpath/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateUser implements [ServerAdapter]. It POSTs the onboarding answers to
// POST /api/users/create and returns the created user record.
func (h *httpServerAdapter) CreateUser(ctx context.Context, onboarding models.UserOnboarding) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(onboarding).
		SetResult(&result).
		Post("/api/users/create")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// GetUser implements [ServerAdapter].
func (h *httpServerAdapter) GetUser(ctx context.Context, userHash string) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/users/" + url.PathEscape(userHash))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// UpdateUser implements [ServerAdapter].
func (h *httpServerAdapter) UpdateUser(ctx context.Context, userHash string, update models.UserUpdate) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&result).
		Patch("/api/users/" + url.PathEscape(userHash))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// DailyContent implements [ServerAdapter].
func (h *httpServerAdapter) DailyContent(ctx context.Context, userHash string, journeyDay int) (models.DailyContent, error) {
	var result models.DailyPassageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"user_hash": userHash, "journey_day": journeyDay}).
		SetResult(&result).
		Post("/api/passages/daily")
	if err != nil {
		return models.DailyContent{}, fmt.Errorf("daily content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DailyContent{}, err
	}

	return result.DailyContent, nil
}

// SubmitRating implements [ServerAdapter].
func (h *httpServerAdapter) SubmitRating(ctx context.Context, submission models.RatingSubmission) (models.Rating, error) {
	var result models.RatingResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(submission).
		SetResult(&result).
		Post("/api/ratings/create")
	if err != nil {
		return models.Rating{}, fmt.Errorf("submit rating request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Rating{}, err
	}

	return result.Rating, nil
}

// UpdateEngagement implements [ServerAdapter].
func (h *httpServerAdapter) UpdateEngagement(ctx context.Context, userHash string, journeyDay int, update models.EngagementUpdate) (models.Rating, error) {
	var result models.RatingResponse

	body := map[string]any{"user_hash": userHash, "journey_day": journeyDay}
	if update.Reflection != nil {
		body["reflection"] = *update.Reflection
	}
	if update.ViewedDeeper != nil {
		body["viewed_deeper"] = *update.ViewedDeeper
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/api/ratings/engagement")
	if err != nil {
		return models.Rating{}, fmt.Errorf("engagement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Rating{}, err
	}

	return result.Rating, nil
}

// Progress implements [ServerAdapter].
func (h *httpServerAdapter) Progress(ctx context.Context, userHash string) (models.Progress, error) {
	var result models.ProgressResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/progress/" + url.PathEscape(userHash))
	if err != nil {
		return models.Progress{}, fmt.Errorf("progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Progress{}, err
	}

	return result.Progress, nil
}

// GenerateReport implements [ServerAdapter].
func (h *httpServerAdapter) GenerateReport(ctx context.Context, userHash string) (models.Report, error) {
	var result models.ReportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"user_hash": userHash}).
		SetResult(&result).
		Post("/api/reports/generate")
	if err != nil {
		return models.Report{}, fmt.Errorf("generate report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	return result.Report, nil
}

// GetReport implements [ServerAdapter].
func (h *httpServerAdapter) GetReport(ctx context.Context, userHash string) (models.Report, error) {
	var result models.ReportResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/reports/" + url.PathEscape(userHash))
	if err != nil {
		return models.Report{}, fmt.Errorf("get report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	return result.Report, nil
}
