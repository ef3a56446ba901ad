package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	adapter, err := NewHTTPServerAdapter(server.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return adapter
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

// ─────────────────────────────────────────────
// NewHTTPServerAdapter
// ─────────────────────────────────────────────

func TestNewHTTPServerAdapter_AddressNormalization(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "host and port", address: "localhost:8080"},
		{name: "explicit scheme", address: "http://localhost:8080"},
		{name: "https scheme", address: "https://example.com"},
		{name: "trailing slash", address: "http://localhost:8080/"},
		{name: "empty", address: "", wantErr: true},
		{name: "whitespace only", address: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewHTTPServerAdapter(tt.address, time.Second, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, adapter)
		})
	}
}

// ─────────────────────────────────────────────
// Request round trips
// ─────────────────────────────────────────────

func TestHTTPServerAdapter_CreateUser(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/users/create", func(w http.ResponseWriter, r *http.Request) {
		var onboarding models.UserOnboarding
		require.NoError(t, json.NewDecoder(r.Body).Decode(&onboarding))
		assert.Equal(t, []string{"Buddhism"}, onboarding.SelectedTraditions)

		writeJSON(t, w, http.StatusOK, models.UserResponse{
			Success: true,
			User:    models.User{ID: 1, UserHash: "hash-1", SelectedTraditions: onboarding.SelectedTraditions},
		})
	})

	adapter := newTestAdapter(t, mux)

	user, err := adapter.CreateUser(context.Background(), models.UserOnboarding{SelectedTraditions: []string{"Buddhism"}})
	require.NoError(t, err)
	assert.Equal(t, "hash-1", user.UserHash)
}

func TestHTTPServerAdapter_GetUser_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users/{hash}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
	})

	adapter := newTestAdapter(t, mux)

	_, err := adapter.GetUser(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User not found")
}

func TestHTTPServerAdapter_SubmitRating_BadRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/ratings/create", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Rating must be between 0 and 6"})
	})

	adapter := newTestAdapter(t, mux)

	_, err := adapter.SubmitRating(context.Background(), models.RatingSubmission{
		UserHash: "hash-1", PassageID: 4, Score: 7, JourneyDay: 3,
	})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Rating must be between 0 and 6")
}

func TestHTTPServerAdapter_DailyContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/passages/daily", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hash-1", req["user_hash"])
		assert.Equal(t, float64(3), req["journey_day"])

		writeJSON(t, w, http.StatusOK, models.DailyPassageResponse{
			Success: true,
			DailyContent: models.DailyContent{
				Passage:  models.Passage{ID: 4, Tradition: "Buddhism", Text: "Peace comes from within."},
				Practice: models.Practice{ID: 2, Tradition: "Buddhism"},
			},
		})
	})

	adapter := newTestAdapter(t, mux)

	content, err := adapter.DailyContent(context.Background(), "hash-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 4, content.Passage.ID)
	assert.Equal(t, "Buddhism", content.Practice.Tradition)
}

func TestHTTPServerAdapter_UpdateEngagement_OmitsAbsentFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/ratings/engagement", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "reflection")
		assert.NotContains(t, req, "viewed_deeper")

		writeJSON(t, w, http.StatusOK, models.RatingResponse{Success: true, Rating: models.Rating{ID: 1}})
	})

	adapter := newTestAdapter(t, mux)

	reflection := "a note"
	_, err := adapter.UpdateEngagement(context.Background(), "hash-1", 3, models.EngagementUpdate{Reflection: &reflection})
	require.NoError(t, err)
}

func TestHTTPServerAdapter_Progress(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/progress/{hash}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ProgressResponse{
			Success: true,
			Progress: models.Progress{
				TotalRatings:  4,
				DaysRemaining: 26,
			},
		})
	})

	adapter := newTestAdapter(t, mux)

	progress, err := adapter.Progress(context.Background(), "hash-1")
	require.NoError(t, err)
	assert.Equal(t, 4, progress.TotalRatings)
	assert.Equal(t, 26, progress.DaysRemaining)
}

func TestHTTPServerAdapter_GenerateReport(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/reports/generate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ReportResponse{
			Success:      true,
			Report:       models.Report{ID: 9, TopTradition: "Christianity"},
			TopTradition: "Christianity",
		})
	})

	adapter := newTestAdapter(t, mux)

	report, err := adapter.GenerateReport(context.Background(), "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "Christianity", report.TopTradition)
}

func TestHTTPServerAdapter_NotSupportedOperation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotImplemented, models.ErrorResponse{Error: "Unsupported operation"})
	})

	adapter := newTestAdapter(t, handler)

	_, err := adapter.GetReport(context.Background(), "hash-1")
	require.ErrorIs(t, err, ErrNotSupported)
}

func TestHTTPServerAdapter_InternalServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	})

	adapter := newTestAdapter(t, handler)

	_, err := adapter.Progress(context.Background(), "hash-1")
	require.ErrorIs(t, err, ErrInternalServerError)
}
