package models

// Every operation response carries a Success flag so the presentation layer
// can branch on a single field before looking at the payload. Failures are
// normalized into ErrorResponse by the HTTP layer regardless of which
// component produced the error.

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// UserResponse wraps a single user record.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// DailyPassageResponse is the payload of the daily-content operation.
// ExistingRating is present when the user already rated the requested day,
// so the caller can short-circuit re-rating.
type DailyPassageResponse struct {
	Success bool `json:"success"`
	DailyContent
}

// RatingResponse wraps the rating record after a submit or engagement call.
type RatingResponse struct {
	Success bool   `json:"success"`
	Rating  Rating `json:"rating"`
}

// ProgressResponse aggregates everything the progress screen needs in a
// single round trip. ReportAvailable mirrors the client-facing gate
// (recommended rating count), not the engine's own eligibility floor.
type ProgressResponse struct {
	Success bool `json:"success"`
	Progress
}

// ReportResponse wraps a freshly generated report. TopTradition, percentages
// and insights are duplicated at the top level for callers that do not keep
// the report record.
type ReportResponse struct {
	Success              bool           `json:"success"`
	Report               Report         `json:"report"`
	TraditionPercentages map[string]int `json:"tradition_percentages"`
	TopTradition         string         `json:"top_tradition"`
	Insights             []string       `json:"insights"`
}
