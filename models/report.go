package models

import "time"

// Report is the one-shot summary generated once a user has accumulated
// enough ratings. At most one Report exists per user: regeneration replaces
// the previous record instead of appending.
type Report struct {
	ID int64 `json:"id"`

	// UserID references the user's internal ID, not the client-facing hash.
	UserID int64 `json:"user_id"`

	// TopTradition is the tradition with the strictly highest percentage.
	// Ties resolve to the first tradition in the user's selected order.
	TopTradition string `json:"top_tradition"`

	// TraditionPercentages maps every selected tradition to its integer
	// alignment share. Entries are rounded independently and do not have to
	// sum to exactly 100.
	TraditionPercentages map[string]int `json:"tradition_percentages"`

	// Insights is the fixed-shape sequence of generated summary lines.
	Insights []string `json:"insights"`

	GeneratedAt time.Time `json:"generated_at"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

// TraditionScore is one per-tradition accumulator of the alignment
// computation: raw rating sum, number of ratings, and their average.
type TraditionScore struct {
	Total int     `json:"total"`
	Count int     `json:"count"`
	Avg   float64 `json:"avg"`
}
