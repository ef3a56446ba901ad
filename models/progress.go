package models

import "time"

// DayStatus is one entry of the trailing-days window shown on the progress
// screen: whether the given journey day has been rated and its calendar date
// relative to the user's journey start.
type DayStatus struct {
	Day   int       `json:"day"`
	Rated bool      `json:"rated"`
	Date  time.Time `json:"date"`
}

// Progress is the aggregated journey state computed for one user. The HTTP
// layer serializes it verbatim inside the success envelope.
type Progress struct {
	User                 User                       `json:"user"`
	Ratings              []RatedPassage             `json:"ratings"`
	LastDays             []DayStatus                `json:"last_days"`
	TraditionScores      map[string]*TraditionScore `json:"tradition_scores"`
	TraditionPercentages map[string]int             `json:"tradition_percentages"`
	TotalRatings         int                        `json:"total_ratings"`
	DaysRemaining        int                        `json:"days_remaining"`
	ReportAvailable      bool                       `json:"report_available"`
}
