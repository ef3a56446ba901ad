package models

// Passage is one curated content item from the static catalog.
type Passage struct {
	ID        int    `json:"id"`
	Tradition string `json:"tradition"`
	Text      string `json:"text"`
	Source    string `json:"source"`
}

// Practice is the companion daily action paired with a passage.
type Practice struct {
	ID          int    `json:"id"`
	Tradition   string `json:"tradition"`
	Tenet       string `json:"tenet"`
	DailyAction string `json:"daily_action"`
}

// DailyContent is the selection result for one journey day. ExistingRating is
// non-nil when the user has already rated that day.
type DailyContent struct {
	Passage        Passage  `json:"passage"`
	Practice       Practice `json:"practice"`
	ExistingRating *Rating  `json:"existing_rating,omitempty"`
}
