package models

import "time"

// Rating bounds accepted by the engine. The client UI only ever submits 1-5;
// the wider window is kept for parity with the validation contract.
const (
	RatingMin = 0
	RatingMax = 6
)

// Rating is a user's response to one day's passage. At most one Rating exists
// per (UserHash, JourneyDay) pair: resubmission overwrites Score and RatedAt
// in place instead of creating a new row.
type Rating struct {
	ID       int64  `json:"id"`
	UserHash string `json:"user_hash"`

	// PassageID references the catalog item that was rated. It is set on the
	// first submission for a day and not changed on overwrite.
	PassageID int `json:"passage_id"`

	// Score is the submitted rating value in [RatingMin, RatingMax].
	Score int `json:"rating"`

	JourneyDay int       `json:"journey_day"`
	RatedAt    time.Time `json:"rated_at"`

	// ViewedDeeperContent and EndOfDayReflection are engagement fields
	// attached after the fact, independent of the rating value.
	ViewedDeeperContent bool    `json:"viewed_deeper_content"`
	EndOfDayReflection  *string `json:"end_of_day_reflection"`
}

// TableName returns the name of the database table
// associated with the Rating model.
func (r Rating) TableName() string {
	return "ratings"
}

// EngagementUpdate carries the optional engagement fields. Nil means the
// stored value is left untouched.
type EngagementUpdate struct {
	Reflection   *string `json:"reflection"`
	ViewedDeeper *bool   `json:"viewed_deeper"`
}

// RatingSubmission is the inbound payload of the submit-rating operation.
type RatingSubmission struct {
	UserHash   string `json:"user_hash"`
	PassageID  int    `json:"passage_id"`
	Score      int    `json:"rating"`
	JourneyDay int    `json:"journey_day"`
}

// RatedPassage is a Rating joined with its catalog passage, as returned by
// the progress listing. Recomputed on each call, ordered by JourneyDay.
type RatedPassage struct {
	Rating
	Tradition string `json:"tradition"`
	Text      string `json:"text"`
	Source    string `json:"source"`
}
