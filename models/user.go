package models

import "time"

// Subscription states a user record may carry. The engine stores the plan
// verbatim and performs no billing.
const (
	SubscriptionTrial   = "trial"
	SubscriptionActive  = "active"
	SubscriptionExpired = "expired"
)

// User represents a journey participant. The record is created once during
// onboarding, read on every request, and patched through an explicit
// allow-list of fields. Users are never deleted.
type User struct {
	// ID is the internal sequential identifier of the user.
	// It is used to key reports and is not part of the client credential.
	ID int64 `json:"id"`

	// UserHash is the opaque unique identifier handed to the client at
	// creation. It is the only credential the client holds and is immutable.
	UserHash string `json:"user_hash"`

	// JourneyDay is the highest zero-based day index the user has reached.
	// Rating submission advances it monotonically; the patch operation may
	// set it to an arbitrary value for out-of-band tooling.
	JourneyDay int `json:"journey_day"`

	// JourneyStartDate is set once at creation and never changes.
	JourneyStartDate time.Time `json:"journey_start_date"`

	// SelectedTraditions is the ordered set of traditions chosen at
	// onboarding. Empty input falls back to the full catalog set.
	SelectedTraditions []string `json:"selected_traditions"`

	// SubscriptionStatus records the selected plan ("trial" at creation).
	// The engine stores it verbatim and performs no billing.
	SubscriptionStatus string `json:"subscription_status"`

	NotificationsEnabled bool `json:"notifications_enabled"`
	DarkModeEnabled      bool `json:"dark_mode_enabled"`
	HapticsEnabled       bool `json:"haptics_enabled"`
	AudioEnabled         bool `json:"audio_enabled"`

	// GraceDaysUsed counts missed days forgiven by the client. It is mutated
	// only through the patch operation and used for display.
	GraceDaysUsed int `json:"grace_days_used"`

	// Free-text onboarding answers. Stored verbatim.
	Intention          string `json:"intention,omitempty"`
	Commitment         string `json:"commitment,omitempty"`
	LearningPreference string `json:"learning_preference,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserOnboarding carries the caller-supplied fields of the creation
// operation. Everything else on User is defaulted by the service.
type UserOnboarding struct {
	SelectedTraditions []string `json:"selected_traditions"`
	SubscriptionStatus string   `json:"subscription_status"`
	Intention          string   `json:"intention"`
	Commitment         string   `json:"commitment"`
	LearningPreference string   `json:"learning_preference"`
}

// UserUpdate is the allow-list of patchable user fields. Nil pointers mean
// "leave untouched"; the patch operation never touches anything outside this
// set, so unexpected payload fields are silently dropped at the boundary.
type UserUpdate struct {
	JourneyDay           *int    `json:"journey_day"`
	SubscriptionStatus   *string `json:"subscription_status"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	DarkModeEnabled      *bool   `json:"dark_mode_enabled"`
	HapticsEnabled       *bool   `json:"haptics_enabled"`
	AudioEnabled         *bool   `json:"audio_enabled"`
	GraceDaysUsed        *int    `json:"grace_days_used"`
	Intention            *string `json:"intention"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.JourneyDay == nil &&
		u.SubscriptionStatus == nil &&
		u.NotificationsEnabled == nil &&
		u.DarkModeEnabled == nil &&
		u.HapticsEnabled == nil &&
		u.AudioEnabled == nil &&
		u.GraceDaysUsed == nil &&
		u.Intention == nil
}
