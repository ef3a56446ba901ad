package store

// Column sets shared by the repositories. The order here must match the scan
// order in the repository methods.
var (
	userColumns = []string{
		"id",
		"user_hash",
		"journey_day",
		"journey_start_date",
		"selected_traditions",
		"subscription_status",
		"notifications_enabled",
		"dark_mode_enabled",
		"haptics_enabled",
		"audio_enabled",
		"grace_days_used",
		"intention",
		"commitment",
		"learning_preference",
	}

	ratingColumns = []string{
		"id",
		"user_hash",
		"passage_id",
		"rating",
		"journey_day",
		"rated_at",
		"viewed_deeper_content",
		"end_of_day_reflection",
	}

	reportColumns = []string{
		"id",
		"user_id",
		"top_tradition",
		"tradition_percentages",
		"insights",
		"generated_at",
	}
)

// sqliteSchema mirrors the postgres goose migration for the embedded dev
// backend. JSON-valued columns are stored as TEXT on both engines.
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_hash TEXT NOT NULL UNIQUE,
		journey_day INTEGER NOT NULL DEFAULT 0,
		journey_start_date TIMESTAMP NOT NULL,
		selected_traditions TEXT NOT NULL,
		subscription_status TEXT NOT NULL DEFAULT 'trial',
		notifications_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		dark_mode_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		haptics_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		audio_enabled BOOLEAN NOT NULL DEFAULT TRUE,
		grace_days_used INTEGER NOT NULL DEFAULT 0,
		intention TEXT NOT NULL DEFAULT '',
		commitment TEXT NOT NULL DEFAULT '',
		learning_preference TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_hash TEXT NOT NULL REFERENCES users (user_hash),
		passage_id INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		journey_day INTEGER NOT NULL,
		rated_at TIMESTAMP NOT NULL,
		viewed_deeper_content BOOLEAN NOT NULL DEFAULT FALSE,
		end_of_day_reflection TEXT
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_ratings_user_day
		ON ratings (user_hash, journey_day);

	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id),
		top_tradition TEXT NOT NULL,
		tradition_percentages TEXT NOT NULL,
		insights TEXT NOT NULL,
		generated_at TIMESTAMP NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_reports_user
		ON reports (user_id);
`
