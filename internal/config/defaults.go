package config

import "time"

// Built-in defaults. The journey shape mirrors the product contract: a
// 30-day program, a 7-day progress window, an engine report floor of 5
// ratings and a client-facing gate of 20. The floor and the gate are
// separate knobs on purpose and must not be collapsed into one value.
const (
	DefaultJourneyLengthDays        = 30
	DefaultReportMinRatings         = 5
	DefaultReportRecommendedRatings = 20
	DefaultProgressWindowDays       = 7

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBDriver       = "postgres"
	DefaultVersion        = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			JourneyLengthDays:        DefaultJourneyLengthDays,
			ReportMinRatings:         DefaultReportMinRatings,
			ReportRecommendedRatings: DefaultReportRecommendedRatings,
			ProgressWindowDays:       DefaultProgressWindowDays,
			Version:                  DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
