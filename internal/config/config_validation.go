// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ivan Velichkin

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "postgres", "sqlite":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.JourneyLengthDays < 1 || cfg.App.ProgressWindowDays < 1 {
		return ErrInvalidAppConfigs
	}

	// the client gate may never undercut the engine floor
	if cfg.App.ReportMinRatings < 1 || cfg.App.ReportRecommendedRatings < cfg.App.ReportMinRatings {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
