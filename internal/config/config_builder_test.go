package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsFillMissingFields(t *testing.T) {
	// Arrange: a single high-priority layer with only a DSN set
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/innerpath"}},
	})

	// Act
	cfg, err := b.withDefaults().build()

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/innerpath", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultJourneyLengthDays, cfg.App.JourneyLengthDays)
	assert.Equal(t, DefaultReportMinRatings, cfg.App.ReportMinRatings)
	assert.Equal(t, DefaultReportRecommendedRatings, cfg.App.ReportRecommendedRatings)
	assert.Equal(t, DefaultProgressWindowDays, cfg.App.ProgressWindowDays)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

func TestConfigBuilder_EarlierLayersWin(t *testing.T) {
	// Arrange: env beats JSON beats defaults, modelled as append order
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "from-env"},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/innerpath"}},
		},
		&StructuredConfig{
			App:    App{Version: "from-json", JourneyLengthDays: 14},
			Server: Server{HTTPAddress: "localhost:9090"},
		},
	)

	// Act
	cfg, err := b.withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, 14, cfg.App.JourneyLengthDays)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_WithJSON_ReadsPathFromEarlierLayer(t *testing.T) {
	// Arrange
	path := writeTempJSON(t, `{
		"app": {"version": "9.9.9"},
		"storage": {"db": {"dsn": "file:innerpath.db", "driver": "sqlite"}},
		"server": {"request_timeout": "10s"}
	}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	// Act
	cfg, err := b.withJSON().withDefaults().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:innerpath.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
}

func TestConfigBuilder_WithJSON_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/innerpath"}},
	})

	cfg, err := b.withJSON().withDefaults().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
}

func TestConfigBuilder_WithJSON_BadPathFailsBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	cfg, err := b.withJSON().withDefaults().build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

func TestConfigBuilder_BuildValidatesResult(t *testing.T) {
	// defaults alone carry no DSN, so the merged config must be rejected
	_, err := newConfigBuilder().withDefaults().build()

	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
