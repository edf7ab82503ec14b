package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "worddrill.db", cfg.Store.Path)
	assert.Empty(t, cfg.SRS.Intervals)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WORDDRILL_SERVER_PORT", "9090")
	t.Setenv("WORDDRILL_SERVER_LOG_LEVEL", "debug")
	t.Setenv("WORDDRILL_STORE_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "memory", cfg.Store.Backend)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("WORDDRILL_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestSRSIntervalValidation(t *testing.T) {
	validate := validator.New()

	valid := Config{
		Server: ServerConfig{Port: 8080, LogLevel: "info"},
		Store:  StoreConfig{Backend: "memory"},
		SRS:    SRSConfig{Intervals: []int{1, 3, 7}},
	}
	assert.NoError(t, validate.Struct(&valid))

	valid.SRS.Intervals = []int{1, 3, 0}
	assert.Error(t, validate.Struct(&valid))
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("WORDDRILL_STORE_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}
