package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
	SRS    SRSConfig    `mapstructure:"srs"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StoreConfig selects and configures the key-value persistence backend.
// The memory backend keeps nothing across restarts and exists for
// development and tests.
type StoreConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=postgres sqlite memory"`

	// URL is the Postgres connection string; required for the postgres
	// backend.
	URL string `mapstructure:"url" validate:"required_if=Backend postgres,omitempty,url"`

	// Path is the sqlite database file; required for the sqlite backend.
	Path string `mapstructure:"path" validate:"required_if=Backend sqlite"`
}

// SRSConfig optionally overrides the review schedule. When Intervals is
// empty the built-in fixed table applies. Changing the table length
// also changes the maximum stage, so shrinking it on an existing store
// effectively clamps previously recorded stages.
type SRSConfig struct {
	// Intervals is the per-stage review distance in days.
	Intervals []int `mapstructure:"intervals" validate:"omitempty,min=1,dive,gt=0"`
}
