// Package config loads server settings from environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvAddr         = "PLACEHOLDER_ADDR"
	EnvLogLevel     = "PLACEHOLDER_LOG_LEVEL"
	EnvMaxDimension = "PLACEHOLDER_MAX_DIMENSION"
)

// DefaultAddr is the listen address used when PLACEHOLDER_ADDR is unset.
const DefaultAddr = "127.0.0.1:3000"

// Config holds server settings.
type Config struct {
	// Addr is the host:port the HTTP server listens on.
	Addr string

	// LogLevel is the minimum level written to the log.
	LogLevel slog.Level

	// MaxDimension caps image width and height. 0 means unlimited.
	MaxDimension int
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the
// signature of os.LookupEnv. Unset or empty variables take their defaults.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		Addr:     DefaultAddr,
		LogLevel: slog.LevelInfo,
	}

	if v, ok := lookup(EnvAddr); ok && v != "" {
		cfg.Addr = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}

	if v, ok := lookup(EnvMaxDimension); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMaxDimension, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", EnvMaxDimension)
		}
		cfg.MaxDimension = n
	}

	return cfg, nil
}
