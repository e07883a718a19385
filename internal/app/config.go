package app

import (
	"errors"
	"fmt"
)

// DefaultFormat is the encoder used when none is configured.
const DefaultFormat = "csv"

// DefaultWorkers bounds concurrent realizations when none is configured.
const DefaultWorkers = 4

// ErrInvalidConfig marks configuration rejected by NewConfig.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenarioPath string
	OutputDir    string
	// Count is the number of realizations (and files) to produce.
	Count int
	// Seed overrides the scenario's base seed when set.
	Seed    *uint64
	Workers int
	Format  string
	// Prefix starts every output file name. Empty means the scenario file
	// name without its extension.
	Prefix      string
	MetricsFile string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, fills in defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, fmt.Errorf("%w: ScenarioPath is a required configuration field and cannot be empty", ErrInvalidConfig)
	}
	if cfg.OutputDir == "" {
		return nil, fmt.Errorf("%w: OutputDir is a required configuration field and cannot be empty", ErrInvalidConfig)
	}
	if cfg.Count < 0 {
		return nil, fmt.Errorf("%w: file count must not be negative, got %d", ErrInvalidConfig, cfg.Count)
	}

	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("%w: worker count must be positive, got %d", ErrInvalidConfig, cfg.Workers)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}

	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, cfg.LogFormat)
	}

	return &cfg, nil
}
