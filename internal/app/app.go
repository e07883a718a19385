package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/specialistvlad/randscenario/internal/metrics"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	metrics  *metrics.Metrics
	config   *Config
}

// NewApp is the constructor for the main application. User-facing output
// goes to outW and logs to logW. Without explicit modules the core encoders
// are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All encoder modules registered.", "count", len(modules), "encoders", reg.Names())

	if err := reg.Validate(ctx); err != nil {
		// A broken encoder is a programmer error, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		metrics:  metrics.New(),
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Metrics returns the collectors fed by Run.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
