package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/randscenario/internal/batch"
	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/specialistvlad/randscenario/internal/entropy"
	"github.com/specialistvlad/randscenario/internal/loader"
	"github.com/specialistvlad/randscenario/internal/scenario"
	"github.com/specialistvlad/randscenario/internal/sink"
)

// SeedSource tells where the base seed of a run came from.
type SeedSource string

const (
	SeedFromFlag     SeedSource = "flag"
	SeedFromScenario SeedSource = "scenario"
	SeedFromRandom   SeedSource = "random"
)

// Result describes a completed run.
type Result struct {
	RunID      string
	Scenario   string
	OutputDir  string
	BaseSeed   uint64
	SeedSource SeedSource
	Summary    batch.Summary
}

// Run loads and validates the scenario, then writes the configured number
// of realizations. Scenario problems are reported before anything is
// written. On a failed batch the files already committed stay on disk and
// are listed in the seed manifest.
func (a *App) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, logger := ctxlog.With(ctx, "run_id", runID)
	logger.Debug("App.Run method started.", "scenario_path", a.config.ScenarioPath)

	enc, err := a.registry.Encoder(a.config.Format)
	if err != nil {
		return nil, err
	}

	doc, err := loader.Load(ctx, a.config.ScenarioPath)
	if err != nil {
		return nil, err
	}
	model, err := scenario.Build(doc)
	if err != nil {
		return nil, err
	}
	logger.Info("Scenario validated.", "scenario", model.Name(), "variables", model.Len(), "samples_per_realization", model.SamplesPerRealization())

	baseSeed, source := a.resolveSeed(model)
	logger.Info("Base seed resolved.", "base_seed", baseSeed, "source", source)

	prefix := a.config.Prefix
	if prefix == "" {
		prefix = scenarioStem(a.config.ScenarioPath)
	}
	// An empty batch never touches the destination, so an existing
	// directory is only refused when something would be written into it.
	var dir *sink.Dir
	var out sink.Sink
	if a.config.Count > 0 {
		dir, err = sink.NewDir(sink.DirOptions{
			Path:    a.config.OutputDir,
			Prefix:  prefix,
			Encoder: enc,
			RunID:   runID,
		})
		if err != nil {
			return nil, err
		}
		if err := dir.Prepare(ctx); err != nil {
			return nil, err
		}
		out = dir
	}

	a.metrics.RunStarted(runID, model.Name(), enc.Name(), baseSeed)
	orch := batch.New(model, out, batch.Options{
		Workers:  a.config.Workers,
		BaseSeed: baseSeed,
		Observer: a.metrics,
	})
	summary, runErr := orch.Run(ctx, a.config.Count)

	if dir != nil {
		if err := dir.Close(); err != nil {
			if runErr == nil {
				runErr = err
			} else {
				logger.Error("Failed to write seed manifest after aborted batch.", "error", err)
			}
		}
	}
	if a.config.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(a.config.MetricsFile); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("failed to write metrics file: %w", err))
		}
		logger.Debug("Metrics written.", "path", a.config.MetricsFile)
	}

	result := &Result{
		RunID:      runID,
		Scenario:   model.Name(),
		OutputDir:  a.config.OutputDir,
		BaseSeed:   baseSeed,
		SeedSource: source,
		Summary:    summary,
	}
	if runErr != nil {
		return result, runErr
	}

	fmt.Fprintf(a.outW, "Generated %d files in %s (base seed %d).\n", summary.Committed, a.config.OutputDir, baseSeed)
	logger.Debug("App.Run method finished.")
	return result, nil
}

// resolveSeed picks the base seed: the configured one, then the scenario's,
// then a fresh random one.
func (a *App) resolveSeed(m *scenario.Model) (uint64, SeedSource) {
	if a.config.Seed != nil {
		return *a.config.Seed, SeedFromFlag
	}
	if seed, ok := m.Seed(); ok {
		return seed, SeedFromScenario
	}
	return entropy.RandomBase(), SeedFromRandom
}

func scenarioStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
