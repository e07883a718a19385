package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/randscenario/internal/ctxlog"
	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/scenario"
	"github.com/specialistvlad/randscenario/internal/sink"
	"golang.org/x/sync/errgroup"
)

// Options configures an Orchestrator.
type Options struct {
	// Workers bounds concurrent realizations. Values below 1 mean 1.
	Workers int
	// BaseSeed is split into one stream per ordinal.
	BaseSeed uint64
	// Observer may be nil.
	Observer Observer
}

// Summary describes a finished run.
type Summary struct {
	Requested int
	Committed int
	BaseSeed  uint64
	// Samples is the number of values written across all realizations.
	Samples  int
	Duration time.Duration
}

// Orchestrator runs batches of one model into one sink.
type Orchestrator struct {
	model    *scenario.Model
	sink     sink.Sink
	workers  int
	baseSeed uint64
	observer Observer
}

// New creates an Orchestrator. The model is shared read-only by all workers.
func New(m *scenario.Model, s sink.Sink, opts Options) *Orchestrator {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	observer := opts.Observer
	if observer == nil {
		observer = Observers()
	}
	return &Orchestrator{
		model:    m,
		sink:     s,
		workers:  workers,
		baseSeed: opts.BaseSeed,
		observer: observer,
	}
}

// Run produces realizations 1..n. It returns once every submitted
// realization finished. On failure the returned error is a *Error carrying
// the failed ordinal and the final committed count.
func (o *Orchestrator) Run(ctx context.Context, n int) (Summary, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()
	summary := Summary{Requested: n, BaseSeed: o.baseSeed}

	if n < 0 {
		return summary, ErrNegativeCount
	}
	if n == 0 {
		logger.Info("No realizations requested, nothing to do.")
		return summary, nil
	}

	workers := min(o.workers, n)
	logger.Info("Batch started.", "realizations", n, "workers", workers, "base_seed", o.baseSeed)

	var committed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 1; i <= n; i++ {
		if gctx.Err() != nil {
			logger.Debug("Submission halted.", "next_ordinal", i)
			break
		}
		ordinal := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := o.runOne(gctx, ordinal); err != nil {
				return err
			}
			committed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	summary.Committed = int(committed.Load())
	summary.Samples = summary.Committed * o.model.SamplesPerRealization()
	summary.Duration = time.Since(start)

	if err == nil && ctx.Err() != nil && summary.Committed < n {
		err = &Error{Stage: StageCancel, Err: ctx.Err()}
	}
	if err != nil {
		var be *Error
		if errors.As(err, &be) {
			be.Committed = summary.Committed
		}
		logger.Error("Batch aborted.", "error", err, "committed", summary.Committed, "requested", n)
		return summary, err
	}

	logger.Info("Batch finished.", "committed", summary.Committed, "samples", summary.Samples, "duration", summary.Duration)
	return summary, nil
}

func (o *Orchestrator) runOne(ctx context.Context, ordinal int) error {
	logger := ctxlog.FromContext(ctx)

	t0 := time.Now()
	r, err := generator.GenerateOrdinal(o.model, o.baseSeed, ordinal)
	if err != nil {
		o.observer.Failed(ordinal, StageGenerate, err)
		return &Error{Ordinal: ordinal, Stage: StageGenerate, Err: err}
	}
	o.observer.Generated(ordinal, r.SampleCount(), time.Since(t0))

	t1 := time.Now()
	if err := o.sink.Write(ctx, r); err != nil {
		o.observer.Failed(ordinal, StageWrite, err)
		return &Error{Ordinal: ordinal, Stage: StageWrite, Err: err}
	}
	o.observer.Written(ordinal, time.Since(t1))

	logger.Debug("Realization committed.", "ordinal", ordinal, "seed", r.Seed.String())
	return nil
}
