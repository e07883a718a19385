// Package metrics collects per-run counters and timings and can export them
// in the Prometheus text format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/specialistvlad/randscenario/internal/batch"
)

const namespace = "randscenario"

// Metrics is a batch.Observer backed by a private Prometheus registry, so
// several runs in one process never share series.
type Metrics struct {
	registry *prometheus.Registry

	realizations    *prometheus.CounterVec
	samples         prometheus.Counter
	generateSeconds prometheus.Histogram
	writeSeconds    prometheus.Histogram
	pendingWrites   prometheus.Gauge
	runInfo         *prometheus.GaugeVec
	baseSeed        prometheus.Gauge
}

var _ batch.Observer = (*Metrics)(nil)

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		realizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "realizations_total",
				Help:      "Realizations processed, by outcome",
			},
			[]string{"outcome"},
		),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Values drawn across all realizations",
		}),
		generateSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_seconds",
			Help:      "Time spent sampling one realization",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		writeSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "write_seconds",
			Help:      "Time spent persisting one realization",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}),
		pendingWrites: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_writes",
			Help:      "Realizations generated but not yet written",
		}),
		runInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "run_info",
				Help:      "Constant 1, labelled with the run identity",
			},
			[]string{"run_id", "scenario", "format"},
		),
		baseSeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "base_seed_low_bits",
			Help:      "Lower 52 bits of the base seed; the full value is in seed.txt",
		}),
	}

	m.registry.MustRegister(
		m.realizations,
		m.samples,
		m.generateSeconds,
		m.writeSeconds,
		m.pendingWrites,
		m.runInfo,
		m.baseSeed,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RunStarted records the identity of the run.
func (m *Metrics) RunStarted(runID, scenario, format string, baseSeed uint64) {
	m.runInfo.WithLabelValues(runID, scenario, format).Set(1)
	m.baseSeed.Set(float64(baseSeed & (1<<52 - 1)))
}

// Generated implements batch.Observer.
func (m *Metrics) Generated(_ int, samples int, elapsed time.Duration) {
	m.samples.Add(float64(samples))
	m.generateSeconds.Observe(elapsed.Seconds())
	m.pendingWrites.Inc()
}

// Written implements batch.Observer.
func (m *Metrics) Written(_ int, elapsed time.Duration) {
	m.writeSeconds.Observe(elapsed.Seconds())
	m.pendingWrites.Dec()
	m.realizations.WithLabelValues("committed").Inc()
}

// Failed implements batch.Observer.
func (m *Metrics) Failed(_ int, stage batch.Stage, _ error) {
	if stage == batch.StageWrite {
		m.pendingWrites.Dec()
	}
	m.realizations.WithLabelValues("failed_" + string(stage)).Inc()
}

// WriteTextfile writes every collected series to path in the text
// exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
