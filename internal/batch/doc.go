// Package batch drives a run: it produces realizations 1..N on a bounded
// worker pool and hands each one to a sink.
//
// Realization i is generated from entropy.ForOrdinal(base, i), so the output
// of a run depends only on the model, the base seed and N, never on worker
// count or scheduling. The first generation or sink failure cancels the run:
// no new ordinals are submitted and in-flight workers observe a cancelled
// context.
package batch
