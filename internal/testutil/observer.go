package testutil

import (
	"sync"
	"time"

	"github.com/specialistvlad/randscenario/internal/batch"
)

// ObservedFailure is one Failed notification.
type ObservedFailure struct {
	Ordinal int
	Stage   batch.Stage
	Err     error
}

// RecordingObserver is a batch.Observer that remembers every notification.
type RecordingObserver struct {
	mu        sync.Mutex
	generated []int
	written   []int
	samples   int
	failures  []ObservedFailure
}

var _ batch.Observer = (*RecordingObserver)(nil)

// Generated implements batch.Observer.
func (o *RecordingObserver) Generated(ordinal, samples int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.generated = append(o.generated, ordinal)
	o.samples += samples
}

// Written implements batch.Observer.
func (o *RecordingObserver) Written(ordinal int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.written = append(o.written, ordinal)
}

// Failed implements batch.Observer.
func (o *RecordingObserver) Failed(ordinal int, stage batch.Stage, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, ObservedFailure{Ordinal: ordinal, Stage: stage, Err: err})
}

// Counts returns how many Generated and Written notifications arrived and
// the total sample count.
func (o *RecordingObserver) Counts() (generated, written, samples int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.generated), len(o.written), o.samples
}

// Failures returns a copy of the Failed notifications.
func (o *RecordingObserver) Failures() []ObservedFailure {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]ObservedFailure, len(o.failures))
	copy(out, o.failures)
	return out
}
