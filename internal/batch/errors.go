package batch

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned by Run for a negative realization count.
var ErrNegativeCount = errors.New("realization count must not be negative")

// Stage names the step a realization failed in.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageWrite    Stage = "write"
	// StageCancel marks a run stopped by its parent context rather than by a
	// failing realization.
	StageCancel Stage = "cancel"
)

// Error reports an aborted run.
type Error struct {
	// Ordinal is the realization that failed, or 0 for StageCancel.
	Ordinal int
	// Committed is how many realizations the sink accepted before the run
	// stopped.
	Committed int
	Stage     Stage
	Err       error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Stage == StageCancel {
		return fmt.Sprintf("batch cancelled with %d realizations committed: %v", e.Committed, e.Err)
	}
	return fmt.Sprintf("batch aborted at realization %d (%s) with %d committed: %v", e.Ordinal, e.Stage, e.Committed, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
