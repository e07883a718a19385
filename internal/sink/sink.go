// Package sink receives finished realizations and persists them.
package sink

import (
	"context"
	"fmt"

	"github.com/specialistvlad/randscenario/internal/generator"
)

// Sink accepts realizations. Write may be called concurrently with distinct
// realizations; each call either commits r completely or returns an error
// and commits nothing.
type Sink interface {
	Write(ctx context.Context, r *generator.Realization) error
}

// Error reports an output destination failure.
type Error struct {
	// Op is the failed operation: "check", "mkdir", "write" or "manifest".
	Op   string
	Path string
	// Ordinal is the realization being written, or 0.
	Ordinal int
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Ordinal > 0 {
		return fmt.Sprintf("sink %s %s (realization %d): %v", e.Op, e.Path, e.Ordinal, e.Err)
	}
	return fmt.Sprintf("sink %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
