// Package generator turns a scenario model into realizations.
package generator

import (
	"fmt"
	"math/rand/v2"

	"github.com/specialistvlad/randscenario/internal/distribution"
	"github.com/specialistvlad/randscenario/internal/entropy"
	"github.com/specialistvlad/randscenario/internal/scenario"
)

// Error reports a sampling failure. It cannot happen for a model produced by
// scenario.Build and signals a broken invariant or a missing source.
type Error struct {
	Variable string
	// Index is the 0-based position of the failed draw in the variable's
	// sequence.
	Index int
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("generation failed for variable %q at sample %d: %v", e.Variable, e.Index, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Generate samples every variable of m, in declaration order, drawing
// SampleCount values each from src. The result depends only on the sequence
// of values src produces.
func Generate(m *scenario.Model, src rand.Source) (*Realization, error) {
	r := &Realization{
		Scenario: m.Name(),
		Series:   make([]Series, m.Len()),
	}

	for i := 0; i < m.Len(); i++ {
		spec := m.Variable(i)
		values := make([]distribution.Value, spec.SampleCount)
		for j := range values {
			v, err := distribution.Sample(spec.Distribution, src)
			if err != nil {
				return nil, &Error{Variable: spec.Name, Index: j, Err: err}
			}
			values[j] = v
		}
		r.Series[i] = Series{Name: spec.Name, Kind: spec.Distribution.Kind(), Values: values}
	}

	return r, nil
}

// GenerateOrdinal produces the realization with the given 1-based ordinal of
// a batch started from base.
func GenerateOrdinal(m *scenario.Model, base uint64, ordinal int) (*Realization, error) {
	seed := entropy.ForOrdinal(base, ordinal)
	r, err := Generate(m, seed.Source())
	if err != nil {
		return nil, err
	}
	r.Ordinal = ordinal
	r.Seed = seed
	return r, nil
}
