package generator

import (
	"github.com/specialistvlad/randscenario/internal/distribution"
	"github.com/specialistvlad/randscenario/internal/entropy"
)

// Series is the sampled sequence of one variable.
type Series struct {
	Name   string
	Kind   distribution.Kind
	Values []distribution.Value
}

// Realization is one complete sample of a scenario. Series follow the
// scenario's declaration order.
type Realization struct {
	// Ordinal is the 1-based position in the batch, or 0 outside a batch.
	Ordinal int
	Seed    entropy.Seed

	// Scenario is the scenario's declared name.
	Scenario string
	Series   []Series
}

// Values returns the sequence sampled for the named variable.
func (r *Realization) Values(name string) ([]distribution.Value, bool) {
	for _, s := range r.Series {
		if s.Name == name {
			return s.Values, true
		}
	}
	return nil, false
}

// Names returns the variable names in declaration order.
func (r *Realization) Names() []string {
	names := make([]string, len(r.Series))
	for i, s := range r.Series {
		names[i] = s.Name
	}
	return names
}

// SampleCount is the total number of values across all series.
func (r *Realization) SampleCount() int {
	n := 0
	for _, s := range r.Series {
		n += len(s.Values)
	}
	return n
}
