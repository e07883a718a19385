package registry

import (
	"strconv"

	"github.com/specialistvlad/randscenario/internal/generator"
)

// View is the format-neutral shape structured encoders serialize.
type View struct {
	Scenario  string         `json:"scenario" yaml:"scenario" toml:"scenario"`
	Ordinal   int            `json:"ordinal" yaml:"ordinal" toml:"ordinal"`
	Seed      SeedView       `json:"seed" yaml:"seed" toml:"seed"`
	Variables []VariableView `json:"variables" yaml:"variables" toml:"variables"`
}

// SeedView carries the seed as decimal strings, which survive formats whose
// integers are signed 64-bit.
type SeedView struct {
	Base   string `json:"base" yaml:"base" toml:"base"`
	Stream string `json:"stream" yaml:"stream" toml:"stream"`
}

// VariableView is one series. Values holds float64 or string elements.
type VariableView struct {
	Name         string `json:"name" yaml:"name" toml:"name"`
	Distribution string `json:"distribution" yaml:"distribution" toml:"distribution"`
	Values       []any  `json:"values" yaml:"values" toml:"values"`
}

// NewView flattens r for encoding.
func NewView(r *generator.Realization) View {
	v := View{
		Scenario: r.Scenario,
		Ordinal:  r.Ordinal,
		Seed: SeedView{
			Base:   strconv.FormatUint(r.Seed.Base, 10),
			Stream: strconv.FormatUint(r.Seed.Stream, 10),
		},
		Variables: make([]VariableView, len(r.Series)),
	}
	for i, s := range r.Series {
		values := make([]any, len(s.Values))
		for j, x := range s.Values {
			values[j] = x.Interface()
		}
		v.Variables[i] = VariableView{Name: s.Name, Distribution: s.Kind.String(), Values: values}
	}
	return v
}
