// Package csv writes realizations as CSV, one row per variable: the name
// followed by its sampled values.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"io"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// Name is the format name this module registers.
const Name = "csv"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Encoder implements registry.Encoder.
type Encoder struct{}

// Name implements registry.Encoder.
func (Encoder) Name() string { return Name }

// Extension implements registry.Encoder.
func (Encoder) Extension() string { return "csv" }

// Encode implements registry.Encoder.
func (Encoder) Encode(w io.Writer, r *generator.Realization) error {
	cw := stdcsv.NewWriter(w)
	for _, s := range r.Series {
		row := make([]string, 0, len(s.Values)+1)
		row = append(row, s.Name)
		for _, v := range s.Values {
			row = append(row, v.String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: writing variable %q: %w", s.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Register registers the encoder with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEncoder(Encoder{})
}
