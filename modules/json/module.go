// Package json writes realizations as indented JSON documents.
package json

import (
	stdjson "encoding/json"
	"io"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// Name is the format name this module registers.
const Name = "json"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Encoder implements registry.Encoder.
type Encoder struct{}

func (Encoder) Name() string      { return Name }
func (Encoder) Extension() string { return "json" }

// Encode writes the realization as a single JSON object followed by a
// newline.
func (Encoder) Encode(w io.Writer, r *generator.Realization) error {
	enc := stdjson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(registry.NewView(r))
}

// Register registers the encoder with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEncoder(Encoder{})
}
