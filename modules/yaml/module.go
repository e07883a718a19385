// Package yaml writes realizations as YAML documents.
package yaml

import (
	"io"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
	"gopkg.in/yaml.v3"
)

// Name is the format name this module registers.
const Name = "yaml"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Encoder implements registry.Encoder.
type Encoder struct{}

func (Encoder) Name() string      { return Name }
func (Encoder) Extension() string { return "yaml" }

func (Encoder) Encode(w io.Writer, r *generator.Realization) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(registry.NewView(r)); err != nil {
		return err
	}
	return enc.Close()
}

// Register registers the encoder with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEncoder(Encoder{})
}
