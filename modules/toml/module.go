// Package toml writes realizations as TOML documents. Seeds are written as
// strings because TOML integers are signed 64-bit.
package toml

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// Name is the format name this module registers.
const Name = "toml"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Encoder implements registry.Encoder.
type Encoder struct{}

func (Encoder) Name() string      { return Name }
func (Encoder) Extension() string { return "toml" }

func (Encoder) Encode(w io.Writer, r *generator.Realization) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(registry.NewView(r))
}

// Register registers the encoder with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEncoder(Encoder{})
}
