package testutil

import (
	"io"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// NoOpModule registers a "noop" encoder that writes empty files. It is
// useful for tests that care about file layout but not content.
type NoOpModule struct{}

// Register implements the registry.Module interface.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterEncoder(noopEncoder{})
}

type noopEncoder struct{}

func (noopEncoder) Name() string                                   { return "noop" }
func (noopEncoder) Extension() string                              { return "txt" }
func (noopEncoder) Encode(io.Writer, *generator.Realization) error { return nil }
