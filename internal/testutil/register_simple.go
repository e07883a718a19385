package testutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
)

// ErrInjected is returned by FailingEncoder.
var ErrInjected = errors.New("injected failure")

// SimpleModule is a test helper for creating a module that registers the
// given encoders.
type SimpleModule struct {
	Encoders []registry.Encoder
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, e := range m.Encoders {
		r.RegisterEncoder(e)
	}
}

// FailingEncoder delegates to Encoder except for the realization with
// ordinal FailAt, which fails with ErrInjected after writing a partial
// line.
type FailingEncoder struct {
	registry.Encoder
	FailAt int
}

// Encode implements registry.Encoder.
func (f FailingEncoder) Encode(w io.Writer, r *generator.Realization) error {
	if r.Ordinal == f.FailAt {
		fmt.Fprint(w, "partial")
		return fmt.Errorf("realization %d: %w", r.Ordinal, ErrInjected)
	}
	return f.Encoder.Encode(w, r)
}
