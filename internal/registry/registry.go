package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/specialistvlad/randscenario/internal/generator"
)

// ErrUnknownEncoder is returned by Encoder for a name nothing registered.
var ErrUnknownEncoder = errors.New("unknown output format")

// Module is the interface that all output modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Encoder serializes one realization.
type Encoder interface {
	// Name is the format name users select, e.g. "csv".
	Name() string
	// Extension is the file extension without the leading dot.
	Extension() string
	// Encode writes r to w. It must not retain r.
	Encode(w io.Writer, r *generator.Realization) error
}

// Registry holds the encoders of a single application instance.
type Registry struct {
	encoders map[string]Encoder
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{encoders: make(map[string]Encoder)}
}

// RegisterEncoder adds e under its name. Registering a name twice is a
// programming error and panics.
func (r *Registry) RegisterEncoder(e Encoder) {
	name := e.Name()
	if _, exists := r.encoders[name]; exists {
		panic(fmt.Sprintf("encoder with name '%s' already registered", name))
	}
	slog.Debug("Registering encoder.", "name", name, "extension", e.Extension())
	r.encoders[name] = e
}

// Encoder returns the encoder registered under name. Lookup ignores case.
func (r *Registry) Encoder(name string) (Encoder, error) {
	e, ok := r.encoders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownEncoder, name, strings.Join(r.Names(), ", "))
	}
	return e, nil
}

// Names returns the registered format names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered encoders.
func (r *Registry) Len() int {
	return len(r.encoders)
}
