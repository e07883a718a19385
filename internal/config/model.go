package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Document is the unified, format-agnostic representation of a scenario file.
type Document struct {
	// Path is the file the document was read from.
	Path string
	// Format names the loader that produced the document ("hcl", "toml", ...).
	Format string

	Name string
	// Seed is the base seed declared by the scenario, if any.
	Seed *uint64

	// Variables keeps declaration order.
	Variables []*Variable
}

// Variable is the format-agnostic representation of one declared variable.
type Variable struct {
	Name         string
	Distribution string

	// Samples is null when the file omits it.
	Samples cty.Value

	Params map[string]cty.Value

	// Location points at the declaration, e.g. "demo.hcl:4,1-15". It may be
	// empty for formats that do not track positions.
	Location string
}

// VariableNames returns the declared names in order.
func (d *Document) VariableNames() []string {
	names := make([]string, 0, len(d.Variables))
	for _, v := range d.Variables {
		names = append(names, v.Name)
	}
	return names
}
