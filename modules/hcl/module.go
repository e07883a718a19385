// Package hcl writes realizations as HCL documents that mirror the scenario
// syntax:
//
//	scenario = "demo"
//	ordinal  = 1
//	seed {
//	  base   = 42
//	  stream = 1
//	}
//	variable "v" {
//	  distribution = "uniform"
//	  values       = [0.25, 0.5]
//	}
package hcl

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/randscenario/internal/distribution"
	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the format name this module registers.
const Name = "hcl"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Encoder implements registry.Encoder.
type Encoder struct{}

func (Encoder) Name() string      { return Name }
func (Encoder) Extension() string { return "hcl" }

func (Encoder) Encode(w io.Writer, r *generator.Realization) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("scenario", cty.StringVal(r.Scenario))
	root.SetAttributeValue("ordinal", cty.NumberIntVal(int64(r.Ordinal)))

	seed := root.AppendNewBlock("seed", nil).Body()
	seed.SetAttributeValue("base", cty.NumberUIntVal(r.Seed.Base))
	seed.SetAttributeValue("stream", cty.NumberUIntVal(r.Seed.Stream))

	for _, s := range r.Series {
		root.AppendNewline()
		block := root.AppendNewBlock("variable", []string{s.Name}).Body()
		block.SetAttributeValue("distribution", cty.StringVal(s.Kind.String()))
		block.SetAttributeValue("values", valuesToCty(s.Values))
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("hcl: %w", err)
	}
	return nil
}

// valuesToCty builds a tuple so numeric and token samples can share one
// attribute. Non-finite numbers are written as strings, which HCL can parse.
func valuesToCty(values []distribution.Value) cty.Value {
	if len(values) == 0 {
		return cty.EmptyTupleVal
	}
	elems := make([]cty.Value, len(values))
	for i, v := range values {
		switch x := v.Interface().(type) {
		case float64:
			elems[i] = cty.NumberFloatVal(x)
		case string:
			elems[i] = cty.StringVal(x)
		}
	}
	return cty.TupleVal(elems)
}

// Register registers the encoder with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterEncoder(Encoder{})
}
