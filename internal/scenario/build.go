// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/distribution"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// DefaultSampleCount applies when a variable omits `samples`.
const DefaultSampleCount = 1

// Build validates a raw document and returns the Model it describes. Rules
// are applied per variable in declaration order: name, distribution tag,
// parameters, sample count. The first violation is returned and no Model is
// produced.
func Build(doc *config.Document) (*Model, error) {
	if doc == nil || len(doc.Variables) == 0 {
		return nil, &Error{Kind: ErrEmptyScenario}
	}

	b := newBuilder(len(doc.Variables))
	for i, raw := range doc.Variables {
		if err := b.addRaw(i+1, raw); err != nil {
			return nil, err
		}
	}

	m := b.model(doc.Name)
	if doc.Seed != nil {
		m.seed, m.hasSeed = *doc.Seed, true
	}
	return m, nil
}

// New builds a Model from already decoded specs, applying the same rules as
// Build. It is meant for programmatic construction.
func New(name string, specs ...VariableSpec) (*Model, error) {
	if len(specs) == 0 {
		return nil, &Error{Kind: ErrEmptyScenario}
	}

	b := newBuilder(len(specs))
	for i, spec := range specs {
		if err := b.add(i+1, spec, ""); err != nil {
			return nil, err
		}
	}
	return b.model(name), nil
}

// WithSeed returns a copy of m that declares the given base seed.
func (m *Model) WithSeed(seed uint64) *Model {
	out := *m
	out.seed, out.hasSeed = seed, true
	return &out
}

type builder struct {
	seen      map[string]int
	variables []VariableSpec
}

func newBuilder(n int) *builder {
	return &builder{seen: make(map[string]int, n), variables: make([]VariableSpec, 0, n)}
}

func (b *builder) model(name string) *Model {
	return &Model{name: name, variables: b.variables}
}

func (b *builder) checkName(index int, name, location string) error {
	if name == "" {
		return &Error{Kind: ErrInvalidName, Index: index, Location: location, Err: errors.New("name must not be empty")}
	}
	if first, dup := b.seen[name]; dup {
		return &Error{
			Kind:     ErrDuplicateVariable,
			Variable: name,
			Index:    index,
			Location: location,
			Err:      fmt.Errorf("already declared as variable #%d", first),
		}
	}
	return nil
}

func (b *builder) addRaw(index int, raw *config.Variable) error {
	if raw == nil {
		return &Error{Kind: ErrInvalidName, Index: index, Err: errors.New("declaration is empty")}
	}
	if err := b.checkName(index, raw.Name, raw.Location); err != nil {
		return err
	}

	d, err := distribution.Decode(raw.Distribution, raw.Params)
	if err != nil {
		return classify(index, raw.Name, raw.Distribution, raw.Location, err)
	}

	count, err := sampleCount(raw.Samples)
	if err != nil {
		return &Error{
			Kind:     ErrInvalidSampleCount,
			Variable: raw.Name,
			Index:    index,
			Field:    "samples",
			Location: raw.Location,
			Err:      err,
		}
	}

	b.accept(index, VariableSpec{Name: raw.Name, Distribution: d, SampleCount: count})
	return nil
}

func (b *builder) add(index int, spec VariableSpec, location string) error {
	if err := b.checkName(index, spec.Name, location); err != nil {
		return err
	}
	if spec.Distribution == nil {
		return &Error{Kind: ErrUnknownDistribution, Variable: spec.Name, Index: index, Err: errors.New("no distribution given")}
	}
	if err := distribution.Validate(spec.Distribution); err != nil {
		return classify(index, spec.Name, spec.Distribution.Kind().String(), location, err)
	}
	if spec.SampleCount < 1 {
		return &Error{
			Kind:     ErrInvalidSampleCount,
			Variable: spec.Name,
			Index:    index,
			Field:    "samples",
			Err:      fmt.Errorf("must be a positive integer, got %d", spec.SampleCount),
		}
	}
	b.accept(index, spec)
	return nil
}

func (b *builder) accept(index int, spec VariableSpec) {
	b.seen[spec.Name] = index
	b.variables = append(b.variables, spec)
}

// classify maps a distribution error onto the scenario taxonomy.
func classify(index int, name, tag, location string, err error) error {
	e := &Error{Variable: name, Index: index, Tag: tag, Location: location, Err: err}

	var pe *distribution.ParamError
	switch {
	case errors.Is(err, distribution.ErrUnknownKind):
		e.Kind = ErrUnknownDistribution
		e.Err = nil
	case errors.As(err, &pe):
		e.Kind = ErrInvalidParameters
		e.Field = pe.Field
	default:
		e.Kind = ErrInvalidParameters
	}
	return e
}

// sampleCount resolves the optional `samples` value to a positive int.
func sampleCount(v cty.Value) (int, error) {
	if v.IsNull() {
		return DefaultSampleCount, nil
	}
	if !v.IsWhollyKnown() {
		return 0, errors.New("must be a positive integer, got NaN")
	}
	nv, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("must be a positive integer, got %s", v.Type().FriendlyName())
	}
	bf := nv.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("must be a positive integer, got %s", bf.Text('g', -1))
	}
	if bf.Sign() <= 0 {
		return 0, fmt.Errorf("must be a positive integer, got %s", bf.Text('g', -1))
	}
	var n int64
	if err := gocty.FromCtyValue(nv, &n); err != nil || n > math.MaxInt32 {
		return 0, fmt.Errorf("must be at most %d, got %s", math.MaxInt32, bf.Text('g', -1))
	}
	return int(n), nil
}
