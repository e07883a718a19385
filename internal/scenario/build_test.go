package scenario

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/distribution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func num(f float64) cty.Value { return cty.NumberFloatVal(f) }

func variable(name, tag string, samples cty.Value, params map[string]cty.Value) *config.Variable {
	return &config.Variable{Name: name, Distribution: tag, Samples: samples, Params: params}
}

func TestBuild_ValidScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	seed := uint64(77)
	doc := &config.Document{
		Name: "demo",
		Seed: &seed,
		Variables: []*config.Variable{
			variable("v", "uniform", cty.NumberIntVal(5), nil),
			variable("n", "Normal", cty.NullVal(cty.Number), map[string]cty.Value{"mean": num(1), "stddev": num(0.5)}),
			variable("c", "categorical", cty.StringVal("2"), map[string]cty.Value{
				"categories": cty.TupleVal([]cty.Value{cty.StringVal("A"), cty.StringVal("B")}),
				"weights":    cty.TupleVal([]cty.Value{num(1), num(3)}),
			}),
		},
	}

	// --- Act ---
	m, err := Build(doc)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Name())
	gotSeed, ok := m.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(77), gotSeed)

	want := []VariableSpec{
		{Name: "v", Distribution: distribution.Uniform{Low: 0, High: 1}, SampleCount: 5},
		{Name: "n", Distribution: distribution.Normal{Mean: 1, StdDev: 0.5}, SampleCount: 1},
		{Name: "c", Distribution: distribution.Categorical{Categories: []string{"A", "B"}, Weights: []float64{1, 3}}, SampleCount: 2},
	}
	if diff := cmp.Diff(want, m.Variables()); diff != "" {
		t.Errorf("Build() variables mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 8, m.SamplesPerRealization())
}

func TestBuild_Rejections(t *testing.T) {
	t.Parallel()

	uniform := func(name string) *config.Variable {
		return variable(name, "uniform", cty.NullVal(cty.Number), nil)
	}

	testCases := []struct {
		name         string
		variables    []*config.Variable
		wantKind     error
		wantVariable string
		wantField    string
		wantMsg      string
	}{
		{
			name:      "empty scenario",
			variables: nil,
			wantKind:  ErrEmptyScenario,
			wantMsg:   "scenario: scenario declares no variables",
		},
		{
			name:      "empty name",
			variables: []*config.Variable{uniform("a"), uniform("")},
			wantKind:  ErrInvalidName,
			wantMsg:   "variable #2",
		},
		{
			name:         "duplicate name",
			variables:    []*config.Variable{uniform("x"), uniform("x")},
			wantKind:     ErrDuplicateVariable,
			wantVariable: "x",
			wantMsg:      `variable "x": duplicate variable: already declared as variable #1`,
		},
		{
			name:         "unknown distribution",
			variables:    []*config.Variable{variable("z", "zipf", cty.NullVal(cty.Number), nil)},
			wantKind:     ErrUnknownDistribution,
			wantVariable: "z",
			wantMsg:      `unknown distribution "zipf"`,
		},
		{
			name: "negative stddev",
			variables: []*config.Variable{variable("n", "normal", cty.NullVal(cty.Number),
				map[string]cty.Value{"mean": num(0), "stddev": num(-1)})},
			wantKind:     ErrInvalidParameters,
			wantVariable: "n",
			wantField:    "stddev",
			wantMsg:      `invalid normal parameter "stddev": must be non-negative, got -1`,
		},
		{
			name: "categorical zero total",
			variables: []*config.Variable{variable("c", "categorical", cty.NullVal(cty.Number), map[string]cty.Value{
				"categories": cty.TupleVal([]cty.Value{cty.StringVal("A")}),
				"weights":    cty.TupleVal([]cty.Value{num(0)}),
			})},
			wantKind:     ErrInvalidParameters,
			wantVariable: "c",
			wantField:    "weights",
		},
		{
			name:         "zero samples",
			variables:    []*config.Variable{variable("v", "uniform", cty.NumberIntVal(0), nil)},
			wantKind:     ErrInvalidSampleCount,
			wantVariable: "v",
			wantField:    "samples",
			wantMsg:      `variable "v": invalid sample count: must be a positive integer, got 0`,
		},
		{
			name:         "fractional samples",
			variables:    []*config.Variable{variable("v", "uniform", num(2.5), nil)},
			wantKind:     ErrInvalidSampleCount,
			wantVariable: "v",
		},
		{
			name:         "non-numeric samples",
			variables:    []*config.Variable{variable("v", "uniform", cty.True, nil)},
			wantKind:     ErrInvalidSampleCount,
			wantVariable: "v",
		},
		{
			// The first variable's bad parameters win over the second's bad name.
			name: "declaration order decides",
			variables: []*config.Variable{
				variable("a", "exponential", cty.NullVal(cty.Number), map[string]cty.Value{"rate": num(0)}),
				uniform(""),
			},
			wantKind:     ErrInvalidParameters,
			wantVariable: "a",
			wantField:    "rate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m, err := Build(&config.Document{Variables: tc.variables})

			require.Nil(t, m, "no partial model on failure")
			require.ErrorIs(t, err, tc.wantKind)

			var se *Error
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.wantVariable, se.Variable)
			assert.Equal(t, tc.wantField, se.Field)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestBuild_ParamErrorIsReachable(t *testing.T) {
	t.Parallel()

	_, err := Build(&config.Document{Variables: []*config.Variable{
		variable("b", "bernoulli", cty.NullVal(cty.Number), map[string]cty.Value{"p": num(2)}),
	}})

	var pe *distribution.ParamError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, distribution.KindBernoulli, pe.Kind)
	assert.ErrorIs(t, err, distribution.ErrInvalidParameters)
}

func TestBuild_LocationIsReported(t *testing.T) {
	t.Parallel()

	v := variable("x", "nope", cty.NullVal(cty.Number), nil)
	v.Location = "demo.hcl:3,1-13"
	_, err := Build(&config.Document{Variables: []*config.Variable{v}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(demo.hcl:3,1-13)")
}

func TestNew(t *testing.T) {
	t.Parallel()

	m, err := New("prog",
		VariableSpec{Name: "a", Distribution: distribution.Constant{Value: distribution.NumberValue(1)}, SampleCount: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	_, hasSeed := m.Seed()
	assert.False(t, hasSeed)

	seeded := m.WithSeed(5)
	s, ok := seeded.Seed()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), s)
	_, stillUnseeded := m.Seed()
	assert.False(t, stillUnseeded, "WithSeed must not mutate the receiver")
}

func TestNew_Rejections(t *testing.T) {
	t.Parallel()

	_, err := New("x")
	assert.ErrorIs(t, err, ErrEmptyScenario)

	_, err = New("x", VariableSpec{Name: "a", Distribution: distribution.Uniform{Low: 0, High: 1}, SampleCount: 0})
	assert.ErrorIs(t, err, ErrInvalidSampleCount)

	_, err = New("x", VariableSpec{Name: "a", SampleCount: 1})
	assert.ErrorIs(t, err, ErrUnknownDistribution)

	_, err = New("x", VariableSpec{Name: "a", Distribution: distribution.Normal{StdDev: -1}, SampleCount: 1})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestModel_VariablesIsACopy(t *testing.T) {
	t.Parallel()

	m, err := New("x", VariableSpec{Name: "a", Distribution: distribution.Uniform{Low: 0, High: 1}, SampleCount: 1})
	require.NoError(t, err)

	vars := m.Variables()
	vars[0].Name = "mutated"
	assert.Equal(t, "a", m.Variable(0).Name)
}
