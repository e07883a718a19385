package distribution

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		tag    string
		params map[string]cty.Value
		want   Distribution
	}{
		{
			name: "uniform defaults",
			tag:  "uniform",
			want: Uniform{Low: 0, High: 1},
		},
		{
			name:   "uniform explicit",
			tag:    "uniform",
			params: map[string]cty.Value{"low": cty.NumberIntVal(-5), "high": cty.NumberFloatVal(2.5)},
			want:   Uniform{Low: -5, High: 2.5},
		},
		{
			name:   "normal from numeric strings",
			tag:    "normal",
			params: map[string]cty.Value{"mean": cty.StringVal("10"), "stddev": cty.NumberIntVal(2)},
			want:   Normal{Mean: 10, StdDev: 2},
		},
		{
			name:   "binomial",
			tag:    "binomial",
			params: map[string]cty.Value{"n": cty.NumberIntVal(20), "p": cty.NumberFloatVal(0.25)},
			want:   Binomial{N: 20, P: 0.25},
		},
		{
			name: "categorical from tuples",
			tag:  "categorical",
			params: map[string]cty.Value{
				"categories": cty.TupleVal([]cty.Value{cty.StringVal("red"), cty.StringVal("blue")}),
				"weights":    cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberFloatVal(0.5)}),
			},
			want: Categorical{Categories: []string{"red", "blue"}, Weights: []float64{1, 0.5}},
		},
		{
			name:   "constant number",
			tag:    "constant",
			params: map[string]cty.Value{"value": cty.NumberFloatVal(3.25)},
			want:   Constant{Value: NumberValue(3.25)},
		},
		{
			name:   "constant token stays a token",
			tag:    "fixed",
			params: map[string]cty.Value{"value": cty.StringVal("42")},
			want:   Constant{Value: TokenValue("42")},
		},
		{
			name:   "triangular",
			tag:    "triangular",
			params: map[string]cty.Value{"low": cty.NumberIntVal(0), "mode": cty.NumberIntVal(0), "high": cty.NumberIntVal(1)},
			want:   Triangular{Low: 0, Mode: 0, High: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tc.tag, tc.params)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(Value{})); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		tag       string
		params    map[string]cty.Value
		wantField string
	}{
		{"missing required", "normal", map[string]cty.Value{"mean": cty.NumberIntVal(1)}, "stddev"},
		{"unknown field", "uniform", map[string]cty.Value{"low": cty.NumberIntVal(0), "max": cty.NumberIntVal(1)}, "max"},
		{"wrong type", "exponential", map[string]cty.Value{"rate": cty.True}, "rate"},
		{"non-numeric string", "poisson", map[string]cty.Value{"lambda": cty.StringVal("lots")}, "lambda"},
		{"fractional n", "binomial", map[string]cty.Value{"n": cty.NumberFloatVal(2.5), "p": cty.NumberFloatVal(0.1)}, "n"},
		{"negative n", "binomial", map[string]cty.Value{"n": cty.NumberIntVal(-1), "p": cty.NumberFloatVal(0.1)}, "n"},
		{"out of domain", "uniform", map[string]cty.Value{"low": cty.NumberIntVal(5), "high": cty.NumberIntVal(1)}, "high"},
		{"negative weight", "categorical", map[string]cty.Value{
			"categories": cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			"weights":    cty.ListVal([]cty.Value{cty.NumberIntVal(-1), cty.NumberIntVal(2)}),
		}, "weights"},
		{"empty token", "categorical", map[string]cty.Value{
			"categories": cty.ListVal([]cty.Value{cty.StringVal("")}),
			"weights":    cty.ListVal([]cty.Value{cty.NumberIntVal(1)}),
		}, "categories"},
		{"constant list", "constant", map[string]cty.Value{"value": cty.ListValEmpty(cty.String)}, "value"},
		{"unknown value", "exponential", map[string]cty.Value{"rate": cty.UnknownVal(cty.Number)}, "rate"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tc.tag, tc.params)
			require.ErrorIs(t, err, ErrInvalidParameters)

			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.wantField, pe.Field)
		})
	}
}

func TestDecode_RejectsNonFiniteNumbers(t *testing.T) {
	t.Parallel()

	inf := cty.PositiveInfinity
	testCases := []struct {
		name      string
		tag       string
		params    map[string]cty.Value
		wantField string
	}{
		{"uniform bound", "uniform", map[string]cty.Value{"low": cty.NegativeInfinity}, "low"},
		{"normal mean", "normal", map[string]cty.Value{"mean": inf, "stddev": cty.NumberIntVal(1)}, "mean"},
		{"normal stddev", "normal", map[string]cty.Value{"mean": cty.Zero, "stddev": inf}, "stddev"},
		{"normal stddev nan", "normal", map[string]cty.Value{"mean": cty.Zero, "stddev": cty.UnknownVal(cty.Number)}, "stddev"},
		{"lognormal sigma", "lognormal", map[string]cty.Value{"mu": cty.Zero, "sigma": inf}, "sigma"},
		{"exponential rate", "exponential", map[string]cty.Value{"rate": inf}, "rate"},
		{"poisson lambda", "poisson", map[string]cty.Value{"lambda": inf}, "lambda"},
		{"bernoulli p", "bernoulli", map[string]cty.Value{"p": cty.NegativeInfinity}, "p"},
		{"gamma beta", "gamma", map[string]cty.Value{"alpha": cty.NumberIntVal(2), "beta": inf}, "beta"},
		{"triangular mode", "triangular", map[string]cty.Value{
			"low": cty.Zero, "mode": inf, "high": cty.NumberIntVal(1),
		}, "mode"},
		{"categorical weight", "categorical", map[string]cty.Value{
			"categories": cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			"weights":    cty.ListVal([]cty.Value{cty.NumberIntVal(1), inf}),
		}, "weights"},
		{"constant value", "constant", map[string]cty.Value{"value": inf}, "value"},
		{"constant nan", "constant", map[string]cty.Value{"value": cty.UnknownVal(cty.Number)}, "value"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode(tc.tag, tc.params)

			var pe *ParamError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.wantField, pe.Field)
			assert.Contains(t, pe.Reason, "finite")
		})
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := Decode("cauchy", nil)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecode_NullIsTreatedAsOmitted(t *testing.T) {
	t.Parallel()

	got, err := Decode("uniform", map[string]cty.Value{"low": cty.NullVal(cty.Number)})
	require.NoError(t, err)
	assert.Equal(t, Uniform{Low: 0, High: 1}, got)
}
