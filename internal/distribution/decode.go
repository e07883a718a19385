package distribution

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Decode builds a validated Distribution from a kind tag and its raw
// parameters. A nil or empty params map is valid for kinds whose fields all
// have defaults.
func Decode(tag string, params map[string]cty.Value) (Distribution, error) {
	kind, err := ParseKind(tag)
	if err != nil {
		return nil, err
	}

	r := &paramReader{kind: kind, params: params, used: make(map[string]struct{}, len(params))}
	var d Distribution

	switch kind {
	case KindUniform:
		d = Uniform{Low: r.number("low", 0), High: r.number("high", 1)}
	case KindNormal:
		d = Normal{Mean: r.requiredNumber("mean"), StdDev: r.requiredNumber("stddev")}
	case KindLogNormal:
		d = LogNormal{Mu: r.requiredNumber("mu"), Sigma: r.requiredNumber("sigma")}
	case KindExponential:
		d = Exponential{Rate: r.requiredNumber("rate")}
	case KindPoisson:
		d = Poisson{Lambda: r.requiredNumber("lambda")}
	case KindBernoulli:
		d = Bernoulli{P: r.requiredNumber("p")}
	case KindBinomial:
		d = Binomial{N: r.requiredInt("n"), P: r.requiredNumber("p")}
	case KindGamma:
		d = Gamma{Alpha: r.requiredNumber("alpha"), Beta: r.requiredNumber("beta")}
	case KindBeta:
		d = Beta{Alpha: r.requiredNumber("alpha"), Beta: r.requiredNumber("beta")}
	case KindTriangular:
		d = Triangular{Low: r.requiredNumber("low"), Mode: r.requiredNumber("mode"), High: r.requiredNumber("high")}
	case KindCategorical:
		d = Categorical{Categories: r.stringList("categories"), Weights: r.numberList("weights")}
	case KindConstant:
		d = Constant{Value: r.scalar("value")}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, tag)
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := r.checkUnused(); err != nil {
		return nil, err
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// paramReader pulls typed fields out of a raw parameter map. The first
// failure sticks and later reads become no-ops.
type paramReader struct {
	kind   Kind
	params map[string]cty.Value
	used   map[string]struct{}
	err    error
}

func (r *paramReader) lookup(field string) (cty.Value, bool) {
	if r.err != nil {
		return cty.NilVal, false
	}
	v, ok := r.params[field]
	if !ok {
		return cty.NilVal, false
	}
	r.used[field] = struct{}{}
	if v.IsNull() {
		return cty.NilVal, false
	}
	if !v.IsWhollyKnown() {
		r.fail(field, "must be a finite number, got NaN")
		return cty.NilVal, false
	}
	return v, true
}

func (r *paramReader) fail(field, format string, args ...any) {
	if r.err == nil {
		r.err = paramErr(r.kind, field, format, args...)
	}
}

func (r *paramReader) number(field string, def float64) float64 {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	return r.toFloat(field, v)
}

func (r *paramReader) requiredNumber(field string) float64 {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "is required")
		return 0
	}
	return r.toFloat(field, v)
}

func (r *paramReader) toFloat(field string, v cty.Value) float64 {
	nv, err := convert.Convert(v, cty.Number)
	if err != nil {
		r.fail(field, "must be a number, got %s", v.Type().FriendlyName())
		return 0
	}
	var f float64
	if err := gocty.FromCtyValue(nv, &f); err != nil {
		r.fail(field, "must be a number: %s", err)
		return 0
	}
	return f
}

func (r *paramReader) requiredInt(field string) int64 {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "is required")
		return 0
	}
	nv, err := convert.Convert(v, cty.Number)
	if err != nil {
		r.fail(field, "must be an integer, got %s", v.Type().FriendlyName())
		return 0
	}
	if !nv.AsBigFloat().IsInt() {
		r.fail(field, "must be an integer, got %s", nv.AsBigFloat().Text('g', -1))
		return 0
	}
	var n int64
	if err := gocty.FromCtyValue(nv, &n); err != nil {
		r.fail(field, "must be an integer: %s", err)
		return 0
	}
	return n
}

func (r *paramReader) stringList(field string) []string {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "is required")
		return nil
	}
	lv, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		r.fail(field, "must be a list of strings, got %s", v.Type().FriendlyName())
		return nil
	}
	var out []string
	if err := gocty.FromCtyValue(lv, &out); err != nil {
		r.fail(field, "must be a list of strings: %s", err)
		return nil
	}
	return out
}

func (r *paramReader) numberList(field string) []float64 {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "is required")
		return nil
	}
	lv, err := convert.Convert(v, cty.List(cty.Number))
	if err != nil {
		r.fail(field, "must be a list of numbers, got %s", v.Type().FriendlyName())
		return nil
	}
	var out []float64
	if err := gocty.FromCtyValue(lv, &out); err != nil {
		r.fail(field, "must be a list of numbers: %s", err)
		return nil
	}
	return out
}

// scalar accepts a number or a string. Strings are kept as tokens even when
// they look numeric.
func (r *paramReader) scalar(field string) Value {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "is required")
		return Value{}
	}
	switch v.Type() {
	case cty.String:
		return TokenValue(v.AsString())
	case cty.Number:
		return NumberValue(r.toFloat(field, v))
	default:
		r.fail(field, "must be a number or a string, got %s", v.Type().FriendlyName())
		return Value{}
	}
}

func (r *paramReader) checkUnused() error {
	var extra []string
	for name := range r.params {
		if _, ok := r.used[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return paramErr(r.kind, extra[0], "is not a parameter of this distribution")
}
