package config

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// NativeToCty converts a value produced by a generic decoder (TOML, YAML,
// JSON) into a cty.Value. Slices become tuples and maps become objects so
// mixed element types survive; consumers convert to the exact type they
// need.
func NativeToCty(v any) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case string:
		return cty.StringVal(v), nil
	case bool:
		return cty.BoolVal(v), nil
	case int:
		return cty.NumberIntVal(int64(v)), nil
	case int64:
		return cty.NumberIntVal(v), nil
	case uint64:
		return cty.NumberUIntVal(v), nil
	case float64:
		// cty numbers cannot hold NaN. It becomes an unknown number so the
		// parameter decoder rejects it on the field that declared it.
		if math.IsNaN(v) {
			return cty.UnknownVal(cty.Number), nil
		}
		return cty.NumberFloatVal(v), nil
	case json.Number:
		f, ok := new(big.Float).SetPrec(512).SetString(v.String())
		if !ok {
			return cty.NilVal, fmt.Errorf("invalid number %q", v.String())
		}
		return cty.NumberVal(f), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for i, e := range v {
			ev, err := NativeToCty(e)
			if err != nil {
				return cty.NilVal, fmt.Errorf("element %d: %w", i, err)
			}
			elems = append(elems, ev)
		}
		return cty.TupleVal(elems), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs := make(map[string]cty.Value, len(v))
		for _, k := range keys {
			ev, err := NativeToCty(v[k])
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute %q: %w", k, err)
			}
			attrs[k] = ev
		}
		return cty.ObjectVal(attrs), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}

// NativeMapToCty converts each entry of a decoded parameter table.
func NativeMapToCty(m map[string]any) (map[string]cty.Value, error) {
	out := make(map[string]cty.Value, len(m))
	for k, v := range m {
		cv, err := NativeToCty(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}
		out[k] = cv
	}
	return out, nil
}
