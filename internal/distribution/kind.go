package distribution

import (
	"fmt"
	"strings"
)

// Kind is the tag naming a distribution in a scenario file.
type Kind string

const (
	KindUniform     Kind = "uniform"
	KindNormal      Kind = "normal"
	KindLogNormal   Kind = "lognormal"
	KindExponential Kind = "exponential"
	KindPoisson     Kind = "poisson"
	KindBernoulli   Kind = "bernoulli"
	KindBinomial    Kind = "binomial"
	KindGamma       Kind = "gamma"
	KindBeta        Kind = "beta"
	KindTriangular  Kind = "triangular"
	KindCategorical Kind = "categorical"
	KindConstant    Kind = "constant"
)

// allKinds lists every kind in the order they are documented.
var allKinds = []Kind{
	KindUniform,
	KindNormal,
	KindLogNormal,
	KindExponential,
	KindPoisson,
	KindBernoulli,
	KindBinomial,
	KindGamma,
	KindBeta,
	KindTriangular,
	KindCategorical,
	KindConstant,
}

// aliases maps alternative spellings accepted in scenario files.
var aliases = map[string]Kind{
	"gaussian": KindNormal,
	"discrete": KindCategorical,
	"triangle": KindTriangular,
	"fixed":    KindConstant,
}

// Kinds returns all supported kinds.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind resolves a scenario tag to a Kind. Matching ignores case and
// surrounding whitespace.
func ParseKind(tag string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	for _, k := range allKinds {
		if string(k) == normalized {
			return k, nil
		}
	}
	if k, ok := aliases[normalized]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, tag)
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Numeric reports whether samples of this kind are numbers. Constant kinds
// depend on their value and report true here; check Value.IsToken instead.
func (k Kind) Numeric() bool {
	return k != KindCategorical
}
