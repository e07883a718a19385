package distribution

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws one value from d using src. It fails only when d carries
// parameters outside its domain or src is nil.
func Sample(d Distribution, src rand.Source) (Value, error) {
	if src == nil {
		return Value{}, ErrNoEntropy
	}
	if err := Validate(d); err != nil {
		return Value{}, err
	}

	switch d := d.(type) {
	case Uniform:
		v := distuv.Uniform{Min: d.Low, Max: d.High, Src: src}.Rand()
		if v >= d.High {
			// low + u*(high-low) can round up to high.
			v = math.Nextafter(d.High, d.Low)
		}
		return NumberValue(v), nil
	case Normal:
		return NumberValue(distuv.Normal{Mu: d.Mean, Sigma: d.StdDev, Src: src}.Rand()), nil
	case LogNormal:
		return NumberValue(distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}.Rand()), nil
	case Exponential:
		return NumberValue(distuv.Exponential{Rate: d.Rate, Src: src}.Rand()), nil
	case Poisson:
		return NumberValue(distuv.Poisson{Lambda: d.Lambda, Src: src}.Rand()), nil
	case Bernoulli:
		return NumberValue(distuv.Bernoulli{P: d.P, Src: src}.Rand()), nil
	case Binomial:
		return NumberValue(distuv.Binomial{N: float64(d.N), P: d.P, Src: src}.Rand()), nil
	case Gamma:
		return NumberValue(distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta, Src: src}.Rand()), nil
	case Beta:
		return NumberValue(distuv.Beta{Alpha: d.Alpha, Beta: d.Beta, Src: src}.Rand()), nil
	case Triangular:
		return NumberValue(distuv.NewTriangle(d.Low, d.High, d.Mode, src).Rand()), nil
	case Categorical:
		return d.sample(src), nil
	case Constant:
		return d.Value, nil
	default:
		return Value{}, fmt.Errorf("distribution: unsupported type %T", d)
	}
}

// sample walks the cumulative weights and returns the first category whose
// running total meets the threshold. Zero-weight categories never match.
func (d Categorical) sample(src rand.Source) Value {
	total := 0.0
	for _, w := range d.Weights {
		total += w
	}
	threshold := rand.New(src).Float64() * total

	cumulative := 0.0
	for i, w := range d.Weights {
		cumulative += w
		if w > 0 && cumulative >= threshold {
			return TokenValue(d.Categories[i])
		}
	}

	// Rounding can leave the running total a hair below the threshold.
	for i := len(d.Weights) - 1; i >= 0; i-- {
		if d.Weights[i] > 0 {
			return TokenValue(d.Categories[i])
		}
	}
	return TokenValue(d.Categories[len(d.Categories)-1])
}
