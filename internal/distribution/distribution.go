package distribution

import (
	"math"
)

// Distribution is a parameterized sampling rule. The interface is sealed:
// only the types in this package implement it.
type Distribution interface {
	// Kind returns the tag this distribution is declared with.
	Kind() Kind

	validate() error
}

// Uniform samples from [Low, High).
type Uniform struct {
	Low  float64
	High float64
}

// Normal samples from a Gaussian with the given mean and standard deviation.
type Normal struct {
	Mean   float64
	StdDev float64
}

// LogNormal samples exp(X) where X is Normal(Mu, Sigma).
type LogNormal struct {
	Mu    float64
	Sigma float64
}

// Exponential samples waiting times with the given rate.
type Exponential struct {
	Rate float64
}

// Poisson samples event counts with mean Lambda.
type Poisson struct {
	Lambda float64
}

// Bernoulli samples 1 with probability P and 0 otherwise.
type Bernoulli struct {
	P float64
}

// Binomial samples the number of successes in N trials of probability P.
type Binomial struct {
	N int64
	P float64
}

// Gamma uses the shape/rate parameterization.
type Gamma struct {
	Alpha float64
	Beta  float64
}

// Beta samples from [0, 1] with shape parameters Alpha and Beta.
type Beta struct {
	Alpha float64
	Beta  float64
}

// Triangular samples from [Low, High] with its peak at Mode.
type Triangular struct {
	Low  float64
	Mode float64
	High float64
}

// Categorical picks one of Categories with probability proportional to the
// weight at the same index.
type Categorical struct {
	Categories []string
	Weights    []float64
}

// Constant always yields Value.
type Constant struct {
	Value Value
}

func (Uniform) Kind() Kind     { return KindUniform }
func (Normal) Kind() Kind      { return KindNormal }
func (LogNormal) Kind() Kind   { return KindLogNormal }
func (Exponential) Kind() Kind { return KindExponential }
func (Poisson) Kind() Kind     { return KindPoisson }
func (Bernoulli) Kind() Kind   { return KindBernoulli }
func (Binomial) Kind() Kind    { return KindBinomial }
func (Gamma) Kind() Kind       { return KindGamma }
func (Beta) Kind() Kind        { return KindBeta }
func (Triangular) Kind() Kind  { return KindTriangular }
func (Categorical) Kind() Kind { return KindCategorical }
func (Constant) Kind() Kind    { return KindConstant }

// Validate checks d against the domain of its kind.
func Validate(d Distribution) error {
	if d == nil {
		return &ParamError{Field: "distribution", Reason: "is missing"}
	}
	return d.validate()
}

func (d Uniform) validate() error {
	if err := finite(KindUniform, "low", d.Low); err != nil {
		return err
	}
	if err := finite(KindUniform, "high", d.High); err != nil {
		return err
	}
	if d.Low >= d.High {
		return paramErr(KindUniform, "high", "must be greater than low (%g >= %g)", d.Low, d.High)
	}
	return nil
}

func (d Normal) validate() error {
	if err := finite(KindNormal, "mean", d.Mean); err != nil {
		return err
	}
	return nonNegative(KindNormal, "stddev", d.StdDev)
}

func (d LogNormal) validate() error {
	if err := finite(KindLogNormal, "mu", d.Mu); err != nil {
		return err
	}
	return nonNegative(KindLogNormal, "sigma", d.Sigma)
}

func (d Exponential) validate() error {
	return positive(KindExponential, "rate", d.Rate)
}

func (d Poisson) validate() error {
	return positive(KindPoisson, "lambda", d.Lambda)
}

func (d Bernoulli) validate() error {
	return probability(KindBernoulli, "p", d.P)
}

func (d Binomial) validate() error {
	if d.N < 0 {
		return paramErr(KindBinomial, "n", "must be non-negative, got %d", d.N)
	}
	return probability(KindBinomial, "p", d.P)
}

func (d Gamma) validate() error {
	if err := positive(KindGamma, "alpha", d.Alpha); err != nil {
		return err
	}
	return positive(KindGamma, "beta", d.Beta)
}

func (d Beta) validate() error {
	if err := positive(KindBeta, "alpha", d.Alpha); err != nil {
		return err
	}
	return positive(KindBeta, "beta", d.Beta)
}

func (d Triangular) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{{"low", d.Low}, {"mode", d.Mode}, {"high", d.High}} {
		if err := finite(KindTriangular, f.name, f.v); err != nil {
			return err
		}
	}
	if d.Low >= d.High {
		return paramErr(KindTriangular, "high", "must be greater than low (%g >= %g)", d.Low, d.High)
	}
	if d.Mode < d.Low || d.Mode > d.High {
		return paramErr(KindTriangular, "mode", "must lie within [%g, %g], got %g", d.Low, d.High, d.Mode)
	}
	return nil
}

func (d Categorical) validate() error {
	if len(d.Categories) == 0 {
		return paramErr(KindCategorical, "categories", "must not be empty")
	}
	if len(d.Weights) != len(d.Categories) {
		return paramErr(KindCategorical, "weights", "must have one entry per category (%d categories, %d weights)",
			len(d.Categories), len(d.Weights))
	}
	seen := make(map[string]struct{}, len(d.Categories))
	for _, c := range d.Categories {
		if c == "" {
			return paramErr(KindCategorical, "categories", "must not contain empty tokens")
		}
		if _, dup := seen[c]; dup {
			return paramErr(KindCategorical, "categories", "contains %q more than once", c)
		}
		seen[c] = struct{}{}
	}
	total := 0.0
	for i, w := range d.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return paramErr(KindCategorical, "weights", "must be finite and non-negative, got %g for %q", w, d.Categories[i])
		}
		total += w
	}
	if !(total > 0) || math.IsInf(total, 0) {
		return paramErr(KindCategorical, "weights", "must sum to a positive finite total, got %g", total)
	}
	return nil
}

func (d Constant) validate() error {
	if d.Value.IsToken() {
		return nil
	}
	return finite(KindConstant, "value", d.Value.Float())
}

func finite(kind Kind, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return paramErr(kind, field, "must be a finite number, got %g", v)
	}
	return nil
}

func nonNegative(kind Kind, field string, v float64) error {
	if err := finite(kind, field, v); err != nil {
		return err
	}
	if v < 0 {
		return paramErr(kind, field, "must be non-negative, got %g", v)
	}
	return nil
}

func positive(kind Kind, field string, v float64) error {
	if err := finite(kind, field, v); err != nil {
		return err
	}
	if v <= 0 {
		return paramErr(kind, field, "must be positive, got %g", v)
	}
	return nil
}

func probability(kind Kind, field string, v float64) error {
	if err := finite(kind, field, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return paramErr(kind, field, "must be within [0, 1], got %g", v)
	}
	return nil
}
