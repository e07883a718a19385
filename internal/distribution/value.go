package distribution

import (
	"math"
	"strconv"
)

// Value is a single sample: either a number or a categorical token.
// The zero Value is the number 0.
type Value struct {
	num   float64
	token string
	isTok bool
}

// NumberValue wraps a numeric sample.
func NumberValue(f float64) Value {
	return Value{num: f}
}

// TokenValue wraps a categorical sample.
func TokenValue(s string) Value {
	return Value{token: s, isTok: true}
}

// IsToken reports whether v holds a categorical token.
func (v Value) IsToken() bool {
	return v.isTok
}

// Float returns the numeric sample. It is 0 for tokens.
func (v Value) Float() float64 {
	return v.num
}

// Token returns the categorical sample. It is empty for numbers.
func (v Value) Token() string {
	return v.token
}

// Interface returns the sample as a float64 or a string, which is what the
// output encoders serialize. Infinities and NaN come back as the strings
// "+Inf", "-Inf" and "NaN", the same text String renders.
func (v Value) Interface() any {
	if v.isTok {
		return v.token
	}
	if math.IsInf(v.num, 0) || math.IsNaN(v.num) {
		return v.String()
	}
	return v.num
}

// String renders numbers in the shortest form that parses back to the same
// float64, so written outputs can be compared bit for bit.
func (v Value) String() string {
	if v.isTok {
		return v.token
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
