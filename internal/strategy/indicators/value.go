package indicators

import (
	"math"
	"strconv"
)

// Value is one position of an indicator series. A Value is either defined and
// carries a float, or undefined because the position lacks history or its
// inputs are degenerate. The zero Value is undefined.
type Value struct {
	v       float64
	defined bool
}

// Defined wraps a computed float.
func Defined(v float64) Value {
	return Value{v: v, defined: true}
}

// Undefined returns the marker for a position without a meaningful value.
func Undefined() Value {
	return Value{}
}

// IsDefined reports whether the value carries a float.
func (v Value) IsDefined() bool { return v.defined }

// Float returns the wrapped float and whether it is defined.
func (v Value) Float() (float64, bool) {
	return v.v, v.defined
}

// Or returns the wrapped float, or fallback when undefined.
func (v Value) Or(fallback float64) float64 {
	if !v.defined {
		return fallback
	}
	return v.v
}

// Ptr returns a pointer to a copy of the float, or nil when undefined.
func (v Value) Ptr() *float64 {
	if !v.defined {
		return nil
	}
	f := v.v
	return &f
}

func (v Value) String() string {
	if !v.defined {
		return "undefined"
	}
	return strconv.FormatFloat(v.v, 'f', -1, 64)
}

// Series is an ordered sequence of Values, oldest first.
type Series []Value

// FromFloats wraps every float as a defined Value.
func FromFloats(values []float64) Series {
	s := make(Series, len(values))
	for i, f := range values {
		s[i] = Defined(f)
	}
	return s
}

// At returns the value at position i. Negative indexes count from the end;
// out-of-range positions are undefined.
func (s Series) At(i int) Value {
	if i < 0 {
		i += len(s)
	}
	if i < 0 || i >= len(s) {
		return Undefined()
	}
	return s[i]
}

// Last returns the most recent value.
func (s Series) Last() Value {
	return s.At(-1)
}

// Floats converts the series to plain floats, rendering undefined positions as
// NaN. Intended for export only; computations should stay on Values.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v.Or(math.NaN())
	}
	return out
}
