// Package numeric defines the minimal arithmetic interface the cost model is
// written against, together with its two implementations: a plain float64
// wrapper and an uncertainty-propagating value. Model formulas are generic
// over Number so that swapping the numeric type never touches the formulas.
package numeric

import "math"

// Number is the arithmetic contract required by the cost model. T is the
// implementing type itself (the usual self-referential constraint), so
// operations stay closed over one concrete numeric kind.
//
// Lift constructs a value of the same kind from a plain float64; it is how
// formulas introduce constants (24 h/day, unit conversions) without knowing
// the concrete type. All implementations must support calling Lift on their
// zero value.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Pow(T) T

	// Cmp compares central values: -1 if less, 0 if equal, +1 if greater.
	Cmp(T) int

	// Float returns the central value as a plain float64.
	Float() float64

	IsNaN() bool

	Lift(float64) T
}

// Lift constructs a T from a plain float64 using T's zero value.
func Lift[T Number[T]](v float64) T {
	var zero T
	return zero.Lift(v)
}

// NaN returns the not-a-number value of kind T. Missing-parameter lookups
// resolve to this so that an uncomputed dependency propagates visibly instead
// of contributing a silent zero.
func NaN[T Number[T]]() T {
	return Lift[T](math.NaN())
}
