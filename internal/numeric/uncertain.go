package numeric

import (
	"fmt"
	"math"
)

// Uncertain is a numeric value carrying a standard deviation, combined through
// arithmetic with first-order (linear) error propagation. Input uncertainties
// are treated as independent, so correlated terms combine in quadrature.
//
// The formulas, for f = a op b with standard deviations sa, sb:
//
//	a + b, a - b:  s = sqrt(sa^2 + sb^2)
//	a * b:         s = sqrt((b*sa)^2 + (a*sb)^2)
//	a / b:         s = sqrt((sa/b)^2 + (a*sb/b^2)^2)
//	a ^ b:         s = sqrt((b*a^(b-1)*sa)^2 + (a^b*ln(a)*sb)^2)
type Uncertain struct {
	V float64 // central value
	S float64 // standard deviation
}

// U constructs an Uncertain value with the given standard deviation.
func U(v, s float64) Uncertain { return Uncertain{V: v, S: math.Abs(s)} }

func (u Uncertain) Add(o Uncertain) Uncertain {
	return Uncertain{V: u.V + o.V, S: math.Hypot(u.S, o.S)}
}

func (u Uncertain) Sub(o Uncertain) Uncertain {
	return Uncertain{V: u.V - o.V, S: math.Hypot(u.S, o.S)}
}

func (u Uncertain) Mul(o Uncertain) Uncertain {
	return Uncertain{V: u.V * o.V, S: math.Hypot(o.V*u.S, u.V*o.S)}
}

func (u Uncertain) Div(o Uncertain) Uncertain {
	return Uncertain{V: u.V / o.V, S: math.Hypot(u.S/o.V, u.V*o.S/(o.V*o.V))}
}

// Pow propagates error through u^o. The exponent's contribution involves
// ln(u), which is undefined for non-positive bases; that term is dropped when
// the exponent is exact (zero deviation), matching the common case of raising
// an uncertain quantity to a constant power.
func (u Uncertain) Pow(o Uncertain) Uncertain {
	v := math.Pow(u.V, o.V)
	base := o.V * math.Pow(u.V, o.V-1) * u.S
	var exp float64
	if o.S != 0 {
		exp = v * math.Log(u.V) * o.S
	}
	return Uncertain{V: v, S: math.Hypot(base, exp)}
}

func (u Uncertain) Cmp(o Uncertain) int {
	switch {
	case u.V < o.V:
		return -1
	case u.V > o.V:
		return 1
	default:
		return 0
	}
}

func (u Uncertain) Float() float64 { return u.V }

func (u Uncertain) IsNaN() bool { return math.IsNaN(u.V) }

// Lift returns an exact value (zero standard deviation) of the same kind.
func (Uncertain) Lift(v float64) Uncertain { return Uncertain{V: v} }

func (u Uncertain) String() string {
	return fmt.Sprintf("%g +/- %g", u.V, u.S)
}
