package numeric

import "math"

// Float is the plain float64 implementation of Number. It is the numeric type
// used for ordinary scenario evaluation.
type Float float64

// F wraps a float64 as a Float.
func F(v float64) Float { return Float(v) }

func (f Float) Add(o Float) Float { return f + o }

func (f Float) Sub(o Float) Float { return f - o }

func (f Float) Mul(o Float) Float { return f * o }

func (f Float) Div(o Float) Float { return f / o }

func (f Float) Pow(o Float) Float {
	return Float(math.Pow(float64(f), float64(o)))
}

func (f Float) Cmp(o Float) int {
	switch {
	case f < o:
		return -1
	case f > o:
		return 1
	default:
		return 0
	}
}

func (f Float) Float() float64 { return float64(f) }

func (f Float) IsNaN() bool { return math.IsNaN(float64(f)) }

func (Float) Lift(v float64) Float { return Float(v) }
