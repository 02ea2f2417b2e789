package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArithmetic(t *testing.T) {
	a := F(6)
	b := F(4)

	assert.Equal(t, F(10), a.Add(b))
	assert.Equal(t, F(2), a.Sub(b))
	assert.Equal(t, F(24), a.Mul(b))
	assert.Equal(t, F(1.5), a.Div(b))
	assert.InDelta(t, 1296.0, a.Pow(b).Float(), 1e-12)

	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestFloatNaN(t *testing.T) {
	n := NaN[Float]()
	require.True(t, n.IsNaN())
	assert.True(t, n.Add(F(1)).IsNaN())
	assert.True(t, n.Mul(F(0)).IsNaN())
	assert.False(t, F(0).IsNaN())
}

func TestLift(t *testing.T) {
	assert.Equal(t, F(3.5), Lift[Float](3.5))
	u := Lift[Uncertain](3.5)
	assert.Equal(t, 3.5, u.V)
	assert.Equal(t, 0.0, u.S, "lifted constants are exact")
}

func TestUncertainAddSub(t *testing.T) {
	a := U(10, 3)
	b := U(4, 4)

	sum := a.Add(b)
	assert.Equal(t, 14.0, sum.V)
	assert.InDelta(t, 5.0, sum.S, 1e-12, "sqrt(3^2+4^2)")

	diff := a.Sub(b)
	assert.Equal(t, 6.0, diff.V)
	assert.InDelta(t, 5.0, diff.S, 1e-12, "deviations add in quadrature either way")
}

func TestUncertainMulDiv(t *testing.T) {
	a := U(10, 1)
	b := U(5, 0.5)

	prod := a.Mul(b)
	assert.Equal(t, 50.0, prod.V)
	// sqrt((5*1)^2 + (10*0.5)^2) = sqrt(50)
	assert.InDelta(t, math.Sqrt(50), prod.S, 1e-12)

	quot := a.Div(b)
	assert.Equal(t, 2.0, quot.V)
	// sqrt((1/5)^2 + (10*0.5/25)^2)
	assert.InDelta(t, math.Hypot(0.2, 0.2), quot.S, 1e-12)
}

func TestUncertainMulExact(t *testing.T) {
	// Multiplying by an exact constant scales the deviation linearly.
	got := U(10, 2).Mul(Lift[Uncertain](3))
	assert.Equal(t, 30.0, got.V)
	assert.InDelta(t, 6.0, got.S, 1e-12)
}

func TestUncertainPow(t *testing.T) {
	// Uncertain base to an exact power: only the base term contributes.
	got := U(4, 0.1).Pow(Lift[Uncertain](2))
	assert.Equal(t, 16.0, got.V)
	// 2 * 4^1 * 0.1 = 0.8
	assert.InDelta(t, 0.8, got.S, 1e-12)

	// Exact base, uncertain exponent: the log term contributes.
	got = Lift[Uncertain](math.E).Pow(U(2, 0.1))
	assert.InDelta(t, math.E*math.E, got.V, 1e-12)
	assert.InDelta(t, math.E*math.E*0.1, got.S, 1e-12)
}

func TestUncertainPowNegativeBaseExactExponent(t *testing.T) {
	// The ln(base) term must be dropped for an exact exponent or a negative
	// base would poison the deviation with NaN.
	got := U(-2, 0.1).Pow(Lift[Uncertain](2))
	assert.Equal(t, 4.0, got.V)
	assert.False(t, math.IsNaN(got.S))
}

func TestUncertainCmpIgnoresDeviation(t *testing.T) {
	assert.Equal(t, 0, U(5, 1).Cmp(U(5, 9)))
	assert.Equal(t, -1, U(4, 9).Cmp(U(5, 0)))
	assert.Equal(t, 1, U(6, 0).Cmp(U(5, 9)))
}

func TestUncertainString(t *testing.T) {
	assert.Equal(t, "10 +/- 0.5", U(10, 0.5).String())
}

func TestUNormalizesSign(t *testing.T) {
	assert.Equal(t, 0.5, U(1, -0.5).S)
}
