package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedScenario1(t *testing.T) {
	x := Parse(NoOp, "1.23E-10")
	y := Parse(NoOp, "2.00E-10")
	z := new(Decimal).Sub(x, y)
	assert.Equal(t, "-0.000000000077", z.String())
}

func TestSeedScenario2(t *testing.T) {
	h := &Hook{Precision: 3, Rounding: HalfUp, MaxExponent: DefaultMaxExponent, MinExponent: DefaultMinExponent}
	x := Parse(h, "0.999E-2")
	y := Parse(h, "0.1E-2")
	z := new(Decimal).Add(x, y)
	assert.Equal(t, "0.0110", z.String())
	assert.True(t, z.Inexact())
	assert.True(t, z.Rounded())
}

func TestSeedScenario3(t *testing.T) {
	x := Parse(NoOp, "1")
	y := Parse(NoOp, "3")
	z := new(Decimal).Quo(x, y)
	assert.Equal(t, "0.333333333", z.String())
	assert.True(t, z.Inexact())
	assert.True(t, z.Rounded())
}

func TestSeedScenario4(t *testing.T) {
	x := Parse(HighPrecision, "1e-50")
	y := Parse(HighPrecision, "4e-50")
	z := new(Decimal).Add(x, y)
	assert.Equal(t, "0.00000000000000000000000000000000000000000000000005", z.String())
}

func TestSeedScenario5(t *testing.T) {
	x := Parse(HighPrecision, "10000e+9")
	y := Parse(HighPrecision, "7")
	z := new(Decimal).Sub(x, y)
	assert.Equal(t, "9999999999993", z.String())
}

func TestSeedScenario6(t *testing.T) {
	x := Parse(NoOp, "NaN")
	y := Parse(NoOp, "Inf")
	z := new(Decimal).Add(x, y)
	assert.Equal(t, "NaN", z.String())
}

func TestSeedScenario7(t *testing.T) {
	x := Parse(NoOp, "Inf")
	z := new(Decimal).Sub(x, x)
	assert.True(t, z.IsNaN())
	assert.True(t, z.InvalidOperation())
}

func TestAddCommutative(t *testing.T) {
	a := Parse(NoOp, "12.34")
	b := Parse(NoOp, "0.0056")
	ab := new(Decimal).Add(a, b)
	ba := new(Decimal).Add(b, a)
	assert.True(t, Equal(ab, ba))
}

func TestMulCommutativeAndIdentity(t *testing.T) {
	a := Parse(NoOp, "7.5")
	b := Parse(NoOp, "3")
	ab := new(Decimal).Mul(a, b)
	ba := new(Decimal).Mul(b, a)
	assert.True(t, Equal(ab, ba))

	one := New(NoOp, 1, 0)
	ident := new(Decimal).Mul(a, one)
	assert.True(t, Equal(a, ident))
}

func TestAddNegCancelsToZero(t *testing.T) {
	a := Parse(NoOp, "5.5")
	neg := new(Decimal).Neg(a)
	sum := new(Decimal).Add(a, neg)
	assert.True(t, sum.IsZero())
}

func TestAddInfinityOppositeSignsIsInvalid(t *testing.T) {
	posInf := InfinityValue(NoOp, false)
	negInf := InfinityValue(NoOp, true)
	z := new(Decimal).Add(posInf, negInf)
	assert.True(t, z.IsNaN())
	assert.True(t, z.InvalidOperation())
}

func TestMulInfinityByZeroIsInvalid(t *testing.T) {
	inf := InfinityValue(NoOp, false)
	zero := Zero(NoOp, false)
	z := new(Decimal).Mul(inf, zero)
	assert.True(t, z.IsNaN())
	assert.True(t, z.InvalidOperation())
}

func TestQuoByZero(t *testing.T) {
	five := Parse(NoOp, "5")
	zero := Zero(NoOp, false)

	z := new(Decimal).Quo(five, zero)
	assert.True(t, z.IsInfinity())
	assert.True(t, z.DivisionByZero())
	assert.True(t, z.InvalidOperation())

	z2 := new(Decimal).Quo(zero, zero)
	assert.True(t, z2.IsNaN())
	assert.True(t, z2.DivisionByZero())
	assert.False(t, z2.InvalidOperation(), "0/0 raises division-by-zero only, not invalid-operation")
}

func TestQuoRoundTrip(t *testing.T) {
	h := &Hook{Precision: 20, Rounding: HalfUp, MaxExponent: DefaultMaxExponent, MinExponent: DefaultMinExponent}
	a := Parse(h, "17")
	b := Parse(h, "7")
	q := new(Decimal).Quo(a, b)
	back := new(Decimal).Mul(q, b)
	diff := new(Decimal).Sub(back, a)
	// (a/b)*b must round back to within 10^exponent-of-quotient of a.
	threshold := New(h, 1, q.Exponent())
	absDiff := new(Decimal).Abs(diff)
	assert.True(t, Cmp(absDiff, threshold) <= 0)
}

func TestNaNPropagationRaisesInvalidOperation(t *testing.T) {
	n := NaNValue(NoOp, true)
	five := Parse(NoOp, "5")

	z := new(Decimal).Add(n, five)
	assert.True(t, z.IsNaN())
	assert.True(t, z.Signbit(), "left operand's NaN sign propagates")
	assert.True(t, z.InvalidOperation())

	z2 := new(Decimal).Add(five, n)
	assert.True(t, z2.IsNaN())
	assert.True(t, z2.Signbit(), "right operand's NaN sign propagates when left isn't NaN")
	assert.True(t, z2.InvalidOperation())
}

func TestThrowHookPanicsOnInvalidOperation(t *testing.T) {
	posInf := InfinityValue(Throw, false)
	negInf := InfinityValue(Throw, true)

	err := Try(func() {
		new(Decimal).Add(posInf, negInf)
	})
	require.Error(t, err)
	_, ok := err.(*InvalidOperationError)
	assert.True(t, ok)
}

func TestIncDec(t *testing.T) {
	z := New(NoOp, 5, 0)
	z.Inc()
	assert.Equal(t, "6", z.String())
	z.Dec()
	z.Dec()
	assert.Equal(t, "4", z.String())
}
