package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JackStouffer/stdxdecimal/internal/bignat"
)

func mustNat(t *testing.T, s string) bignat.Nat {
	t.Helper()
	n, err := bignat.FromDigits(s)
	if err != nil {
		t.Fatalf("bignat.FromDigits(%q): %v", s, err)
	}
	return n
}

func TestApplyRoundingModes(t *testing.T) {
	tests := []struct {
		name     string
		mode     RoundingMode
		coeff    string
		k        int
		negative bool
		wantKeep string
		wantInc  bool
	}{
		{"down-truncates", Down, "12399", 2, false, "123", false},
		{"up-any-nonzero", Up, "12301", 2, false, "123", true},
		{"up-exact", Up, "12300", 2, false, "123", false},
		{"ceiling-positive-rounds-up", Ceiling, "12301", 2, false, "123", true},
		{"ceiling-negative-truncates", Ceiling, "12301", 2, true, "123", false},
		{"floor-negative-rounds-up-magnitude", Floor, "12301", 2, true, "123", true},
		{"floor-positive-truncates", Floor, "12301", 2, false, "123", false},
		{"half-up-below-half", HalfUp, "12349", 2, false, "123", false},
		{"half-up-at-half", HalfUp, "12350", 2, false, "123", true},
		{"half-down-at-half", HalfDown, "12350", 2, false, "123", false},
		{"half-down-above-half", HalfDown, "12351", 2, false, "123", true},
		{"half-even-tie-even-stays", HalfEven, "12250", 2, false, "122", false},
		{"half-even-tie-odd-rounds-up", HalfEven, "12350", 2, false, "123", true},
		{"zero-five-up-fires", ZeroFiveUp, "12501", 2, false, "125", true},
		{"zero-five-up-skips-other-digits", ZeroFiveUp, "12401", 2, false, "124", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNat(t, tt.coeff)
			keep, inc, _ := applyRoundingMode(tt.mode, c, tt.k, tt.negative)
			assert.Equal(t, tt.wantKeep, keep.String())
			assert.Equal(t, tt.wantInc, inc)
		})
	}
}

func TestRoundCarryOverflow(t *testing.T) {
	h := &Hook{Precision: 3, Rounding: HalfUp, MaxExponent: DefaultMaxExponent, MinExponent: DefaultMinExponent}
	z := New(h, 999, 0)
	z.round()
	assert.Equal(t, "999", z.String())

	// 9995 at P=3 rounds the last digit away (HalfUp on a trailing 5 bumps
	// 999 to 1000), which carries into a 4th digit and must be re-split
	// down to 3 digits with the exponent bumped again.
	z2 := &Decimal{hook: h, kind: kindFinite, coeff: mustNat(t, "9995"), exp: 0}
	z2.round()
	assert.Equal(t, "10000", z2.String())
	assert.True(t, z2.Rounded())
	assert.True(t, z2.Inexact())
}

func TestRoundSetsInexactOnlyWhenLossy(t *testing.T) {
	h := &Hook{Precision: 2, Rounding: HalfUp, MaxExponent: DefaultMaxExponent, MinExponent: DefaultMinExponent}

	exact := &Decimal{hook: h, kind: kindFinite, coeff: mustNat(t, "1200"), exp: 0}
	exact.round()
	assert.True(t, exact.Rounded())
	assert.False(t, exact.Inexact())

	lossy := &Decimal{hook: h, kind: kindFinite, coeff: mustNat(t, "1201"), exp: 0}
	lossy.round()
	assert.True(t, lossy.Rounded())
	assert.True(t, lossy.Inexact())
}

func TestCheckExponentBoundsOverflow(t *testing.T) {
	h := &Hook{Precision: 9, Rounding: HalfUp, MaxExponent: 5, MinExponent: -5}
	z := New(h, 1, 6) // raw exponent 6 > MaxExponent 5
	assert.True(t, z.Overflow())
}

func TestCheckExponentBoundsSubnormal(t *testing.T) {
	h := &Hook{Precision: 9, Rounding: HalfUp, MaxExponent: 5, MinExponent: -5}
	z := New(h, 1, -9) // raw exponent -9 < MinExponent -5
	assert.True(t, z.Subnormal())
}

func TestCheckExponentBoundsMatchesMaxValue(t *testing.T) {
	h := &Hook{Precision: 3, Rounding: HalfUp, MaxExponent: 5, MinExponent: -5}
	max := MaxValue(h)
	assert.False(t, max.Overflow(), "MaxValue itself must not read as out-of-range")

	one := New(h, 1, 0)
	z := new(Decimal).Mul(max, one)
	assert.False(t, z.Overflow(), "multiplying MaxValue by 1 must not spuriously overflow")
	assert.True(t, Equal(z, max))
}
