package decimal

import (
	"math"
	"math/big"
	"strconv"

	"github.com/JackStouffer/stdxdecimal/internal/bignat"
)

// NewFromFloat constructs a Decimal from a float64. This path is
// documented as lossy: a binary float is reduced to a decimal coefficient
// by repeatedly multiplying by 10 until the fractional part vanishes,
// bounded at 17 iterations (a double's decimal precision) since most
// binary fractions have no finite decimal expansion and an unbounded loop
// would never terminate.
func NewFromFloat(hook *Hook, f float64) *Decimal {
	switch {
	case math.IsNaN(f):
		return NaNValue(hook, false)
	case math.IsInf(f, 0):
		return InfinityValue(hook, f < 0)
	}

	sign := signPositive
	if math.Signbit(f) {
		sign = signNegative
		f = -f
	}

	const maxShift = 17
	v := f
	exp := 0
	for i := 0; i < maxShift && v != math.Trunc(v); i++ {
		v *= 10
		exp--
	}

	bi, _ := big.NewFloat(v).Int(nil)
	d := &Decimal{hook: hook, kind: kindFinite, sign: sign, coeff: bignat.FromBigInt(bi), exp: int32(exp)}
	return d.round()
}

// Float64 returns d as a float64. Non-finite values map to their IEEE 754
// binary counterparts (NaN, +Inf, -Inf); finite values round-trip through
// their canonical string, which is exact for any value that fits a
// float64's decimal precision.
func (d *Decimal) Float64() float64 {
	switch d.kind {
	case kindNaN:
		return math.NaN()
	case kindInfinity:
		if d.sign == signNegative {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Bool reports d's truth value: true iff |d| >= 1 or d is NaN/infinite.
func (d *Decimal) Bool() bool {
	if d.kind != kindFinite {
		return true
	}
	if d.coeff.IsZero() {
		return false
	}
	if d.exp >= 0 {
		return true
	}
	threshold := bignat.MulPow10(bignat.FromUint64(1), int(-d.exp))
	return bignat.Cmp(d.coeff, threshold) >= 0
}

// bigIntValue returns d's exact integer value and whether the conversion
// was lossless (no non-zero fractional digits were discarded). It is
// undefined for non-finite d.
func (d *Decimal) bigIntValue() (*big.Int, bool) {
	c := d.coeff.BigInt()
	switch {
	case d.exp > 0:
		c = new(big.Int).Mul(c, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.exp)), nil))
	case d.exp < 0:
		div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.exp)), nil)
		q, r := new(big.Int).QuoRem(c, div, new(big.Int))
		if r.Sign() != 0 {
			return nil, false
		}
		c = q
	}
	if d.sign == signNegative {
		c.Neg(c)
	}
	return c, true
}

// flag records cond in d's own flags without invoking the Hook's
// callback. Int64/Uint64 already return the exceptional condition as a
// typed error, so routing it back through h.raise would hand an
// Abort/Throw Hook's callback a disconnected, zero-value stand-in
// Decimal (not d itself) and panic before the function could return its
// documented (value, error) result.
func (d *Decimal) flag(cond Condition) { d.flags |= cond }

// Int64 converts d to an int64. This is an explicit,
// rounding-mode-independent conversion: it raises InvalidOperation
// (rather than silently truncating) if d is non-finite or carries a
// non-zero fractional part, and raises Overflow if the exact integer
// value doesn't fit an int64. Unlike arithmetic methods, this never
// invokes the Hook's callbacks -- Int64 always returns its error rather
// than panicking, regardless of d's Hook.
func (d *Decimal) Int64() (int64, error) {
	if d.kind != kindFinite {
		d.flag(InvalidOperation)
		return 0, &InvalidOperationError{Result: d.String()}
	}
	bi, exact := d.bigIntValue()
	if !exact {
		d.flag(InvalidOperation)
		return 0, &InvalidOperationError{Result: d.String()}
	}
	if !bi.IsInt64() {
		d.flag(Overflow)
		return 0, &OverflowError{Result: d.String()}
	}
	return bi.Int64(), nil
}

// Uint64 is Int64 for an unsigned result; a negative exact value raises
// Overflow.
func (d *Decimal) Uint64() (uint64, error) {
	if d.kind != kindFinite {
		d.flag(InvalidOperation)
		return 0, &InvalidOperationError{Result: d.String()}
	}
	bi, exact := d.bigIntValue()
	if !exact {
		d.flag(InvalidOperation)
		return 0, &InvalidOperationError{Result: d.String()}
	}
	if bi.Sign() < 0 || !bi.IsUint64() {
		d.flag(Overflow)
		return 0, &OverflowError{Result: d.String()}
	}
	return bi.Uint64(), nil
}

// BigInt returns d's value as a *big.Int, truncating any fractional
// digits. It returns 0 if d is non-finite.
func (d *Decimal) BigInt() *big.Int {
	if d.kind != kindFinite {
		return new(big.Int)
	}
	c := d.coeff.BigInt()
	switch {
	case d.exp > 0:
		c.Mul(c, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.exp)), nil))
	case d.exp < 0:
		c.Quo(c, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-d.exp)), nil))
	}
	if d.sign == signNegative {
		c.Neg(c)
	}
	return c
}
