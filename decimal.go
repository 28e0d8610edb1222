// Package decimal implements an exact base-10 arithmetic type suitable for
// financial and accounting work, where binary floating point is
// unacceptable. A Decimal represents a number of the form
//
//	(-1)^sign * coefficient * 10^exponent
//
// together with the three General Decimal Arithmetic special values:
// signed zero, signed infinity, and NaN.
//
// Every Decimal is parameterized by a Hook, a policy bundle fixing the
// precision, rounding mode, exponent bounds, and reaction to each of the
// eight exceptional conditions (Clamped, DivisionByZero, Inexact,
// InvalidOperation, Overflow, Rounded, Subnormal, Underflow). Four prebuilt
// Hooks cover the common cases: NoOp (flags only), Abort (panics), Throw
// (panics with a typed error, recoverable via Try), and HighPrecision
// (Abort semantics at 64 digits).
//
// Arithmetic methods follow math/big's receiver convention: z.Add(x, y)
// sets z to x+y and returns z, so operands may alias the receiver. Every
// result carries the left operand's Hook; see Hook for what happens when
// operands disagree.
package decimal

import (
	"github.com/JackStouffer/stdxdecimal/internal/bignat"
)

// kind distinguishes the three General Decimal Arithmetic forms a Decimal
// may take. Modeling this as its own small enum (rather than parallel
// isNaN/isInf booleans) makes "NaN and Infinity at once" unrepresentable.
type kind uint8

const (
	kindFinite kind = iota
	kindInfinity
	kindNaN
)

// Decimal is an exact base-10 number: sign, kind, coefficient, exponent,
// condition flags, and the Hook that governs it. The zero value is the
// finite Decimal +0 under a nil Hook (equivalent to NoOp); most callers
// should construct Decimals via New or Parse instead of a bare literal.
type Decimal struct {
	hook     *Hook
	coeff    bignat.Nat // significand; meaningless unless kind == kindFinite
	exp      int32      // meaningless unless kind == kindFinite
	sign     uint8      // 0 = positive, 1 = negative
	kind     kind
	flags    Condition
	parseErr error // non-nil only immediately after a failed SetString/Parse
}

const (
	signPositive uint8 = 0
	signNegative uint8 = 1
)

// hookOrDefault returns d's Hook, falling back to NoOp if none was set --
// so a zero-value Decimal behaves sanely instead of panicking on nil
// dereference.
func (d *Decimal) hookOrDefault() *Hook {
	if d.hook == nil {
		return NoOp
	}
	return d.hook
}

// Hook returns d's active policy.
func (d *Decimal) Hook() *Hook { return d.hookOrDefault() }

// SetHook changes d's Hook and returns d. It does not re-round d's existing
// coefficient; callers that shrink precision should follow with an
// operation (e.g. z.Add(z, zero)) to force rounding under the new Hook.
func (d *Decimal) SetHook(h *Hook) *Decimal {
	d.hook = h
	return d
}

// New returns a finite Decimal equal to coefficient * 10^exponent under
// hook (NoOp if hook is nil), rounded to hook's precision.
func New(hook *Hook, coefficient int64, exponent int32) *Decimal {
	d := &Decimal{hook: hook, kind: kindFinite, exp: exponent}
	var mag uint64
	if coefficient < 0 {
		d.sign = signNegative
		// Negating via unsigned arithmetic avoids overflowing back to
		// math.MinInt64 when coefficient == math.MinInt64, whose positive
		// magnitude doesn't fit an int64.
		mag = -uint64(coefficient)
	} else {
		mag = uint64(coefficient)
	}
	d.coeff = bignat.FromUint64(mag)
	d.round()
	return d
}

// NewFromUint64 returns a finite, non-negative Decimal equal to
// coefficient * 10^exponent.
func NewFromUint64(hook *Hook, coefficient uint64, exponent int32) *Decimal {
	d := &Decimal{hook: hook, kind: kindFinite, exp: exponent, coeff: bignat.FromUint64(coefficient)}
	d.round()
	return d
}

// NaNValue returns a NaN Decimal with the given sign (false = quiet
// positive, true = negative). The spec models only one NaN kind; sign is
// carried but otherwise has no numeric meaning.
func NaNValue(hook *Hook, negative bool) *Decimal {
	d := &Decimal{hook: hook, kind: kindNaN}
	if negative {
		d.sign = signNegative
	}
	return d
}

// InfinityValue returns a signed infinity.
func InfinityValue(hook *Hook, negative bool) *Decimal {
	d := &Decimal{hook: hook, kind: kindInfinity}
	if negative {
		d.sign = signNegative
	}
	return d
}

// MaxValue returns (10^P - 1) * 10^MaxExponent, the largest finite value
// representable under hook.
func MaxValue(hook *Hook) *Decimal {
	h := hook
	if h == nil {
		h = NoOp
	}
	coeff := bignat.MulPow10(bignat.FromUint64(1), int(h.Precision))
	coeff = bignat.Sub(coeff, bignat.FromUint64(1))
	return &Decimal{hook: hook, kind: kindFinite, coeff: coeff, exp: h.MaxExponent}
}

// MinValue returns -1 * 10^MinExponent, the smallest-magnitude negative
// value representable under hook.
func MinValue(hook *Hook) *Decimal {
	h := hook
	if h == nil {
		h = NoOp
	}
	return &Decimal{hook: hook, kind: kindFinite, sign: signNegative, coeff: bignat.FromUint64(1), exp: h.MinExponent}
}

// Zero returns signed zero.
func Zero(hook *Hook, negative bool) *Decimal {
	d := &Decimal{hook: hook, kind: kindFinite, coeff: bignat.Zero}
	if negative {
		d.sign = signNegative
	}
	return d
}

// IsNaN reports whether d is NaN.
func (d *Decimal) IsNaN() bool { return d.kind == kindNaN }

// IsInfinity reports whether d is positive or negative infinity.
func (d *Decimal) IsInfinity() bool { return d.kind == kindInfinity }

// IsFinite reports whether d is neither infinite nor NaN.
func (d *Decimal) IsFinite() bool { return d.kind == kindFinite }

// IsZero reports whether d is a finite zero (either sign).
func (d *Decimal) IsZero() bool { return d.kind == kindFinite && d.coeff.IsZero() }

// Signbit reports whether d's sign bit is set (true for -0, negative
// finite values, -Inf, and a "negative" NaN).
func (d *Decimal) Signbit() bool { return d.sign == signNegative }

// Sign returns -1 if d is negative, 0 if d is a finite zero, +1 if d is
// positive. For NaN it returns -1 or +1 according to the sign bit, the
// same sign Signbit reports.
func (d *Decimal) Sign() int {
	if d.kind == kindFinite && d.coeff.IsZero() {
		return 0
	}
	if d.sign == signNegative {
		return -1
	}
	return 1
}

// NumDigits returns the number of significant digits in d's coefficient.
// It is 1 for a finite zero and 0 for non-finite values.
func (d *Decimal) NumDigits() int {
	if d.kind != kindFinite {
		return 0
	}
	return d.coeff.Digits()
}

// Exponent returns d's exponent. It is 0 for non-finite values.
func (d *Decimal) Exponent() int32 {
	if d.kind != kindFinite {
		return 0
	}
	return d.exp
}

// Flags returns the full set of condition flags accumulated on d by the
// operation that produced it.
func (d *Decimal) Flags() Condition { return d.flags }

// ResetFlags clears every condition flag on d and returns d.
func (d *Decimal) ResetFlags() *Decimal {
	d.flags = 0
	return d
}

// Clamped reports whether the Clamped condition is set.
func (d *Decimal) Clamped() bool { return d.flags&Clamped != 0 }

// DivisionByZero reports whether the DivisionByZero condition is set.
func (d *Decimal) DivisionByZero() bool { return d.flags&DivisionByZero != 0 }

// Inexact reports whether the Inexact condition is set.
func (d *Decimal) Inexact() bool { return d.flags&Inexact != 0 }

// InvalidOperation reports whether the InvalidOperation condition is set.
func (d *Decimal) InvalidOperation() bool { return d.flags&InvalidOperation != 0 }

// Overflow reports whether the Overflow condition is set.
func (d *Decimal) Overflow() bool { return d.flags&Overflow != 0 }

// Rounded reports whether the Rounded condition is set.
func (d *Decimal) Rounded() bool { return d.flags&Rounded != 0 }

// Subnormal reports whether the Subnormal condition is set.
func (d *Decimal) Subnormal() bool { return d.flags&Subnormal != 0 }

// Underflow reports whether the Underflow condition is set.
func (d *Decimal) Underflow() bool { return d.flags&Underflow != 0 }

// ParseError returns the cause of the most recent failed SetString/Parse
// on d, or nil if d's value wasn't produced by a failed parse. It is
// cleared by any successful SetString/Parse.
func (d *Decimal) ParseError() error { return d.parseErr }

// Set sets z to a copy of x (sharing no state) and returns z. Set does not
// change z's Hook.
func (z *Decimal) Set(x *Decimal) *Decimal {
	if z == x {
		return z
	}
	hook := z.hook
	*z = *x
	z.hook = hook
	return z
}

// Dup returns a new, independent mutable copy of d, preserving its flags
// and Hook.
func (d *Decimal) Dup() *Decimal {
	cp := *d
	return &cp
}

// IDup returns an independent value copy of d for read-only use, preserving
// its flags and Hook. Unlike Dup, callers are expected to treat the result
// as immutable (Go cannot enforce this, but idup historically denotes
// "copy you promise not to mutate").
func (d *Decimal) IDup() Decimal { return *d }

func (z *Decimal) signal(h *Hook, cond Condition) *Decimal {
	h.raise(z, cond)
	return z
}
