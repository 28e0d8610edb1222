package decimal

import "github.com/JackStouffer/stdxdecimal/internal/bignat"

// Pos sets z to +x (a copy) and returns z.
func (z *Decimal) Pos(x *Decimal) *Decimal { return z.Set(x) }

// Neg sets z to -x and returns z. Negating a finite non-zero value or an
// infinity flips its sign bit; negating a zero or NaN preserves the sign
// bit.
func (z *Decimal) Neg(x *Decimal) *Decimal {
	z.Set(x)
	switch {
	case z.kind == kindNaN:
		// sign preserved
	case z.kind == kindFinite && z.coeff.IsZero():
		// sign preserved: negating +0 stays +0, negating -0 stays -0
	default:
		z.sign ^= signNegative
	}
	return z
}

// Abs sets z to |x| and returns z.
func (z *Decimal) Abs(x *Decimal) *Decimal {
	z.Set(x)
	if z.kind == kindNaN {
		return z
	}
	z.sign = signPositive
	return z
}

var decimalOne = &Decimal{kind: kindFinite, coeff: bignat.FromUint64(1)}

// Inc adds 1 to z in place ("++x") and returns z.
func (z *Decimal) Inc() *Decimal {
	one := decimalOne.Dup()
	one.hook = z.hook
	return z.Add(z, one)
}

// Dec subtracts 1 from z in place ("--x") and returns z.
func (z *Decimal) Dec() *Decimal {
	one := decimalOne.Dup()
	one.hook = z.hook
	return z.Sub(z, one)
}
