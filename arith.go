package decimal

import "github.com/JackStouffer/stdxdecimal/internal/bignat"

// resultHook returns the Hook the result of an operation on x (and y)
// should carry: always the left operand's, as documented on Hook -- the
// right operand's coefficient is reinterpreted at
// the left's precision by the final round() pass, without any special
// casing here.
func resultHook(x *Decimal) *Hook { return x.hookOrDefault() }

// naNResult reports whether either operand is NaN and, if so, sets z to
// the propagated NaN (the left operand's NaN-ness, sign included, if x is
// NaN, else the right's) and raises InvalidOperation, then returns true.
// Only one NaN kind is modeled, so every NaN touched by an operation is
// treated as if it were signalling.
func naNResult(z *Decimal, x, y *Decimal, h *Hook) bool {
	if x.kind != kindNaN && y.kind != kindNaN {
		return false
	}
	sign := y.sign
	if x.kind == kindNaN {
		sign = x.sign
	}
	*z = Decimal{hook: h, kind: kindNaN, sign: sign}
	z.signal(h, InvalidOperation)
	return true
}

// Add sets z to x+y and returns z.
func (z *Decimal) Add(x, y *Decimal) *Decimal {
	h := resultHook(x)
	if naNResult(z, x, y, h) {
		return z
	}

	xv, yv := *x, *y

	if xv.kind == kindInfinity && yv.kind == kindInfinity {
		if xv.sign == yv.sign {
			*z = Decimal{hook: h, kind: kindInfinity, sign: xv.sign}
			return z
		}
		*z = Decimal{hook: h, kind: kindNaN}
		return z.signal(h, InvalidOperation)
	}
	if xv.kind == kindInfinity {
		*z = Decimal{hook: h, kind: kindInfinity, sign: xv.sign}
		return z
	}
	if yv.kind == kindInfinity {
		*z = Decimal{hook: h, kind: kindInfinity, sign: yv.sign}
		return z
	}

	// Both finite: align to the smaller exponent.
	e := xv.exp
	if yv.exp < e {
		e = yv.exp
	}
	xc := xv.coeff
	if xv.exp > e {
		xc = bignat.MulPow10(xc, int(xv.exp-e))
	}
	yc := yv.coeff
	if yv.exp > e {
		yc = bignat.MulPow10(yc, int(yv.exp-e))
	}

	var coeff bignat.Nat
	var sign uint8
	if xv.sign == yv.sign {
		coeff = bignat.Add(xc, yc)
		sign = xv.sign
	} else {
		switch bignat.Cmp(xc, yc) {
		case 1:
			coeff = bignat.Sub(xc, yc)
			sign = xv.sign
		case -1:
			coeff = bignat.Sub(yc, xc)
			sign = yv.sign
		default:
			coeff = bignat.Zero
			if h.Rounding == Floor {
				sign = signNegative
			} else {
				sign = signPositive
			}
		}
	}

	*z = Decimal{hook: h, kind: kindFinite, sign: sign, coeff: coeff, exp: e}
	return z.round()
}

// Sub sets z to x-y and returns z. Subtraction is addition with y's sign
// flipped (zeros included); a NaN y is propagated with its own sign.
func (z *Decimal) Sub(x, y *Decimal) *Decimal {
	negY := &Decimal{}
	negY.Set(y)
	if negY.kind != kindNaN {
		negY.sign ^= signNegative
	}
	return z.Add(x, negY)
}

// Mul sets z to x*y and returns z.
func (z *Decimal) Mul(x, y *Decimal) *Decimal {
	h := resultHook(x)
	if naNResult(z, x, y, h) {
		return z
	}

	xv, yv := *x, *y
	xInf := xv.kind == kindInfinity
	yInf := yv.kind == kindInfinity

	if xInf || yInf {
		xZero := xv.kind == kindFinite && xv.coeff.IsZero()
		yZero := yv.kind == kindFinite && yv.coeff.IsZero()
		if xZero || yZero {
			*z = Decimal{hook: h, kind: kindNaN}
			return z.signal(h, InvalidOperation)
		}
		*z = Decimal{hook: h, kind: kindInfinity, sign: xv.sign ^ yv.sign}
		return z
	}

	sign := xv.sign ^ yv.sign
	coeff := bignat.Mul(xv.coeff, yv.coeff)
	exp := xv.exp + yv.exp
	*z = Decimal{hook: h, kind: kindFinite, sign: sign, coeff: coeff, exp: exp}
	return z.round()
}

// Quo sets z to x/y and returns z.
func (z *Decimal) Quo(x, y *Decimal) *Decimal {
	h := resultHook(x)
	if naNResult(z, x, y, h) {
		return z
	}

	xv, yv := *x, *y

	if xv.kind == kindInfinity && yv.kind == kindInfinity {
		*z = Decimal{hook: h, kind: kindNaN}
		return z.signal(h, InvalidOperation)
	}
	if xv.kind == kindInfinity {
		*z = Decimal{hook: h, kind: kindInfinity, sign: xv.sign ^ yv.sign}
		return z
	}
	if yv.kind == kindInfinity {
		*z = Decimal{hook: h, kind: kindFinite, sign: xv.sign ^ yv.sign, coeff: bignat.Zero}
		return z.round()
	}

	sign := xv.sign ^ yv.sign
	yZero := yv.coeff.IsZero()
	xZero := xv.coeff.IsZero()

	if yZero {
		if xZero {
			*z = Decimal{hook: h, kind: kindNaN}
			return z.signal(h, DivisionByZero)
		}
		*z = Decimal{hook: h, kind: kindInfinity, sign: sign}
		return z.signal(h, DivisionByZero|InvalidOperation)
	}
	if xZero {
		*z = Decimal{hook: h, kind: kindFinite, sign: sign, coeff: bignat.Zero, exp: xv.exp - yv.exp}
		return z.round()
	}

	coeff, exp := longDivide(h, xv.coeff, xv.exp, yv.coeff, yv.exp)
	*z = Decimal{hook: h, kind: kindFinite, sign: sign, coeff: coeff, exp: exp}
	return z.round()
}

// longDivide implements long division: normalize dividend and divisor to
// within a factor of ten of each other, then build the quotient one
// decimal digit at a time by repeated subtraction, stopping either on an
// exact result or once the quotient has accumulated P+1 digits (enough
// for the final rounding pass to decide the last digit).
func longDivide(h *Hook, xCoeff bignat.Nat, xExp int32, yCoeff bignat.Nat, yExp int32) (coeff bignat.Nat, exp int32) {
	dividend := xCoeff
	divisor := yCoeff
	adjust := 0

	for bignat.Cmp(dividend, divisor) < 0 {
		dividend = bignat.MulPow10(dividend, 1)
		adjust++
	}
	divisorTimesTen := bignat.MulPow10(divisor, 1)
	for bignat.Cmp(dividend, divisorTimesTen) >= 0 {
		divisor = divisorTimesTen
		divisorTimesTen = bignat.MulPow10(divisor, 1)
		adjust--
	}

	q := bignat.Zero
	prec := int(h.Precision)
	for {
		for bignat.Cmp(divisor, dividend) <= 0 {
			dividend = bignat.Sub(dividend, divisor)
			q = q.Inc()
		}
		if dividend.IsZero() && adjust >= 0 {
			break
		}
		if q.Digits() == prec+1 {
			break
		}
		q = bignat.MulPow10(q, 1)
		dividend = bignat.MulPow10(dividend, 1)
		adjust++
	}

	exp = xExp - (yExp + int32(adjust))
	return q, exp
}
