package decimal

import "github.com/JackStouffer/stdxdecimal/internal/bignat"

// Because "comparisons with NaN yield NaN" cannot fit a three-valued
// <0/0/>0 API, this package imposes a total order instead:
//
//	-Infinity < -NaN < NaN < every finite number < +Infinity
//
// rank assigns each of those five bands an integer; finite Decimals are
// then ordered within band 3 by numeric value.
func rank(d *Decimal) int {
	switch {
	case d.kind == kindInfinity && d.sign == signNegative:
		return 0
	case d.kind == kindNaN && d.sign == signNegative:
		return 1
	case d.kind == kindNaN:
		return 2
	case d.kind == kindFinite:
		return 3
	default: // +Infinity
		return 4
	}
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y
// under the total order described above.
func Cmp(x, y *Decimal) int {
	rx, ry := rank(x), rank(y)
	if rx != ry {
		if rx < ry {
			return -1
		}
		return 1
	}
	if rx != 3 {
		// Same non-finite band: -Inf == -Inf, -NaN == -NaN, NaN == NaN,
		// +Inf == +Inf.
		return 0
	}
	return cmpFinite(x, y)
}

// cmpFinite compares two finite Decimals by computing x - y without a
// final rounding pass and inspecting its sign.
func cmpFinite(x, y *Decimal) int {
	xv, yv := *x, *y

	sx, sy := xv.sign, yv.sign
	xZero, yZero := xv.coeff.IsZero(), yv.coeff.IsZero()
	if xZero {
		sx = signPositive
	}
	if yZero {
		sy = signPositive
	}
	if sx != sy {
		if sx == signNegative {
			return -1
		}
		return 1
	}

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

	c := bignat.Cmp(xc, yc)
	if sx == signNegative {
		c = -c
	}
	return c
}

// Equal reports whether x and y compare equal under the total order
// described above (so 1 == 1.00, and +0 == -0 numerically despite
// differing sign bits).
func Equal(x, y *Decimal) bool { return Cmp(x, y) == 0 }

// Less reports whether x sorts before y under the total order described
// above.
func Less(x, y *Decimal) bool { return Cmp(x, y) < 0 }
