package decimal

import "github.com/JackStouffer/stdxdecimal/internal/bignat"

// round reduces z's coefficient to at most z's Hook's precision: it sets
// Rounded unconditionally when any digit was discarded, Inexact when a
// discarded digit was non-zero, fires onInexact before onRounded (inexact
// takes precedence in callback ordering), and bumps z's exponent by the
// number of digits discarded. It then performs the lightweight
// exponent-bound bookkeeping below (Clamped/Overflow/Underflow/Subnormal
// are flag-only in this version; no value is altered).
func (z *Decimal) round() *Decimal {
	if z.kind != kindFinite {
		return z
	}
	h := z.hookOrDefault()
	z.roundTo(h, int(h.Precision))
	z.checkExponentBounds(h)
	return z
}

// roundTo reduces z's coefficient to at most prec significant digits under
// h's rounding mode, independent of h.Precision. Its only caller is round,
// which passes h.Precision; the division loop hands round a quotient of up
// to P+1 digits.
func (z *Decimal) roundTo(h *Hook, prec int) {
	d := z.coeff.Digits()
	if d <= prec || prec <= 0 {
		return
	}
	k := d - prec
	keep, inc, inexact := applyRoundingMode(h.Rounding, z.coeff, k, z.sign == signNegative)
	z.coeff = keep
	z.exp += int32(k)

	if inc {
		kept := z.coeff.Inc()
		if kept.Digits() > prec {
			// Carry overflowed into an extra digit (e.g. 999 -> 1000); the
			// newly-exposed low digit is always an exact zero.
			kept, _, _, _ = bignat.Split(kept, 1)
			z.exp++
		}
		z.coeff = kept
	}

	cond := Rounded
	if inexact {
		cond |= Inexact
	}
	h.raise(z, cond)
}

// applyRoundingMode discards the low k decimal digits of c under mode,
// returning the kept coefficient, whether to increment it by one (before
// any carry-overflow correction), and whether any discarded digit was
// non-zero (the Inexact condition).
func applyRoundingMode(mode RoundingMode, c bignat.Nat, k int, negative bool) (keep bignat.Nat, increment, inexact bool) {
	keep, lead, restNonZero, anyNonZero := bignat.Split(c, k)
	inexact = anyNonZero

	switch mode {
	case Down:
		return keep, false, inexact
	case Up:
		return keep, anyNonZero, inexact
	case Ceiling:
		return keep, anyNonZero && !negative, inexact
	case Floor:
		return keep, anyNonZero && negative, inexact
	case HalfUp:
		return keep, lead >= 5, inexact
	case HalfDown:
		return keep, lead > 5 || (lead == 5 && restNonZero), inexact
	case HalfEven:
		if lead > 5 || (lead == 5 && restNonZero) {
			return keep, true, inexact
		}
		if lead == 5 && !restNonZero {
			return keep, keep.IsOdd(), inexact
		}
		return keep, false, inexact
	case ZeroFiveUp:
		last := keep.LastDigit()
		if (last == 0 || last == 5) && anyNonZero {
			return keep, true, inexact
		}
		return keep, false, inexact
	default:
		return keep, false, inexact
	}
}

// checkExponentBounds records, but does not act on, out-of-range
// exponents: Overflow above MaxExponent, Underflow/Subnormal below
// MinExponent. The comparison is against z's raw exponent field, not an
// adjusted (coefficient-length-shifted) exponent, so that it agrees with
// MaxValue/MinValue, which place a P-digit coefficient at exactly
// exp == MaxExponent/MinExponent and must not themselves read as
// out-of-range.
func (z *Decimal) checkExponentBounds(h *Hook) {
	if z.coeff.IsZero() {
		return
	}
	if int64(z.exp) > int64(h.MaxExponent) {
		h.raise(z, Overflow|Inexact|Rounded)
		return
	}
	if int64(z.exp) < int64(h.MinExponent) {
		h.raise(z, Subnormal)
		if z.flags&Inexact != 0 {
			h.raise(z, Underflow)
		}
	}
}
