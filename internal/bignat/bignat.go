// Package bignat implements the arbitrary-precision non-negative integer
// underlying the decimal package's coefficients, with the handful of
// operations a base-10 arithmetic engine needs (add, sub, mul, long
// division, multiply-by-10^n, digit counting, and decimal string
// conversion). It hybridizes a uint64 fast path (valid while the value
// fits in 19 decimal digits, see internal/dec64) with a math/big.Int
// fallback.
package bignat

import (
	"fmt"
	"math/big"

	"github.com/JackStouffer/stdxdecimal/internal/dec64"
)

var bigTen = big.NewInt(10)

// Nat is a non-negative arbitrary-precision integer. The zero value
// represents 0.
type Nat struct {
	compact uint64
	big     *big.Int // non-nil only when the value doesn't fit in compact
}

// FromUint64 returns the Nat representation of u.
func FromUint64(u uint64) Nat { return Nat{compact: u} }

// FromBigInt returns the Nat representation of a non-negative big.Int. The
// caller retains ownership of b; FromBigInt copies it.
func FromBigInt(b *big.Int) Nat {
	if b.IsUint64() {
		return Nat{compact: b.Uint64()}
	}
	return Nat{big: new(big.Int).Set(b)}
}

// FromDigits parses a string of decimal digits (no sign, no radix point)
// into a Nat. An empty string is treated as zero. err is non-nil if s
// contains a non-digit byte or otherwise isn't a valid base-10 literal.
func FromDigits(s string) (n Nat, err error) {
	if s == "" {
		return Nat{}, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Nat{}, fmt.Errorf("bignat: invalid digit %q at position %d in %q", s[i], i, s)
		}
	}
	if len(s) <= 19 {
		var v uint64
		for i := 0; i < len(s); i++ {
			v = v*10 + uint64(s[i]-'0')
		}
		// Every string of at most 19 digits is at most dec64.Max
		// (10^19 - 1), so this check always passes; only longer strings
		// reach big.Int below.
		if len(s) < 19 || v <= dec64.Max {
			return Nat{compact: v}, nil
		}
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, fmt.Errorf("bignat: %q is not a valid base-10 literal", s)
	}
	return FromBigInt(b), nil
}

func (n Nat) isCompact() bool { return n.big == nil }

// BigInt returns a fresh *big.Int with n's value.
func (n Nat) BigInt() *big.Int {
	if n.isCompact() {
		return new(big.Int).SetUint64(n.compact)
	}
	return new(big.Int).Set(n.big)
}

// IsZero reports whether n == 0.
func (n Nat) IsZero() bool {
	if n.isCompact() {
		return n.compact == 0
	}
	return n.big.Sign() == 0
}

// Digits returns the number of decimal digits in n. Digits of zero is 1.
func (n Nat) Digits() int {
	if n.isCompact() {
		return dec64.Digits(n.compact)
	}
	return len(n.big.String())
}

// String returns n's canonical (no leading zeros, "0" for zero) decimal
// digit string.
func (n Nat) String() string {
	if n.isCompact() {
		var buf [20]byte
		i := len(buf)
		v := n.compact
		if v == 0 {
			return "0"
		}
		for v > 0 {
			i--
			buf[i] = byte('0' + v%10)
			v /= 10
		}
		return string(buf[i:])
	}
	return n.big.String()
}

// Cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func Cmp(x, y Nat) int {
	if x.isCompact() && y.isCompact() {
		switch {
		case x.compact < y.compact:
			return -1
		case x.compact > y.compact:
			return 1
		default:
			return 0
		}
	}
	return x.BigInt().Cmp(y.BigInt())
}

// Add returns x+y.
func Add(x, y Nat) Nat {
	if x.isCompact() && y.isCompact() {
		if z, ok := dec64.Add(x.compact, y.compact); ok {
			return Nat{compact: z}
		}
	}
	return FromBigInt(new(big.Int).Add(x.BigInt(), y.BigInt()))
}

// Sub returns x-y. The caller must guarantee x >= y.
func Sub(x, y Nat) Nat {
	if x.isCompact() && y.isCompact() {
		return Nat{compact: x.compact - y.compact}
	}
	return FromBigInt(new(big.Int).Sub(x.BigInt(), y.BigInt()))
}

// Mul returns x*y.
func Mul(x, y Nat) Nat {
	if x.isCompact() && y.isCompact() {
		if z, ok := dec64.Mul(x.compact, y.compact); ok {
			return Nat{compact: z}
		}
	}
	return FromBigInt(new(big.Int).Mul(x.BigInt(), y.BigInt()))
}

// MulPow10 returns x * 10^n, n >= 0.
func MulPow10(x Nat, n int) Nat {
	if n == 0 {
		return x
	}
	if x.isCompact() {
		if z, ok := dec64.Lsh(x.compact, n); ok {
			return Nat{compact: z}
		}
	}
	return FromBigInt(new(big.Int).Mul(x.BigInt(), new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)))
}

// QuoRem returns the quotient and remainder of x/y (truncated division). y
// must be non-zero.
func QuoRem(x, y Nat) (q, r Nat) {
	if x.isCompact() && y.isCompact() {
		return Nat{compact: x.compact / y.compact}, Nat{compact: x.compact % y.compact}
	}
	qb, rb := new(big.Int).QuoRem(x.BigInt(), y.BigInt(), new(big.Int))
	return FromBigInt(qb), FromBigInt(rb)
}

// Split divides x by 10^n (n > 0) and classifies the n discarded
// low-order digits the way the Rounder needs to: keep is floor(x/10^n);
// leadingDigit is the most-significant of the n discarded digits (the
// digit immediately right of the new radix point); restNonZero reports
// whether any of the remaining (less significant) discarded digits are
// non-zero; anyNonZero is leadingDigit != 0 || restNonZero.
func Split(x Nat, n int) (keep Nat, leadingDigit int, restNonZero bool, anyNonZero bool) {
	if n <= 0 {
		return x, 0, false, false
	}
	if x.isCompact() && n < len(dec64.Pow10) {
		q, rem := dec64.Rsh(x.compact, n)
		if rem == 0 {
			return Nat{compact: q}, 0, false, false
		}
		lead := int((rem / dec64.Pow10[n-1]) % 10)
		rest := rem % dec64.Pow10[n-1]
		return Nat{compact: q}, lead, rest != 0, true
	}
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
	qb, rb := new(big.Int).QuoRem(x.BigInt(), p, new(big.Int))
	if rb.Sign() == 0 {
		return FromBigInt(qb), 0, false, false
	}
	shift := new(big.Int).Exp(bigTen, big.NewInt(int64(n-1)), nil)
	lead := new(big.Int).Quo(rb, shift)
	restShift := new(big.Int).Mul(lead, shift)
	rest := new(big.Int).Sub(rb, restShift)
	return FromBigInt(qb), int(lead.Int64() % 10), rest.Sign() != 0, true
}

// LastDigit returns n mod 10.
func (n Nat) LastDigit() int {
	if n.isCompact() {
		return int(n.compact % 10)
	}
	r := new(big.Int).Mod(n.big, bigTen)
	return int(r.Int64())
}

// IsOdd reports whether n's last digit is odd.
func (n Nat) IsOdd() bool { return n.LastDigit()%2 != 0 }

// Inc returns n+1.
func (n Nat) Inc() Nat { return Add(n, Nat{compact: 1}) }

// Zero is the Nat representation of 0.
var Zero = Nat{}
