// Package dec64 provides checked, overflow-aware arithmetic on a uint64
// coefficient. It is the machine-word fast path used by internal/bignat
// before falling back to math/big: a coefficient of up to 19 significant
// digits fits in a uint64, and Add/Mul/Lsh report a result beyond that as
// overflow so that bignat falls back to big.Int.
package dec64

// Max is the largest coefficient representable without overflowing a
// uint64 decimal digit count of 19 (10^19 - 1).
const Max = 9999999999999999999

// Pow10 is a lookup table of powers of ten up to 10^19, matching the set
// of shifts Lsh/Rsh ever need to perform on a 19-digit coefficient.
var Pow10 = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

// Add returns x+y and reports whether the sum fits without overflow.
func Add(x, y uint64) (uint64, bool) {
	if x > Max || Max-x < y {
		return 0, false
	}
	return x + y, true
}

// Sub returns x-y, which the caller must guarantee is non-negative.
func Sub(x, y uint64) uint64 {
	return x - y
}

// Mul returns x*y and reports whether the product fits without overflow.
func Mul(x, y uint64) (uint64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	z := x * y
	if z/y != x {
		return 0, false
	}
	if z > Max {
		return 0, false
	}
	return z, true
}

// Lsh (shift left) returns x * 10^n and reports whether it fit.
func Lsh(x uint64, n int) (uint64, bool) {
	switch {
	case n == 0:
		return x, true
	case n < 0:
		return 0, false
	case n >= len(Pow10):
		return 0, false
	}
	return Mul(x, Pow10[n])
}

// Rsh (shift right) returns x / 10^n, truncating toward zero, along with
// the discarded remainder (the low n digits of x).
func Rsh(x uint64, n int) (q, rem uint64) {
	if n <= 0 {
		return x, 0
	}
	if n >= len(Pow10) {
		return 0, x
	}
	p := Pow10[n]
	return x / p, x % p
}

// Digits returns the number of decimal digits in x. Digits(0) == 1.
func Digits(x uint64) int {
	n := 1
	for x >= 10 {
		x /= 10
		n++
	}
	return n
}
