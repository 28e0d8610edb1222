package decimal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/JackStouffer/stdxdecimal/internal/bignat"
)

// Parse implements the General Decimal Arithmetic to-number grammar: it
// consumes s and returns a Decimal under hook (NoOp if hook is nil).
// Malformed input -- the empty string, a lone sign, two signs, two decimal
// points, two exponent indicators, non-digit characters inside a digit
// run, or trailing junk -- produces a quiet NaN with InvalidOperation
// raised instead of an error return: an invalid parse never raises from
// the core.
func Parse(hook *Hook, s string) *Decimal {
	d := &Decimal{hook: hook}
	d.setString(s)
	return d
}

// ParseRunes is Parse for a rune slice, supporting a "char sequence"
// constructor for streaming input that hasn't been materialized as a
// string.
func ParseRunes(hook *Hook, r []rune) *Decimal {
	return Parse(hook, string(r))
}

// SetString sets z to the value of s (per Parse) and returns z and whether
// the parse was well-formed. On a malformed parse, z is set to NaN with
// InvalidOperation raised and ok is false; the underlying cause is then
// available from z.ParseError.
func (z *Decimal) SetString(s string) (result *Decimal, ok bool) {
	return z.setString(s)
}

func (z *Decimal) setString(s string) (*Decimal, bool) {
	h := z.hookOrDefault()

	sign, k, digits, exp, ok := scanNumeric(s)
	if !ok {
		cause := errors.Wrap(fmt.Errorf("malformed decimal literal %q", s), "Parse")
		*z = Decimal{hook: z.hook, kind: kindNaN, parseErr: cause}
		z.signal(h, InvalidOperation)
		return z, false
	}

	switch k {
	case kindNaN:
		*z = Decimal{hook: z.hook, kind: kindNaN, sign: sign}
		return z, true
	case kindInfinity:
		*z = Decimal{hook: z.hook, kind: kindInfinity, sign: sign}
		return z, true
	default:
		coeff, err := bignat.FromDigits(digits)
		if err != nil {
			cause := errors.Wrap(err, "Parse")
			*z = Decimal{hook: z.hook, kind: kindNaN, parseErr: cause}
			z.signal(h, InvalidOperation)
			return z, false
		}
		*z = Decimal{hook: z.hook, kind: kindFinite, sign: sign, coeff: coeff, exp: exp}
		z.round()
		return z, true
	}
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

// scanNumeric is the grammar implementation proper. It returns the parsed
// sign/kind/coefficient-digits/exponent, or ok == false on any malformed
// input.
func scanNumeric(s string) (sign uint8, k kind, digits string, exp int32, ok bool) {
	if s == "" {
		return 0, 0, "", 0, false
	}

	i := 0
	sign = signPositive
	switch s[0] {
	case '+':
		i++
	case '-':
		sign = signNegative
		i++
	}
	rest := s[i:]
	if rest == "" {
		// A lone sign.
		return 0, 0, "", 0, false
	}

	if len(rest) >= 3 && strings.EqualFold(rest[:3], "nan") {
		payload := rest[3:]
		for j := 0; j < len(payload); j++ {
			if !isDigitByte(payload[j]) {
				return 0, 0, "", 0, false
			}
		}
		return sign, kindNaN, "", 0, true
	}
	if strings.EqualFold(rest, "infinity") || strings.EqualFold(rest, "inf") {
		return sign, kindInfinity, "", 0, true
	}

	j := 0
	intStart := j
	for j < len(rest) && isDigitByte(rest[j]) {
		j++
	}
	intPart := rest[intStart:j]

	fracPart := ""
	if j < len(rest) && rest[j] == '.' {
		j++
		fracStart := j
		for j < len(rest) && isDigitByte(rest[j]) {
			j++
		}
		fracPart = rest[fracStart:j]
	}

	if intPart == "" && fracPart == "" {
		// No digits at all: not a valid decimal-part.
		return 0, 0, "", 0, false
	}

	var expPart int32
	if j < len(rest) && (rest[j] == 'e' || rest[j] == 'E') {
		j++
		expSign := int32(1)
		if j < len(rest) && (rest[j] == '+' || rest[j] == '-') {
			if rest[j] == '-' {
				expSign = -1
			}
			j++
		}
		expDigStart := j
		for j < len(rest) && isDigitByte(rest[j]) {
			j++
		}
		expDigits := rest[expDigStart:j]
		if expDigits == "" {
			return 0, 0, "", 0, false
		}
		v, err := strconv.ParseInt(expDigits, 10, 32)
		if err != nil {
			return 0, 0, "", 0, false
		}
		expPart = int32(v) * expSign
	}

	if j != len(rest) {
		// Trailing junk: a second sign, a second '.', a second e/E, or any
		// other stray character.
		return 0, 0, "", 0, false
	}

	coeffDigits := intPart + fracPart
	if coeffDigits == "" {
		coeffDigits = "0"
	}
	exponent := expPart - int32(len(fracPart))
	return sign, kindFinite, coeffDigits, exponent, true
}
