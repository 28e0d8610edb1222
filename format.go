package decimal

import (
	"fmt"
	"strings"
)

// String returns d's canonical decimal string: non-exponential, with no
// trailing-zero trimming beyond what the coefficient itself carries.
// Scientific/engineering notation is an explicit non-goal.
func (d *Decimal) String() string {
	if d.kind != kindFinite {
		s := ""
		if d.sign == signNegative {
			s = "-"
		}
		if d.kind == kindNaN {
			return s + "NaN"
		}
		return s + "Infinity"
	}

	sign := ""
	if d.sign == signNegative {
		sign = "-"
	}

	s := d.coeff.String()
	digits := -int(d.exp)

	switch {
	case digits == 0:
		return sign + s
	case digits > 0 && len(s) > digits:
		return sign + s[:len(s)-digits] + "." + s[len(s)-digits:]
	case digits > 0 && len(s) == digits:
		return sign + "0." + s
	case digits > 0:
		return sign + "0." + strings.Repeat("0", digits-len(s)) + s
	default: // digits < 0
		return sign + s + strings.Repeat("0", -digits)
	}
}

// Format implements fmt.Formatter. %s, %v, %d, and %q all print d's
// canonical decimal string; %q additionally double-quotes it. Scientific
// verbs (%e/%E/%f/%g) are not supported, since this package's canonical
// form is explicitly non-exponential and has no exponential form to
// produce.
func (d *Decimal) Format(s fmt.State, verb rune) {
	switch verb {
	case 's', 'v', 'd':
		fmt.Fprint(s, d.String())
	case 'q':
		fmt.Fprintf(s, "%q", d.String())
	default:
		fmt.Fprintf(s, "%%!%c(*decimal.Decimal=%s)", verb, d.String())
	}
}

var _ fmt.Stringer = (*Decimal)(nil)
var _ fmt.Formatter = (*Decimal)(nil)

// MarshalText implements encoding.TextMarshaler.
func (d *Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A malformed payload
// does not produce an error: per Parse's contract it sets d to NaN with
// InvalidOperation raised (consulting d's already-set Hook, if any) and
// UnmarshalText returns nil, matching the package-wide rule that invalid
// parses never raise from the core.
func (d *Decimal) UnmarshalText(text []byte) error {
	d.setString(string(text))
	return nil
}
