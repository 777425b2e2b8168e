package slotf

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// verbCode identifies the conversion requested by a specifier's type
// character. verbNone keeps the value's natural form.
type verbCode int

const (
	verbNone verbCode = iota
	verbOctal
	verbHexLower
	verbHexUpper
	verbBinary
	verbSciLower
	verbSciUpper
	verbOrdinalLower
	verbOrdinalUpper
	verbDebug
)

// verbOf maps a specifier type character to its verb.
func verbOf(c byte) (verbCode, bool) {
	switch c {
	case 'o':
		return verbOctal, true
	case 'x':
		return verbHexLower, true
	case 'X':
		return verbHexUpper, true
	case 'b':
		return verbBinary, true
	case 'e':
		return verbSciLower, true
	case 'E':
		return verbSciUpper, true
	case 'n':
		return verbOrdinalLower, true
	case 'N':
		return verbOrdinalUpper, true
	case '?':
		return verbDebug, true
	}
	return verbNone, false
}

// ordinal reports whether the verb is one of the ordinal conversions.
func (v verbCode) ordinal() bool { return v == verbOrdinalLower || v == verbOrdinalUpper }

// scientific reports whether the verb is one of the scientific conversions.
func (v verbCode) scientific() bool { return v == verbSciLower || v == verbSciUpper }

// convert produces the base textual form of a value under the specifier's
// verb. Radix, scientific, and ordinal conversions apply to numeric kinds
// only; other kinds fall back to their natural form. The debug verb applies
// to every kind.
func convert(v value, sp specifier, p *Palette) string {
	switch sp.verb {
	case verbOctal, verbHexLower, verbHexUpper, verbBinary:
		if !v.numeric() {
			return v.natural()
		}
		return radix(v, sp.verb)
	case verbSciLower, verbSciUpper:
		if !v.numeric() {
			return v.natural()
		}
		return scientific(v.float(), sp.verb == verbSciUpper, sp.precision)
	case verbOrdinalLower, verbOrdinalUpper:
		if !v.numeric() {
			return v.natural()
		}
		return ordinal(v, sp.verb == verbOrdinalUpper)
	case verbDebug:
		return inspect(v.raw, -1, sp.pretty, p)
	}
	return v.natural()
}

// radix renders the value's integer portion in the verb's base. The digits
// carry a leading minus for negative values and no radix prefix; the pretty
// flag adds the prefix during post-processing. Machine integers go through
// strconv; big integers, decimals, and float magnitudes go through big.Int.
func radix(v value, verb verbCode) string {
	var base int
	switch verb {
	case verbOctal:
		base = 8
	case verbBinary:
		base = 2
	default:
		base = 16
	}
	var s string
	switch n := v.raw.(type) {
	case int:
		s = strconv.FormatInt(int64(n), base)
	case int8:
		s = strconv.FormatInt(int64(n), base)
	case int16:
		s = strconv.FormatInt(int64(n), base)
	case int32:
		s = strconv.FormatInt(int64(n), base)
	case int64:
		s = strconv.FormatInt(n, base)
	case uint:
		s = strconv.FormatUint(uint64(n), base)
	case uint8:
		s = strconv.FormatUint(uint64(n), base)
	case uint16:
		s = strconv.FormatUint(uint64(n), base)
	case uint32:
		s = strconv.FormatUint(uint64(n), base)
	case uint64:
		s = strconv.FormatUint(n, base)
	default:
		s = v.integral().Text(base)
	}
	if verb == verbHexUpper {
		s = strings.ToUpper(s)
	}
	return s
}

// scientific renders f in exponent notation. The specifier's precision is
// consumed here as the mantissa digit count; -1 means the shortest form that
// round-trips.
func scientific(f float64, upper bool, precision int) string {
	format := byte('e')
	if upper {
		format = 'E'
	}
	return strconv.FormatFloat(f, format, precision, 64)
}

// ordinal renders the value rounded to the nearest integer with an English
// ordinal suffix: 1st, 2nd, 3rd, 4th, with 11th, 12th, and 13th as the
// teens exception.
func ordinal(v value, upper bool) string {
	var s string
	switch v.kind {
	case kindDecimal:
		s = v.raw.(decimal.Decimal).Round(0).String()
	case kindNumber:
		switch n := v.raw.(type) {
		case float32:
			s = roundedString(float64(n))
		case float64:
			s = roundedString(n)
		default:
			s = v.natural()
		}
	default:
		s = v.natural()
	}
	suffix := ordinalSuffix(s)
	if upper {
		suffix = strings.ToUpper(suffix)
	}
	return s + suffix
}

// roundedString rounds half away from zero and renders without a fraction.
func roundedString(f float64) string {
	s := strconv.FormatFloat(math.Round(f), 'f', -1, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// ordinalSuffix picks the suffix from the final digits of a decimal string.
func ordinalSuffix(s string) string {
	s = strings.TrimPrefix(s, "-")
	if len(s) >= 2 {
		switch s[len(s)-2:] {
		case "11", "12", "13":
			return "th"
		}
	}
	switch s[len(s)-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	}
	return "th"
}
