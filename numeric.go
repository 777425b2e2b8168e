package slotf

import "strings"

// zeroPadActive reports whether the zero-pad flag actually takes effect.
// Zero-padding applies only to numeric values and is inert for the ordinal
// and debug verbs; when it is active, alignment is skipped for the slot.
func zeroPadActive(sp specifier, v value) bool {
	return sp.zeroPad && v.numeric() && !sp.verb.ordinal() && sp.verb != verbDebug
}

// postProcess applies precision shaping, the sign policy, the pretty radix
// prefix, and zero-padding to a converted value, in that order. Non-numeric
// values and debug output pass through untouched.
func postProcess(s string, sp specifier, v value) string {
	if !v.numeric() || sp.verb == verbDebug {
		return s
	}

	// Precision reshapes the fractional digits textually, truncating rather
	// than rounding. It is consumed by scientific conversion and inert for
	// ordinals.
	if sp.precision >= 0 && !sp.verb.scientific() && !sp.verb.ordinal() {
		s = shapePrecision(s, sp.precision)
	}

	// The sign is peeled off so the prefix and padding land between it and
	// the digits.
	digits := s
	var sign string
	switch {
	case strings.HasPrefix(s, "-"):
		sign, digits = "-", s[1:]
	case sp.sign == signPlus:
		sign = "+"
	case sp.sign == signSpace:
		sign = " "
	}

	var prefix string
	if sp.pretty {
		switch sp.verb {
		case verbOctal:
			prefix = "0o"
		case verbHexLower, verbHexUpper:
			prefix = "0x"
		case verbBinary:
			prefix = "0b"
		}
	}

	if zeroPadActive(sp, v) {
		if pad := sp.width - len(sign) - len(prefix) - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
	}

	return sign + prefix + digits
}

// shapePrecision forces the fractional part to exactly prec digits, padding
// with zeros or cutting without rounding. prec 0 drops the decimal point.
func shapePrecision(s string, prec int) string {
	whole, frac, _ := strings.Cut(s, ".")
	if prec == 0 {
		return whole
	}
	if len(frac) > prec {
		frac = frac[:prec]
	} else {
		frac += strings.Repeat("0", prec-len(frac))
	}
	return whole + "." + frac
}
