package wexpr

import (
	"math"
	"strconv"
	"strings"
)

// ============================================================
// Canonical Scalar Formatting
// ============================================================

// canonBool returns the Wolfram boolean literal.
func canonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// canonInt returns the base-10 integer literal.
func canonInt(v *Value) string {
	if v.bigVal != nil {
		return v.bigVal.String()
	}
	return strconv.FormatInt(v.intVal, 10)
}

// canonReal formats a real number. Integral values become plain integer
// literals when keepIntegers is set; everything else goes through
// scientific notation with prec fractional digits.
// -0.0 normalizes to 0.
func canonReal(f float64, prec int, keepIntegers bool) string {
	if keepIntegers && isIntegral(f) {
		if f == 0 {
			return "0"
		}
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return sciNotation(f, prec)
}

// canonComplex formats a complex number as <re><±im>I. Both components are
// always present, even when the imaginary part is zero.
func canonComplex(c complex128, prec int, keepIntegers bool) string {
	re := canonReal(real(c), prec, keepIntegers)
	im := canonReal(imag(c), prec, keepIntegers)
	if !strings.HasPrefix(im, "-") {
		im = "+" + im
	}
	return re + im + "I"
}

// sciNotation renders f as ±d.f…f*10^±EE with exactly prec fractional
// digits. The exponent is signed and zero-padded to at least two digits.
func sciNotation(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'e', prec, 64)
	return strings.Replace(s, "e", "*10^", 1)
}

// isIntegral reports whether f is a finite mathematical integer.
func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// ============================================================
// Strings and Symbols
// ============================================================

// canonString returns s as a quoted Wolfram string literal, escaping
// embedded quotes, backslashes and control whitespace.
func canonString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// isValidSymbol reports whether s can stand as a bare Wolfram symbol:
// letters, digits and $, not starting with a digit.
func isValidSymbol(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
