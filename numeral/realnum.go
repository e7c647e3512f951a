// Package numeral implements the numeric-literal grammar shared by the
// syntax checker and the compiler:
//
//	[+|-]? digits? ('.' digits)? ([eEdD] [+|-]? digits)?
//
// with at least one mantissa digit, and - if an exponent marker is
// present - at least one exponent digit. 'd'/'D' are accepted as
// synonyms for 'e'/'E', matching Fortran-style exponent notation.
//
// The scanner is a single free function with an explicit position
// cursor: RealNum is always called against an already-normalised
// string at a known start offset, never driving a token stream of its
// own.
package numeral

import (
	"strconv"
	"strings"
)

// RealNum scans a real-number literal starting at byte offset start in
// s. Leading blanks are consumed before the literal itself begins; an
// embedded blank terminates the number (and so, per the grammar above,
// will usually produce an incomplete/invalid literal rather than a
// silently truncated one).
//
// It returns the parsed value, the byte offset the literal actually
// started at (after leading blanks), the offset one past its last
// byte, and ok=false if no valid literal begins at start.
func RealNum(s string, start int) (value float64, first int, last int, ok bool) {
	i := start
	n := len(s)

	for i < n && s[i] == ' ' {
		i++
	}
	first = i

	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}

	mantissaDigits := 0
	for i < n && isDigit(s[i]) {
		i++
		mantissaDigits++
	}

	if i < n && s[i] == '.' {
		i++
		for i < n && isDigit(s[i]) {
			i++
			mantissaDigits++
		}
	}

	if mantissaDigits == 0 {
		return 0, first, first, false
	}

	last = i

	if i < n && isExponentMarker(s[i]) {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := 0
		for j < n && isDigit(s[j]) {
			j++
			expDigits++
		}
		if expDigits == 0 {
			// The marker is present but has no exponent digits:
			// the whole literal is malformed, per the grammar's
			// "if present, at least one exponent digit" rule.
			return 0, first, j, false
		}
		last = j
	}

	return parseFloat(s[first:last]), first, last, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'd' || b == 'D'
}

// parseFloat converts the matched literal, normalising the Fortran-ish
// 'd'/'D' exponent marker to 'e' since strconv does not accept it.
func parseFloat(lit string) float64 {
	norm := strings.Map(func(r rune) rune {
		switch r {
		case 'd', 'D':
			return 'e'
		}
		return r
	}, lit)
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0
	}
	return v
}
