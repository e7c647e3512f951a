package funcs

import "strings"

// varTerminators are the characters that end a variable name: the
// binary operators, the argument separator, a closing paren, and
// whitespace (which should never actually appear post-normalisation,
// but the boundary is checked anyway).
const varTerminators = "+-*/^, )"

// spanName returns the slice of s up to (but excluding) the first
// character in varTerminators, or all of s if none appears.
func spanName(s string) string {
	if i := strings.IndexAny(s, varTerminators); i >= 0 {
		return s[:i]
	}
	return s
}

// LookupVariable extracts the identifier spanning the start of s and
// compares it, case-sensitively, against names. It returns the 1-based
// index of a match, or 0 if none of names equals the extracted slice.
// The number of bytes spanned is always returned so callers can advance
// past the identifier regardless of whether it resolved.
func LookupVariable(s string, names []string) (index int, span int) {
	name := spanName(s)
	span = len(name)
	if name == "" {
		return 0, span
	}
	for i, n := range names {
		if n == name {
			return i + 1, span
		}
	}
	return 0, span
}
