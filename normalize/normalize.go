// Package normalize produces the working copy of an expression that the
// rest of the pipeline operates on, plus the position map used to
// translate a fault back to the user's original text for diagnostics.
//
// Two rewrites run in a fixed order: "**" becomes "^ " (the trailing
// blank keeps the string the same length, so the position map stays a
// simple one-rune-in one-rune-out walk for that step), then all space
// characters are removed. Running them in that order means "a ** b"
// and "a**b" always normalise to the identical string.
package normalize

// Result is the outcome of normalising one expression.
type Result struct {
	// Text is the normalised working copy: every "**" of the source
	// rewritten to "^", and no whitespace. Stars separated by blanks in
	// the source ("* *") are not rewritten and end up adjacent.
	Text string

	// PosMap[k] is the 1-based index, in the original string, of the
	// character that ended up at Text[k]. It exists solely so a
	// diagnostic raised against Text can point at the right column
	// of the string the user actually typed.
	PosMap []int
}

// Normalize rewrites src per the rules above and returns the working
// copy together with its position map.
func Normalize(src string) Result {
	rewritten, origOfRewritten := rewritePower(src)
	text, posMap := stripSpaces(rewritten, origOfRewritten)
	return Result{Text: text, PosMap: posMap}
}

// rewritePower replaces every "**" with "^ ", preserving length, and
// returns a parallel slice mapping each byte of the rewritten string to
// its 1-based origin in src. The synthetic blank introduced in place of
// the second '*' maps to the same origin as the '*' it replaced, so it
// still has a sensible position if a later stage ever points at it
// before the whitespace pass removes it.
func rewritePower(src string) (string, []int) {
	out := make([]byte, 0, len(src))
	origin := make([]int, 0, len(src))

	for i := 0; i < len(src); i++ {
		if src[i] == '*' && i+1 < len(src) && src[i+1] == '*' {
			out = append(out, '^', ' ')
			origin = append(origin, i+1, i+2)
			i++
			continue
		}
		out = append(out, src[i])
		origin = append(origin, i+1)
	}
	return string(out), origin
}

// stripSpaces removes every space character from rewritten, building the
// final position map from origin (rewritten's own position map, as
// produced by rewritePower) by keeping only the entries that survive.
func stripSpaces(rewritten string, origin []int) (string, []int) {
	out := make([]byte, 0, len(rewritten))
	posMap := make([]int, 0, len(rewritten))

	for i := 0; i < len(rewritten); i++ {
		if rewritten[i] == ' ' {
			continue
		}
		out = append(out, rewritten[i])
		posMap = append(posMap, origin[i])
	}
	return string(out), posMap
}

// OriginalIndex translates a 0-based byte offset into the normalised
// text back to a 1-based offset into the original string, for building
// a caret diagnostic. An offset equal to len(PosMap) (one past the end,
// as produced by an "unexpected end of input" fault) maps to one past
// the last mapped origin.
func (r Result) OriginalIndex(normalizedOffset int) int {
	if normalizedOffset < len(r.PosMap) {
		return r.PosMap[normalizedOffset]
	}
	if len(r.PosMap) == 0 {
		return 1
	}
	return r.PosMap[len(r.PosMap)-1] + 1
}
