// Package funcs holds the function table: the closed set of named
// math primitives recognised by the syntax checker and the compiler,
// their arity, and their opcode.
//
// Function names are matched case-insensitively and by longest match,
// so a table entry whose name is a prefix of another (atan/atan2) must
// be tried after the longer one. Lookup enforces that ordering rather
// than trusting map iteration.
package funcs

import (
	"strings"

	"slices"

	"mathengine/bytecode"
)

// Def describes one entry in the function table.
type Def struct {
	// Name is the canonical (lower-case) spelling.
	Name string

	// Arity is 1 or 2; there are no other forms.
	Arity int

	// Opcode is emitted by the compiler once the arguments have been
	// compiled.
	Opcode bytecode.Opcode
}

// table is the closed list of recognised function names. Note gamf,
// not gamma, and log, not ln, matching the caller-facing spelling; the
// opcode they lower to still reads GAMMA / LN internally.
var table = []Def{
	{"abs", 1, bytecode.Abs},
	{"exp", 1, bytecode.Exp},
	{"log10", 1, bytecode.Log10},
	{"log", 1, bytecode.Ln},
	{"sqrt", 1, bytecode.Sqrt},
	{"sinh", 1, bytecode.Sinh},
	{"cosh", 1, bytecode.Cosh},
	{"tanh", 1, bytecode.Tanh},
	{"sin", 1, bytecode.Sin},
	{"cos", 1, bytecode.Cos},
	{"tan", 1, bytecode.Tan},
	{"asin", 1, bytecode.Asin},
	{"acos", 1, bytecode.Acos},
	{"atan2", 2, bytecode.Atan2},
	{"atan", 1, bytecode.Atan},
	{"besj0", 1, bytecode.Besj0},
	{"besj1", 1, bytecode.Besj1},
	{"besy0", 1, bytecode.Besy0},
	{"besy1", 1, bytecode.Besy1},
	{"erfcs", 1, bytecode.Erfcs},
	{"erfc", 1, bytecode.Erfc},
	{"erf", 1, bytecode.Erf},
	{"gamf", 1, bytecode.Gamma},
}

// byLengthDesc is table sorted longest-name-first, computed once so
// Lookup never matches "atan" before "atan2".
var byLengthDesc []Def

func init() {
	byLengthDesc = slices.Clone(table)
	slices.SortStableFunc(byLengthDesc, func(a, b Def) int {
		return len(b.Name) - len(a.Name)
	})
}

// Lookup performs a case-insensitive, longest-match search for a
// function name starting at the beginning of s. It returns the
// matched definition and the number of bytes of s it consumed, or
// ok=false if no function name is a prefix of s.
func Lookup(s string) (def Def, consumed int, ok bool) {
	lower := strings.ToLower(s)
	for _, d := range byLengthDesc {
		if strings.HasPrefix(lower, d.Name) {
			return d, len(d.Name), true
		}
	}
	return Def{}, 0, false
}

// ByOpcode finds the table entry with the given opcode (the reverse of
// Lookup). Opcodes that no named function lowers to report ok=false.
func ByOpcode(op bytecode.Opcode) (Def, bool) {
	for _, d := range table {
		if d.Opcode == op {
			return d, true
		}
	}
	return Def{}, false
}
