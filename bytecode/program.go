package bytecode

import (
	"fmt"
	"strings"
)

// Program is the compiled form of a single function slot: an ordered
// instruction list, the ordered pool of immediates PushImmed opcodes
// draw from, and the stack high-water mark observed at compile time.
//
// A Program is immutable once returned by the compiler; only evaluation
// cursors move over it.
type Program struct {
	Instructions  []Opcode
	Immediates    []float64
	StackCapacity int
}

// Disassemble renders Program as a human-readable opcode listing, one
// instruction per line, annotating PushImmed with the literal it will
// push and variable references with their source name when names is
// non-nil.
//
// This exists purely for diagnostics and debug tooling (cmd/mathengine's
// "parse -disasm" flag); the interpreter never calls it.
func (p *Program) Disassemble(names []string) string {
	var b strings.Builder
	dp := 0
	for i, op := range p.Instructions {
		switch {
		case op == PushImmed:
			fmt.Fprintf(&b, "%4d  %-12s %g\n", i, op, p.Immediates[dp])
			dp++
		case op.IsVar():
			idx := op.VarIndex()
			name := fmt.Sprintf("#%d", idx)
			if names != nil && idx < len(names) {
				name = names[idx]
			}
			fmt.Fprintf(&b, "%4d  %-12s %s\n", i, "PUSH_VAR", name)
		default:
			fmt.Fprintf(&b, "%4d  %s\n", i, op)
		}
	}
	fmt.Fprintf(&b, "; stack capacity %d, %d immediate(s)\n", p.StackCapacity, len(p.Immediates))
	return b.String()
}
