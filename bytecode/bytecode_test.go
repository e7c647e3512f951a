package bytecode

import (
	"strings"
	"testing"
)

// Test the five arithmetic opcodes are declared in ascending
// precedence order.
func TestPrecedenceOrder(t *testing.T) {
	if !(Add < Sub && Sub < Mul && Mul < Div && Div < Pow) {
		t.Errorf("arithmetic opcodes out of precedence order: %d %d %d %d %d",
			Add, Sub, Mul, Div, Pow)
	}
}

// Test variable opcode encoding round-trips.
func TestVarOpcode(t *testing.T) {
	for _, index := range []int{0, 1, 7, 500} {
		op := VarOpcode(index)
		if !op.IsVar() {
			t.Errorf("VarOpcode(%d) not recognised as a variable", index)
		}
		if op.VarIndex() != index {
			t.Errorf("VarOpcode(%d) decodes to %d", index, op.VarIndex())
		}
	}

	if Atan2.IsVar() {
		t.Errorf("Atan2 misclassified as a variable reference")
	}
}

// Test the mnemonic table covers the whole alphabet.
func TestMnemonics(t *testing.T) {
	for op := PushImmed; op < opcodeCount; op++ {
		if strings.HasPrefix(op.String(), "OP(") {
			t.Errorf("opcode %d has no mnemonic", int(op))
		}
	}
	if got := VarOpcode(3).String(); got != "VAR[3]" {
		t.Errorf("variable mnemonic = %q", got)
	}
}

// Test disassembly annotates immediates and variable names.
func TestDisassemble(t *testing.T) {
	// sqrt(x^2+y^2) as the compiler would emit it.
	prog := &Program{
		Instructions: []Opcode{
			VarOpcode(0), PushImmed, Pow,
			VarOpcode(1), PushImmed, Pow,
			Add, Sqrt,
		},
		Immediates:    []float64{2, 2},
		StackCapacity: 2,
	}

	out := prog.Disassemble([]string{"x", "y"})

	for _, want := range []string{"PUSH_VAR", "x", "y", "PUSH_IMMED", "2", "SQRT", "stack capacity 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}

	// Without names, variables fall back to their index.
	out = prog.Disassemble(nil)
	if !strings.Contains(out, "#0") || !strings.Contains(out, "#1") {
		t.Errorf("nameless disassembly missing #n fallback:\n%s", out)
	}
}
