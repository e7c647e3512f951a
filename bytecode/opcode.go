// Package bytecode defines the opcode alphabet and the compiled form of
// a function slot: the flat instruction list, the immediates pool, and
// the stack high-water mark the interpreter needs to size its operand
// stack.
//
// There is deliberately no tree here - a Program is the only artefact
// the compiler produces, and the interpreter never looks past it.
package bytecode

import "fmt"

// Opcode is a single instruction in a compiled Program.
//
// Values at or above VarBase do not appear in this const block: they are
// synthesised as VarBase+index by the compiler, and denote "push the
// value at this offset in the caller-supplied variable vector".
type Opcode int

// The opcode alphabet. Declaration order keeps the five binary
// arithmetic operators (Add through Pow) in ascending precedence. The
// compiler's binary-operator scan selects operators by character, not
// by opcode value, and nothing depends on the concrete integer values.
const (
	// PushImmed pushes immediates[DP] and advances DP.
	PushImmed Opcode = iota

	// Neg negates the top of the stack.
	Neg

	// Binary arithmetic, ascending precedence.
	Add
	Sub
	Mul
	Div
	Pow

	// Unary math primitives.
	Abs
	Exp
	Log10
	Ln
	Sqrt
	Sinh
	Cosh
	Tanh
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Besj0
	Besj1
	Besy0
	Besy1
	Erfcs
	Erfc
	Erf
	Gamma

	// Binary math primitives.
	Atan2

	// opcodeCount is a sentinel: the number of fixed opcodes declared
	// above it. It is not itself a valid instruction.
	opcodeCount
)

// VarBase is the first opcode value reserved for variable references.
// An opcode v denotes the variable at offset v-VarBase in the
// caller-supplied value vector whenever v >= VarBase.
const VarBase Opcode = 1 << 16

// VarOpcode returns the opcode denoting the variable at the given
// 0-based index into the evaluate-time value vector.
func VarOpcode(index int) Opcode {
	return VarBase + Opcode(index)
}

// IsVar reports whether op addresses a variable slot rather than a
// fixed instruction.
func (op Opcode) IsVar() bool {
	return op >= VarBase
}

// VarIndex returns the 0-based variable-vector offset encoded by op.
// The caller must have checked IsVar first.
func (op Opcode) VarIndex() int {
	return int(op - VarBase)
}

var mnemonics = map[Opcode]string{
	PushImmed: "PUSH_IMMED",
	Neg:       "NEG",
	Add:       "ADD",
	Sub:       "SUB",
	Mul:       "MUL",
	Div:       "DIV",
	Pow:       "POW",
	Abs:       "ABS",
	Exp:       "EXP",
	Log10:     "LOG10",
	Ln:        "LN",
	Sqrt:      "SQRT",
	Sinh:      "SINH",
	Cosh:      "COSH",
	Tanh:      "TANH",
	Sin:       "SIN",
	Cos:       "COS",
	Tan:       "TAN",
	Asin:      "ASIN",
	Acos:      "ACOS",
	Atan:      "ATAN",
	Besj0:     "BESJ0",
	Besj1:     "BESJ1",
	Besy0:     "BESY0",
	Besy1:     "BESY1",
	Erfcs:     "ERFCS",
	Erfc:      "ERFC",
	Erf:       "ERF",
	Gamma:     "GAMMA",
	Atan2:     "ATAN2",
}

// String renders the mnemonic for op, or "VAR[n]" for a variable
// reference.
func (op Opcode) String() string {
	if op.IsVar() {
		return fmt.Sprintf("VAR[%d]", op.VarIndex())
	}
	if m, ok := mnemonics[op]; ok {
		return m
	}
	return fmt.Sprintf("OP(%d)", int(op))
}

// IsBinary reports whether op pops two operands and pushes one.
func IsBinary(op Opcode) bool {
	switch op {
	case Add, Sub, Mul, Div, Pow, Atan2:
		return true
	}
	return false
}

// IsUnary reports whether op pops one operand and pushes one, excluding
// Neg (which is handled separately since it never fails).
func IsUnary(op Opcode) bool {
	switch op {
	case Abs, Exp, Log10, Ln, Sqrt, Sinh, Cosh, Tanh, Sin, Cos, Tan,
		Asin, Acos, Atan, Besj0, Besj1, Besy0, Besy1, Erfcs, Erfc,
		Erf, Gamma:
		return true
	}
	return false
}
