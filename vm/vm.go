// Package vm implements the stack-machine interpreter: a single
// dispatch loop over a compiled program, with per-opcode domain-error
// detection.
//
// The interpreter allocates nothing per step. Three cursors move: the
// instruction index over the program's bytecode, the data index over
// its immediates pool, and the stack pointer inside the operand stack.
// A domain fault stops the loop immediately; the result in that case
// is 0 together with the fault's code.
package vm

import (
	"math"

	"mathengine/bytecode"
	"mathengine/stack"
)

// Run executes prog against the supplied variable values and returns
// the result. st must have at least prog.StackCapacity cells; passing
// the stack in - rather than holding one inside the program - keeps
// concurrent evaluations of the same program independent of each
// other.
//
// Variable opcodes index values directly; the compiler only emits
// indices for names the caller supplied at parse time, so range
// checking them here would be covering for a caller passing a vector
// shorter than the parse-time name list.
func Run(prog *bytecode.Program, values []float64, st *stack.Stack) (float64, EvalError) {
	st.Reset()
	dp := 0

	for _, op := range prog.Instructions {
		if op.IsVar() {
			st.Push(values[op.VarIndex()])
			continue
		}

		switch op {
		case bytecode.PushImmed:
			st.Push(prog.Immediates[dp])
			dp++

		case bytecode.Neg:
			st.ReplaceTop(-st.Top())

		case bytecode.Add:
			b := st.Pop()
			st.ReplaceTop(st.Top() + b)

		case bytecode.Sub:
			b := st.Pop()
			st.ReplaceTop(st.Top() - b)

		case bytecode.Mul:
			b := st.Pop()
			st.ReplaceTop(st.Top() * b)

		case bytecode.Div:
			b := st.Pop()
			if b == 0 {
				return 0, ErrDivByZero
			}
			st.ReplaceTop(st.Top() / b)

		case bytecode.Pow:
			exp := st.Pop()
			base := st.Top()
			if base == 0 && exp < 0 {
				return 0, ErrDivByZero
			}
			if base <= 0 && exp != math.Trunc(exp) {
				return 0, ErrPowFractional
			}
			st.ReplaceTop(math.Pow(base, exp))

		case bytecode.Abs:
			st.ReplaceTop(math.Abs(st.Top()))

		case bytecode.Exp:
			st.ReplaceTop(math.Exp(st.Top()))

		case bytecode.Log10:
			v := st.Top()
			if v <= 0 {
				return 0, ErrLogNonPositive
			}
			st.ReplaceTop(math.Log10(v))

		case bytecode.Ln:
			v := st.Top()
			if v <= 0 {
				return 0, ErrLogNonPositive
			}
			st.ReplaceTop(math.Log(v))

		case bytecode.Sqrt:
			v := st.Top()
			if v < 0 {
				return 0, ErrSqrtNegative
			}
			st.ReplaceTop(math.Sqrt(v))

		case bytecode.Sinh:
			st.ReplaceTop(math.Sinh(st.Top()))

		case bytecode.Cosh:
			st.ReplaceTop(math.Cosh(st.Top()))

		case bytecode.Tanh:
			st.ReplaceTop(math.Tanh(st.Top()))

		case bytecode.Sin:
			st.ReplaceTop(math.Sin(st.Top()))

		case bytecode.Cos:
			st.ReplaceTop(math.Cos(st.Top()))

		case bytecode.Tan:
			st.ReplaceTop(math.Tan(st.Top()))

		case bytecode.Asin:
			v := st.Top()
			if v < -1 || v > 1 {
				return 0, ErrArcRange
			}
			st.ReplaceTop(math.Asin(v))

		case bytecode.Acos:
			v := st.Top()
			if v < -1 || v > 1 {
				return 0, ErrArcRange
			}
			st.ReplaceTop(math.Acos(v))

		case bytecode.Atan:
			st.ReplaceTop(math.Atan(st.Top()))

		case bytecode.Besj0:
			st.ReplaceTop(math.J0(st.Top()))

		case bytecode.Besj1:
			st.ReplaceTop(math.J1(st.Top()))

		case bytecode.Besy0:
			v := st.Top()
			if v <= 0 {
				return 0, ErrBesy0Arg
			}
			st.ReplaceTop(math.Y0(v))

		case bytecode.Besy1:
			v := st.Top()
			if v <= 0 {
				return 0, ErrBesy1Arg
			}
			st.ReplaceTop(math.Y1(v))

		case bytecode.Erfcs:
			// Scaled complementary error function exp(x^2)*erfc(x);
			// the stdlib has no direct form.
			v := st.Top()
			st.ReplaceTop(math.Exp(v*v) * math.Erfc(v))

		case bytecode.Erfc:
			st.ReplaceTop(math.Erfc(st.Top()))

		case bytecode.Erf:
			st.ReplaceTop(math.Erf(st.Top()))

		case bytecode.Gamma:
			v := st.Top()
			if v <= 0 && v == math.Trunc(v) {
				return 0, ErrGammaPole
			}
			st.ReplaceTop(math.Gamma(v))

		case bytecode.Atan2:
			x := st.Pop()
			st.ReplaceTop(math.Atan2(st.Top(), x))
		}
	}

	return st.Top(), ErrNone
}
