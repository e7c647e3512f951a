// The compiler-package lowers a normalised expression to stack-machine
// bytecode.
//
// In brief we go through a two-pass process:
//
//  1.  A sizing pass walks the expression and counts how many
//      instructions, immediates, and stack cells the program needs.
//
//  2.  An emit pass repeats exactly the same walk, this time writing
//      into buffers allocated at the sizes the first pass measured.
//
// There is no tree in between: each call handles one window [b,e] of
// the normalised text, decides what the outermost construct of that
// window is, recurses on the sub-windows, and appends postfix
// bytecode. The decision order is fixed - a case earlier in the list
// always wins over a later one:
//
//  1.  leading unary '+'
//  2.  fully enclosing parentheses
//  3.  function call
//  4.  unary '-' over a parenthesised group
//  5.  unary '-' over a function call
//  6.  lowest-precedence binary operator at depth 0
//  7.  leaf (number, variable, constant)
//
// The compiler assumes its input already passed the syntax checker; a
// window it cannot classify is still reported as an error rather than
// silently mis-compiled.
package compiler

import (
	"fmt"

	"mathengine/bytecode"
	"mathengine/funcs"
	"mathengine/numeral"
	"mathengine/paren"
)

// Compiler holds our object-state.
type Compiler struct {

	// text is the normalised expression we're compiling: no
	// whitespace, and every "**" of the source already rewritten to '^'.
	text string

	// vars are the caller's variable names, in the order their values
	// will later be supplied to the interpreter.
	vars []string

	// mu0 is the value the "mu" constant bakes into the immediates
	// pool at compile time.
	mu0 float64
}

// New returns a compiler for the given normalised expression.
func New(normalized string, vars []string, mu0 float64) *Compiler {
	return &Compiler{text: normalized, vars: vars, mu0: mu0}
}

// Compile runs the sizing pass, allocates exactly-sized buffers, runs
// the emit pass, and returns the finished program.
func (c *Compiler) Compile() (*bytecode.Program, error) {
	if len(c.text) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	size := &output{}
	if err := c.window(size, 0, len(c.text)-1); err != nil {
		return nil, err
	}

	emit := &output{
		record: true,
		code:   make([]bytecode.Opcode, 0, size.nCode),
		imm:    make([]float64, 0, size.nImm),
	}
	if err := c.window(emit, 0, len(c.text)-1); err != nil {
		// The two passes make identical decisions, so a fault here
		// means the compiler itself is inconsistent.
		return nil, fmt.Errorf("emit pass diverged from sizing pass: %s", err)
	}

	return &bytecode.Program{
		Instructions:  emit.code,
		Immediates:    emit.imm,
		StackCapacity: size.high,
	}, nil
}

// window compiles c.text[b..e] inclusive, appending postfix bytecode
// to out.
func (c *Compiler) window(out *output, b, e int) error {
	if b > e {
		return fmt.Errorf("missing operand at offset %d", b)
	}

	// Case 1: a leading unary '+' contributes nothing.
	if c.text[b] == '+' {
		return c.window(out, b+1, e)
	}

	// Case 2: parentheses enclosing the whole window.
	if paren.Encloses(c.text, b, e) {
		return c.window(out, b+1, e-1)
	}

	// Case 3: a function call spanning the whole window.
	if def, p, ok := c.callShape(b, e); ok {
		return c.call(out, def, p, e)
	}

	if c.text[b] == '-' {
		// Case 4: unary '-' over a parenthesised group.
		if paren.Encloses(c.text, b+1, e) {
			if err := c.window(out, b+2, e-1); err != nil {
				return err
			}
			out.op(bytecode.Neg)
			return nil
		}

		// Case 5: unary '-' over a function call.
		if def, p, ok := c.callShape(b+1, e); ok {
			if err := c.call(out, def, p, e); err != nil {
				return err
			}
			out.op(bytecode.Neg)
			return nil
		}
	}

	// Case 6: split at the loosest-binding binary operator at depth 0.
	if j, op, found := c.splitPoint(b, e); found {
		if (op == bytecode.Mul || op == bytecode.Div || op == bytecode.Pow) && c.text[b] == '-' {
			// The leading '-' binds looser than the operator we
			// found: -a^b is -(a^b), not (-a)^b.
			if err := c.window(out, b+1, e); err != nil {
				return err
			}
			out.op(bytecode.Neg)
			return nil
		}
		if err := c.window(out, b, j-1); err != nil {
			return err
		}
		if err := c.window(out, j+1, e); err != nil {
			return err
		}
		out.binary(op)
		return nil
	}

	// Case 7: a leaf.
	return c.leaf(out, b, e)
}

// callShape reports whether [b,e] has the shape of a function call:
// a function name starting at b, immediately followed by a '(' whose
// matching ')' sits exactly at e. p is the offset of that '('.
func (c *Compiler) callShape(b, e int) (def funcs.Def, p int, ok bool) {
	if b > e || !isLetter(c.text[b]) {
		return funcs.Def{}, 0, false
	}
	def, consumed, ok := funcs.Lookup(c.text[b : e+1])
	if !ok {
		return funcs.Def{}, 0, false
	}
	p = b + consumed
	if p > e || c.text[p] != '(' || !paren.Encloses(c.text, p, e) {
		return funcs.Def{}, 0, false
	}
	return def, p, true
}

// call compiles the arguments of a function call whose '(' is at p and
// whose ')' is at e, then emits the function's opcode.
func (c *Compiler) call(out *output, def funcs.Def, p, e int) error {
	if def.Arity == 2 {
		m := paren.FirstTopLevelComma(c.text, p+1, e-1)
		if m < 0 {
			return fmt.Errorf("%s needs two arguments at offset %d", def.Name, p)
		}
		if err := c.window(out, p+1, m-1); err != nil {
			return err
		}
		if err := c.window(out, m+1, e-1); err != nil {
			return err
		}
		out.binary(def.Opcode)
		return nil
	}
	if err := c.window(out, p+1, e-1); err != nil {
		return err
	}
	out.op(def.Opcode)
	return nil
}

// leaf compiles a number, variable, or named constant, with an
// optional leading '-' that lowers to a trailing Neg.
func (c *Compiler) leaf(out *output, b, e int) error {
	neg := false
	if c.text[b] == '-' {
		neg = true
		b++
		if b > e {
			return fmt.Errorf("missing operand at offset %d", b)
		}
	}

	switch {
	case isDigit(c.text[b]) || c.text[b] == '.':
		v, _, last, ok := numeral.RealNum(c.text, b)
		if !ok || last != e+1 {
			return fmt.Errorf("invalid number at offset %d", b)
		}
		out.pushImmediate(v)

	default:
		if idx, span := funcs.LookupVariable(c.text[b:e+1], c.vars); idx != 0 && b+span == e+1 {
			out.pushVar(idx - 1)
			break
		}
		if v, span, ok := funcs.LookupConstant(c.text[b:e+1], c.mu0); ok && b+span == e+1 {
			out.pushImmediate(v)
			break
		}
		return fmt.Errorf("invalid element at offset %d", b)
	}

	if neg {
		out.op(bytecode.Neg)
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
