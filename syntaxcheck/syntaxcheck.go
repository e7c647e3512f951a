// Package syntaxcheck implements the left-to-right validation pass that
// runs over a normalised expression before the compiler ever touches
// it: parenthesis balance, operator/operand alternation, function-call
// arity, and number well-formedness. It never builds bytecode; it only
// decides "is this well-formed" and, if not, where the fault is.
package syntaxcheck

import (
	"fmt"

	"github.com/dustin/go-humanize/english"

	"mathengine/funcs"
	"mathengine/numeral"
	"mathengine/paren"
)

// Error is a located syntax fault: Pos is a 0-based byte offset into
// the normalised text the caller checked.
type Error struct {
	Pos     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Pos)
}

func fail(pos int, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

const operatorChars = "+-*/^"

func isOperator(b byte) bool {
	for i := 0; i < len(operatorChars); i++ {
		if operatorChars[i] == b {
			return true
		}
	}
	return false
}

// checker holds the scan state for one Check call.
type checker struct {
	text  string
	vars  []string
	mu0   float64
	depth int
	pos   int
}

// Check validates a normalised expression text against the supplied
// variable names and "mu" value, returning the first fault found, or
// nil if the expression is well-formed.
func Check(text string, vars []string, mu0 float64) error {
	c := &checker{text: text, vars: vars, mu0: mu0}
	return c.run()
}

func (c *checker) run() error {
	if len(c.text) == 0 {
		return fail(0, "Missing operand")
	}
	for {
		if err := c.parseOperand(); err != nil {
			return err
		}
		if err := c.consumeClosingParens(); err != nil {
			return err
		}
		if c.pos >= len(c.text) {
			if c.depth != 0 {
				return fail(c.pos, "Missing )")
			}
			return nil
		}
		b := c.text[c.pos]
		if b != ',' && !isOperator(b) {
			return fail(c.pos, "Invalid element")
		}
		c.pos++
		if c.pos < len(c.text) {
			next := c.text[c.pos]
			if next == '*' || next == '/' || next == '^' {
				return fail(c.pos, "Multiple operators")
			}
		}
	}
}

// parseOperand consumes one operand: an optional leading sign, then a
// parenthesised group, a function call, a number, a variable or a
// constant. It leaves c.pos one past the operand (but before any
// trailing close-parens, which consumeClosingParens handles).
func (c *checker) parseOperand() error {
	if c.pos < len(c.text) && c.text[c.pos] == ')' {
		if c.pos > 0 && c.text[c.pos-1] == '(' {
			return fail(c.pos, "Empty parentheses")
		}
		return fail(c.pos, "Missing operand")
	}

	if c.pos < len(c.text) && (c.text[c.pos] == '+' || c.text[c.pos] == '-') {
		c.pos++
		if c.pos >= len(c.text) {
			return fail(c.pos, "Missing operand")
		}
		if b := c.text[c.pos]; b == ',' || isOperator(b) {
			return fail(c.pos, "Multiple operators")
		}
	}

	if c.pos >= len(c.text) {
		return fail(c.pos, "Missing operand")
	}

	if def, consumed, ok := funcs.Lookup(c.text[c.pos:]); ok {
		return c.parseFunctionCall(def, consumed)
	}

	if c.text[c.pos] == '(' {
		c.depth++
		c.pos++
		return c.parseOperand()
	}

	b := c.text[c.pos]
	if isDigit(b) || b == '.' {
		_, _, last, ok := numeral.RealNum(c.text, c.pos)
		if !ok {
			return fail(c.pos, "Invalid number format")
		}
		c.pos = last
		return nil
	}

	if idx, span := funcs.LookupVariable(c.text[c.pos:], c.vars); idx != 0 {
		c.pos += span
		return nil
	}

	if _, cspan, ok := funcs.LookupConstant(c.text[c.pos:], c.mu0); ok {
		c.pos += cspan
		return nil
	}

	return fail(c.pos, "Invalid element")
}

// parseFunctionCall validates "name(" followed by the right number of
// top-level comma-separated arguments, then recursively checks each
// argument as a full operand-to-operator-to-operand expression.
func (c *checker) parseFunctionCall(def funcs.Def, nameLen int) error {
	openPos := c.pos + nameLen
	if openPos >= len(c.text) || c.text[openPos] != '(' {
		return fail(openPos, "Invalid element")
	}
	closePos, ok := paren.Match(c.text, openPos)
	if !ok {
		return fail(openPos, "Missing )")
	}

	commas := paren.TopLevelCommas(c.text, openPos+1, closePos-1)
	argCount := 1
	if closePos == openPos+1 {
		argCount = 0
	} else {
		argCount = len(commas) + 1
	}

	if argCount != def.Arity {
		return fail(openPos, "Wrong number of arguments to %s: expected %s, got %d",
			def.Name, english.Plural(def.Arity, "argument", ""), argCount)
	}

	// Validate each argument independently by recursing a fresh
	// checker over its sub-window; position/parenthesis bookkeeping
	// for the caller only needs to know where the whole call ends.
	argStart := openPos + 1
	bounds := append(commas, closePos)
	for _, stop := range bounds {
		sub := &checker{text: c.text[argStart:stop], vars: c.vars, mu0: c.mu0}
		if err := sub.run(); err != nil {
			return fail(argStart+err.(*Error).Pos, err.(*Error).Message)
		}
		argStart = stop + 1
	}

	c.pos = closePos + 1
	return nil
}

// consumeClosingParens consumes every immediately-following ')',
// decrementing the tracked depth once per character and failing if it
// ever goes negative.
func (c *checker) consumeClosingParens() error {
	for c.pos < len(c.text) && c.text[c.pos] == ')' {
		c.depth--
		if c.depth < 0 {
			return fail(c.pos, "Mismatched parenthesis")
		}
		c.pos++
	}
	return nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
