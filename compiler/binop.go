// binop.go locates the binary operator a window splits at, and holds
// the unary-vs-binary classification for '+' and '-'.

package compiler

import "mathengine/bytecode"

// opcodeFor maps an operator character to its opcode.
func opcodeFor(ch byte) bytecode.Opcode {
	switch ch {
	case '+':
		return bytecode.Add
	case '-':
		return bytecode.Sub
	case '*':
		return bytecode.Mul
	case '/':
		return bytecode.Div
	}
	return bytecode.Pow
}

// splitPoint finds the operator the window [b,e] splits at: the
// loosest-binding binary operator at parenthesis depth 0. Precedence
// classes are tried in ascending order ('+'/'-', then '*'/'/', then
// '^'), so the operator that binds last is split off first.
//
// Within the additive and multiplicative classes the rightmost
// occurrence wins, which makes those operators left-associative (the
// left sub-window keeps the earlier operators). '^' instead takes the
// leftmost occurrence, so its right operand is the sub-expression
// containing any further '^' - right-associativity.
func (c *Compiler) splitPoint(b, e int) (j int, op bytecode.Opcode, found bool) {
	if j, found = c.rightmost(b, e, '+', '-'); found {
		return j, opcodeFor(c.text[j]), true
	}
	if j, found = c.rightmost(b, e, '*', '/'); found {
		return j, opcodeFor(c.text[j]), true
	}
	if j, found = c.leftmost(b, e, '^'); found {
		return j, bytecode.Pow, true
	}
	return 0, 0, false
}

// rightmost scans [b,e] from the right end down, tracking parenthesis
// depth, and returns the first depth-0 occurrence of ch1 or ch2 that
// classifies as binary.
func (c *Compiler) rightmost(b, e int, ch1, ch2 byte) (int, bool) {
	depth := 0
	for j := e; j >= b; j-- {
		switch c.text[j] {
		case ')':
			depth++
		case '(':
			depth--
		case ch1, ch2:
			if depth == 0 && c.binaryAt(j, b) {
				return j, true
			}
		}
	}
	return 0, false
}

// leftmost scans [b,e] left to right and returns the first depth-0
// occurrence of ch.
func (c *Compiler) leftmost(b, e int, ch byte) (int, bool) {
	depth := 0
	for j := b; j <= e; j++ {
		switch c.text[j] {
		case '(':
			depth++
		case ')':
			depth--
		case ch:
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

// binaryAt classifies the '+' or '-' at offset j, inside a window that
// starts at b. It is unary - and therefore not a split candidate - if
// it leads the window, follows another operator or an opening
// parenthesis, or is the sign of a real-number exponent ("1e-5").
// '*', '/' and '^' never reach this function; they are always binary.
func (c *Compiler) binaryAt(j, b int) bool {
	if j <= b {
		return false
	}
	prev := c.text[j-1]
	switch prev {
	case '+', '-', '*', '/', '^', '(':
		return false
	}

	// Exponent sign: a digit must follow, an exponent marker must
	// precede, and walking left past the marker must find a mantissa
	// (at least one digit, at most one decimal point) delimited by
	// the window start or an operator/parenthesis.
	if j+1 <= len(c.text)-1 && isDigit(c.text[j+1]) && isExponentMarker(prev) {
		digits, dots := 0, 0
		k := j - 2
		for k >= b {
			ch := c.text[k]
			if isDigit(ch) {
				digits++
				k--
				continue
			}
			if ch == '.' && dots == 0 {
				dots++
				k--
				continue
			}
			break
		}
		delimited := k < b || isOperatorOrOpen(c.text[k])
		if digits >= 1 && delimited {
			return false
		}
	}

	return true
}

func isExponentMarker(b byte) bool {
	return b == 'e' || b == 'E' || b == 'd' || b == 'D'
}

func isOperatorOrOpen(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '^', '(':
		return true
	}
	return false
}
