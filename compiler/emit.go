// emit.go contains the output sink both compiler passes write to.

package compiler

import "mathengine/bytecode"

// output collects the bytecode of one pass. During the sizing pass
// record is false and only the counters advance; during the emit pass
// the buffers - preallocated at the counted sizes - are filled too.
// Both passes track the operand-stack depth so the high-water mark the
// interpreter sizes its stack from falls out of the same walk.
type output struct {
	record bool

	code []bytecode.Opcode
	imm  []float64

	nCode int
	nImm  int

	depth int
	high  int
}

// op appends one instruction.
func (o *output) op(op bytecode.Opcode) {
	if o.record {
		o.code = append(o.code, op)
	}
	o.nCode++
}

// binary appends an instruction that pops two operands and pushes one.
func (o *output) binary(op bytecode.Opcode) {
	o.op(op)
	o.depth--
}

// pushImmediate appends a PushImmed instruction and its pool entry.
func (o *output) pushImmediate(v float64) {
	o.op(bytecode.PushImmed)
	if o.record {
		o.imm = append(o.imm, v)
	}
	o.nImm++
	o.pushed()
}

// pushVar appends a variable-reference instruction for the 0-based
// variable index.
func (o *output) pushVar(index int) {
	o.op(bytecode.VarOpcode(index))
	o.pushed()
}

// pushed records the stack growing by one cell.
func (o *output) pushed() {
	o.depth++
	if o.depth > o.high {
		o.high = o.depth
	}
}
