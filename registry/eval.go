// eval.go holds the evaluation surface of the registry: single-vector
// evaluation, batch evaluation over many vectors, and the
// evaluation-error message channel.

package registry

import (
	"github.com/pkg/errors"

	"mathengine/bytecode"
	"mathengine/stack"
	"mathengine/vm"
)

// EvalError re-exports the vm's domain-error code so registry callers
// need not import the interpreter package.
type EvalError = vm.EvalError

// Evaluate runs slot i against values, whose order must match the
// variable names given at parse time. On a domain fault the result is
// 0 and the returned code identifies the fault; the code is also
// latched for EvalErrMsg. Evaluating an empty or out-of-range slot is
// a programmer error and panics.
func (r *Registry) Evaluate(i int, values []float64) (float64, EvalError) {
	prog := r.mustProgram(i)
	st := stack.New(prog.StackCapacity)
	result, code := vm.Run(prog, values, st)
	r.lastEval = code
	return result, code
}

// EvaluateBatch runs slot i against every vector in values, reusing
// one operand stack across the whole batch. It returns one result per
// vector; rows that fault evaluate to 0. errIndex is the row of the
// first fault and errCode its code; errIndex is -1 when the whole
// batch succeeded. The remaining rows are still evaluated - a domain
// fault in one vector says nothing about the next.
func (r *Registry) EvaluateBatch(i int, values [][]float64) (results []float64, errIndex int, errCode EvalError) {
	prog := r.mustProgram(i)
	st := stack.New(prog.StackCapacity)

	results = make([]float64, len(values))
	errIndex = -1
	for row, vec := range values {
		v, code := vm.Run(prog, vec, st)
		results[row] = v
		if code != vm.ErrNone && errIndex == -1 {
			errIndex = row
			errCode = code
		}
	}
	r.lastEval = errCode
	return results, errIndex, errCode
}

// mustProgram fetches the compiled program of slot i or panics: an
// evaluation against a slot that was never parsed is a bug in the
// caller, not a runtime condition.
func (r *Registry) mustProgram(i int) *bytecode.Program {
	if i < 1 || i > len(r.slots) {
		panic(errors.Errorf("evaluate: slot %d outside 1..%d", i, len(r.slots)))
	}
	if r.slots[i-1].program == nil {
		panic(errors.Errorf("evaluate: slot %d was never parsed", i))
	}
	return r.slots[i-1].program
}

// EvalErrType returns the domain-error code latched by the most
// recent Evaluate or EvaluateBatch call, 0 if it succeeded.
func (r *Registry) EvalErrType() EvalError {
	return r.lastEval
}

// EvalErrMsg returns the message for the latched evaluation error,
// empty after a successful evaluation.
func (r *Registry) EvalErrMsg() string {
	return r.lastEval.Message()
}

// EvalErrMsgFor returns the message for an explicit code, empty for 0
// and for codes outside the taxonomy.
func EvalErrMsgFor(code int) string {
	return vm.EvalError(code).Message()
}
