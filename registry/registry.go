// Package registry holds the function-slot table: N independently
// compiled expressions, addressed 1..N, each produced by the
// normalise/check/compile pipeline and evaluated by the vm package.
//
// The registry is an explicit value, not package state, so the
// diagnostic writer, the "mu" scalar, and the last-error channels are
// all per-registry. Nothing here is safe for concurrent mutation of
// the same slot; evaluating distinct slots concurrently is fine
// because every evaluation carries its own operand stack.
package registry

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"
	"slices"

	"mathengine/bytecode"
	"mathengine/compiler"
	"mathengine/funcs"
	"mathengine/normalize"
	"mathengine/syntaxcheck"
)

// Parse result codes, returned by Parse and Check.
const (
	// ParseOK means the expression compiled and the slot was filled.
	ParseOK = 0

	// ParseErrSyntax means the expression failed validation or
	// lowering; the slot is unchanged.
	ParseErrSyntax = 1

	// ParseErrSlot means the slot index was outside 1..N or the
	// registry was never initialised.
	ParseErrSlot = 2
)

// slot is one compiled expression plus the variable names it was
// parsed against (kept for disassembly). The length of the value
// vectors handed to Evaluate or EvaluateBatch is not checked against
// them.
type slot struct {
	program *bytecode.Program
	vars    []string
}

// Registry is the slot table and its per-registry channels.
type Registry struct {
	slots []slot

	// mu0 is the value the "mu" constant bakes into programs at
	// parse time. Changing it never affects already-compiled slots.
	mu0 float64

	// out receives caret diagnostics when a parse is verbose.
	out io.Writer

	logger *log.Logger

	// lastEval is the domain-error code of the most recent Evaluate
	// or EvaluateBatch call, 0 after a successful one.
	lastEval EvalError

	// lastErr keeps the wrapped internal error of the most recent
	// Parse/Check if it failed (nil if it succeeded), for logging and
	// debugging; the public contract is the integer code.
	lastErr error
}

// New allocates a registry with n empty slots.
func New(n int) *Registry {
	r := &Registry{
		mu0:    funcs.DefaultMu0,
		out:    os.Stdout,
		logger: log.New(os.Stderr, "registry: ", 0),
	}
	r.Init(n)
	return r
}

// Init (re-)allocates the slot table. Initialising a registry that
// still holds slots is tolerated: the old table is reclaimed first,
// with a warning, since it usually means a missing Teardown.
func (r *Registry) Init(n int) {
	if r.slots != nil {
		r.logger.Printf("re-initialising a live registry of %d slots without teardown; reclaiming", len(r.slots))
	}
	if n < 1 {
		n = 1
	}
	r.slots = make([]slot, n)
}

// Teardown releases every slot. It is idempotent; a torn-down
// registry rejects Parse and Evaluate until Init is called again.
func (r *Registry) Teardown() {
	r.slots = nil
	r.lastEval = 0
	r.lastErr = nil
}

// Slots returns the slot count, 0 after teardown.
func (r *Registry) Slots() int {
	return len(r.slots)
}

// SetMu0 sets the value the "mu" constant will have in subsequent
// parses. Already-compiled slots keep the value they were parsed
// with.
func (r *Registry) SetMu0(v float64) {
	r.mu0 = v
}

// Mu0 returns the current "mu" value.
func (r *Registry) Mu0() float64 {
	return r.mu0
}

// SetOutput redirects caret diagnostics, which default to stdout.
func (r *Registry) SetOutput(w io.Writer) {
	r.out = w
}

// SetLogger replaces the lifecycle logger, which defaults to stderr.
func (r *Registry) SetLogger(l *log.Logger) {
	r.logger = l
}

// LastError returns the wrapped internal error of the most recent
// Parse or Check, or nil if that call succeeded. It exists for logging; callers
// branching on failure should use the returned codes.
func (r *Registry) LastError() error {
	return r.lastErr
}

// Parse compiles text against the ordered variable names and installs
// the result in slot i, fully replacing any prior program there. On
// failure the slot keeps its old content and the returned code says
// which stage rejected the expression. When verbose is true a syntax
// fault also prints a caret diagnostic against the original text.
func (r *Registry) Parse(i int, text string, vars []string, verbose bool) int {
	if i < 1 || i > len(r.slots) {
		r.lastErr = errors.Errorf("parse: slot %d outside 1..%d", i, len(r.slots))
		return ParseErrSlot
	}
	prog, code := r.build(text, vars, verbose)
	if code != ParseOK {
		return code
	}
	r.slots[i-1] = slot{program: prog, vars: slices.Clone(vars)}
	return ParseOK
}

// Check runs the same pipeline as Parse but discards the program, so
// an expression can be validated without touching any slot.
func (r *Registry) Check(text string, vars []string, verbose bool) int {
	_, code := r.build(text, vars, verbose)
	return code
}

// build runs normalise, syntax check, and both compiler passes.
func (r *Registry) build(text string, vars []string, verbose bool) (*bytecode.Program, int) {
	norm := normalize.Normalize(text)

	if err := syntaxcheck.Check(norm.Text, vars, r.mu0); err != nil {
		serr := err.(*syntaxcheck.Error)
		if verbose {
			r.diagnose(text, norm, serr)
		}
		r.lastErr = errors.Wrap(err, "syntax check")
		return nil, ParseErrSyntax
	}

	prog, err := compiler.New(norm.Text, vars, r.mu0).Compile()
	if err != nil {
		// The checker accepts a few shapes the compiler cannot
		// lower (a stray top-level comma, say); surface those as
		// syntax faults too, without a caret since the compiler
		// reports offsets in prose.
		if verbose {
			fmt.Fprintf(r.out, "*** Error in syntax of function string: %s\n", err)
		}
		r.lastErr = errors.Wrap(err, "compile")
		return nil, ParseErrSyntax
	}

	r.lastErr = nil
	return prog, ParseOK
}

// diagnose prints the three-line caret diagnostic: the fault message,
// the user's original text, and a caret aligned - via the position
// map - under the offending character of that original text.
func (r *Registry) diagnose(original string, norm normalize.Result, serr *syntaxcheck.Error) {
	col := norm.OriginalIndex(serr.Pos)
	fmt.Fprintf(r.out, "*** Error in syntax of function string: %s\n", serr.Message)
	fmt.Fprintf(r.out, "\n")
	fmt.Fprintf(r.out, " %s\n", original)
	fmt.Fprintf(r.out, " %s^\n", strings.Repeat(" ", col-1))
}

// Program returns slot i's compiled program and the variable names it
// was parsed with, or ok=false if the slot is empty or out of range.
// It exists for disassembly and tooling; evaluation goes through
// Evaluate.
func (r *Registry) Program(i int) (prog *bytecode.Program, vars []string, ok bool) {
	if i < 1 || i > len(r.slots) || r.slots[i-1].program == nil {
		return nil, nil, false
	}
	return r.slots[i-1].program, r.slots[i-1].vars, true
}
