package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mathengine/registry"
)

// parseCmd compiles one expression and optionally disassembles it.
type parseCmd struct {
	vars   string
	disasm bool
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "Compile an expression and report the outcome" }
func (*parseCmd) Usage() string {
	return `parse [-vars x,y] [-disasm] 'expression':
  Compile the expression against the given variable names.
`
}

func (p *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.vars, "vars", "", "Comma-separated variable names, in value-vector order.")
	f.BoolVar(&p.disasm, "disasm", false, "Print the compiled bytecode.")
}

func (p *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: mathengine parse 'expression'\n")
		return subcommands.ExitUsageError
	}

	names := splitNames(p.vars)
	reg := registry.New(1)
	defer reg.Teardown()

	if code := reg.Parse(1, f.Arg(0), names, true); code != registry.ParseOK {
		return subcommands.ExitFailure
	}

	if p.disasm {
		prog, vars, _ := reg.Program(1)
		fmt.Print(prog.Disassemble(vars))
	}
	return subcommands.ExitSuccess
}
