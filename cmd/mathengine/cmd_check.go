package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"mathengine/registry"
)

// checkCmd validates an expression without compiling it into a slot.
type checkCmd struct {
	vars  string
	quiet bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "Validate an expression without keeping it" }
func (*checkCmd) Usage() string {
	return `check [-vars x,y] [-q] 'expression':
  Exit 0 if the expression is well-formed, 1 otherwise.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vars, "vars", "", "Comma-separated variable names.")
	f.BoolVar(&c.quiet, "q", false, "Suppress the caret diagnostic.")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: mathengine check 'expression'\n")
		return subcommands.ExitUsageError
	}

	reg := registry.New(1)
	defer reg.Teardown()

	if code := reg.Check(f.Arg(0), splitNames(c.vars), !c.quiet); code != registry.ParseOK {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
