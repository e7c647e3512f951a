package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"mathengine/registry"
)

// replCmd implements the interactive session: expressions typed at
// the prompt are parsed into slot 1 and evaluated against the current
// variable bindings.
type replCmd struct {
	vars string
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive session" }
func (*replCmd) Usage() string {
	return `repl [-vars x,y]:
  Start an interactive session. Besides expressions it understands:
    vars x y ...   redeclare the variable names
    set x 3.5      bind a variable's value
    mu 2           set the mu constant for subsequent parses
    exit           leave
`
}

func (r *replCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.vars, "vars", "", "Comma-separated variable names.")
}

func (r *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting readline: %s\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	reg := registry.New(1)
	defer reg.Teardown()

	names := splitNames(r.vars)
	bindings := make(map[string]float64)

	fmt.Println("Expression engine - type an expression, or 'exit'.")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return subcommands.ExitSuccess
		}

		if rest, ok := strings.CutPrefix(line, "vars "); ok {
			names = strings.Fields(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "set "); ok {
			parts := strings.Fields(rest)
			if len(parts) != 2 {
				fmt.Println("Usage: set <name> <value>")
				continue
			}
			v, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				fmt.Printf("Bad value: %s\n", err)
				continue
			}
			bindings[parts[0]] = v
			continue
		}
		if rest, ok := strings.CutPrefix(line, "mu "); ok {
			v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
			if err != nil {
				fmt.Printf("Bad value: %s\n", err)
				continue
			}
			reg.SetMu0(v)
			continue
		}

		if code := reg.Parse(1, line, names, true); code != registry.ParseOK {
			continue
		}

		values := make([]float64, len(names))
		for i, n := range names {
			values[i] = bindings[n]
		}
		result, evalErr := reg.Evaluate(1, values)
		if evalErr != 0 {
			fmt.Printf("Evaluation error %d: %s\n", int(evalErr), evalErr.Message())
			continue
		}
		fmt.Printf("%v\n", result)
	}
}
