package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"

	"mathengine/registry"
)

// evalCmd compiles an expression and evaluates it, either at a single
// point given on the command line or over every row of a CSV file.
type evalCmd struct {
	vars string
	at   string
	csv  string
	mu   float64
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "Compile and evaluate an expression" }
func (*evalCmd) Usage() string {
	return `eval [-vars x,y] [-at 3,4 | -csv points.csv] [-mu v] 'expression':
  Evaluate the expression at one point, or over every row of a CSV
  file whose columns follow the -vars order.
`
}

func (e *evalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.vars, "vars", "", "Comma-separated variable names, in value-vector order.")
	f.StringVar(&e.at, "at", "", "Comma-separated values, one per variable.")
	f.StringVar(&e.csv, "csv", "", "CSV file of value vectors, one row per evaluation.")
	f.Float64Var(&e.mu, "mu", 1, "Value of the mu constant.")
}

func (e *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: mathengine eval 'expression'\n")
		return subcommands.ExitUsageError
	}

	names := splitNames(e.vars)
	reg := registry.New(1)
	defer reg.Teardown()
	reg.SetMu0(e.mu)

	if code := reg.Parse(1, f.Arg(0), names, true); code != registry.ParseOK {
		return subcommands.ExitFailure
	}

	if e.csv != "" {
		return e.evalFile(reg, len(names))
	}

	values, err := splitValues(e.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad -at value: %s\n", err)
		return subcommands.ExitUsageError
	}
	if len(values) != len(names) {
		fmt.Fprintf(os.Stderr, "Got %d values for %d variables\n", len(values), len(names))
		return subcommands.ExitUsageError
	}

	result, code := reg.Evaluate(1, values)
	if code != 0 {
		fmt.Fprintf(os.Stderr, "Evaluation error %d: %s\n", int(code), code.Message())
		return subcommands.ExitFailure
	}
	fmt.Printf("%v\n", result)
	return subcommands.ExitSuccess
}

// evalFile runs the compiled slot over every row of the CSV file and
// prints one result per line.
func (e *evalCmd) evalFile(reg *registry.Registry, width int) subcommands.ExitStatus {
	fh, err := os.Open(e.csv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %s\n", e.csv, err)
		return subcommands.ExitFailure
	}
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", e.csv, err)
		return subcommands.ExitFailure
	}

	vectors := make([][]float64, 0, len(rows))
	for n, row := range rows {
		if len(row) != width {
			fmt.Fprintf(os.Stderr, "Row %d has %d columns, want %d\n", n+1, len(row), width)
			return subcommands.ExitFailure
		}
		vec := make([]float64, width)
		for i, cell := range row {
			if vec[i], err = strconv.ParseFloat(cell, 64); err != nil {
				fmt.Fprintf(os.Stderr, "Row %d: %s\n", n+1, err)
				return subcommands.ExitFailure
			}
		}
		vectors = append(vectors, vec)
	}

	results, errIndex, errCode := reg.EvaluateBatch(1, vectors)
	for _, v := range results {
		fmt.Printf("%v\n", v)
	}
	fmt.Fprintf(os.Stderr, "Evaluated %s rows\n", humanize.Comma(int64(len(results))))
	if errIndex != -1 {
		fmt.Fprintf(os.Stderr, "First evaluation error at row %d: %s\n", errIndex+1, errCode.Message())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
