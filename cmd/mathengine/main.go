// This is the main-driver for the expression engine: a small
// multi-command CLI exercising the registry end-to-end.

package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&parseCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	subcommands.Register(&evalCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
