// Command paper is a paper trading simulator.
//
// Run 'paper topic' for the documentation.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/papertrade/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Answers shell completion requests, and exits, when run by the shell.
	completion.Complete("paper")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(commander *subcommands.Commander, name string) (found bool) {
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"prices":      predict.Files("*.json"),
		"prices-path": predict.Something,
		"currency":    predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
		"v":           predict.Nothing,
	},
	Sub: map[string]*complete.Command{
		"session":  {},
		"prices":   {},
		"run":      {Flags: map[string]complete.Predictor{"k": predict.Nothing}, Args: predict.Files("*")},
		"topic":    {Args: predict.Set{"readme", "session", "prices", "*"}},
		"help":     {},
		"flags":    {},
		"commands": {},
	},
}
