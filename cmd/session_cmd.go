package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "trade interactively on a paper account" }
func (*sessionCmd) Usage() string {
	return `paper session

  Reads commands from the standard input, one per line, until 'quit' or the
  end of the input. The account lives as long as the session.

  Type 'help' in the session for the list of commands, and see
  'paper topic session' for the full reference.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	prompt := ""
	if isTerminal(os.Stdin) {
		prompt = "paper> "
		fmt.Println("Type 'help' for a list of commands.")
	}
	s := NewSession(os.Stdout, prices, NewLogger(os.Stderr))
	if _, err := s.Run(os.Stdin, prompt, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading commands: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type runCmd struct {
	keepGoing bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "run session scripts on a fresh paper account" }
func (*runCmd) Usage() string {
	return `paper run [-k] <script>...

  Runs the scripts, in order, in a single session. Scripts use the session
  command language. The run stops at the first failing command unless -k is
  set, and exits with a failure status if any command failed.

Usage Examples:
$ paper run open.paper trades.paper
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.keepGoing, "k", false, "keep going after a failed command")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one script is required")
		return subcommands.ExitUsageError
	}
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := NewSession(os.Stdout, prices, NewLogger(os.Stderr))
	failed, err := runScripts(s, f.Args(), c.keepGoing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runScripts feeds the scripts to s, in order, and returns the number of
// failed commands.
func runScripts(s *Session, scripts []string, keepGoing bool) (int, error) {
	total := 0
	for _, script := range scripts {
		f, err := os.Open(script)
		if err != nil {
			return total, fmt.Errorf("cannot open script: %w", err)
		}
		failed, err := s.Run(f, "", keepGoing)
		f.Close()
		total += failed
		if err != nil {
			return total, fmt.Errorf("cannot read script %q: %w", script, err)
		}
		if failed > 0 && !keepGoing {
			break
		}
	}
	return total, nil
}
