package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/papertrade/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "show the share prices the account trades at" }
func (*pricesCmd) Usage() string {
	return `paper [-prices <file.json> [-prices-path <jsonpath>] [-currency <code>]] prices

  Prints the price table. Symbols missing from the table cannot be traded.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(os.Stdout, renderer.PricesMarkdown(prices))
	return subcommands.ExitSuccess
}
