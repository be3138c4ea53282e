// Package cmd implements the CLI application to trade on a paper account.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/papertrade"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "trading")
	c.Register(&runCmd{}, "trading")

	c.Register(&pricesCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var pricesFile = flag.String("prices", "", "Path to a JSON file of share prices, the built-in table is used when missing.\n If empty it will read the environment variable \""+EnvPricesFile+"\".")
var pricesPath = flag.String("prices-path", "", "JSONPath selecting the symbol to price object inside the -prices file (default: the whole document)")
var currency = flag.String("currency", "USD", "ISO 4217 currency of the prices read from the -prices file")
var Verbose = flag.Bool("v", false, "Log account operations at debug level on stderr")

// pricesFileName returns the -prices flag, falling back to the environment.
func pricesFileName() string {
	if *pricesFile == "" {
		*pricesFile = os.Getenv(EnvPricesFile)
	}
	return *pricesFile
}

// LoadPrices returns the price table selected by the global flags.
func LoadPrices() (*papertrade.PriceTable, error) {
	return loadPrices(pricesFileName(), *pricesPath, *currency)
}

func loadPrices(file, path, currency string) (*papertrade.PriceTable, error) {
	if file == "" {
		return papertrade.DefaultPrices(), nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("cannot open prices: %w", err)
	}
	defer f.Close()

	p, err := papertrade.DecodePriceTable(f, path, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read prices from %q: %w", file, err)
	}
	return p, nil
}

// NewLogger returns the application logger, writing to w.
func NewLogger(w io.Writer) *slog.Logger {
	level := log.InfoLevel
	if *Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
		Prefix:          "paper",
	})
	return slog.New(logger)
}

// printMarkdown renders md on a terminal, and prints it raw otherwise.
func printMarkdown(w io.Writer, md string) {
	if isTerminal(w) {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				fmt.Fprint(w, out)
				return
			}
		}
	}
	fmt.Fprint(w, md)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
