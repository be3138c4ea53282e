package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	errQuit      = errors.New("quit")
	errNoAccount = errors.New("please create an account first")
)

// Session interprets the paper trading command language, one line at a time,
// against the account it creates.
//
// A Session is not safe for concurrent use, but the account it holds is.
type Session struct {
	out     io.Writer
	prices  *papertrade.PriceTable
	logger  *slog.Logger
	account *papertrade.Account // nil until the first create.
	newID   func() string
	success *color.Color
	failure *color.Color
}

// NewSession returns a session without account, printing to out.
func NewSession(out io.Writer, prices *papertrade.PriceTable, logger *slog.Logger) *Session {
	s := &Session{
		out:     out,
		prices:  prices,
		logger:  logger,
		newID:   uuid.NewString,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
	if !isTerminal(out) {
		s.success.DisableColor()
		s.failure.DisableColor()
	}
	return s
}

// Account returns the current account, nil if none has been created yet.
func (s *Session) Account() *papertrade.Account { return s.account }

// Run executes every line read from r and reports failures on the session
// output. It stops at the first failing line unless keepGoing is set, and on
// quit.
//
// It returns the number of failed lines, the error is only about reading r.
func (s *Session) Run(r io.Reader, prompt string, keepGoing bool) (failed int, err error) {
	scanner := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(s.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		err := s.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return failed, nil
		}
		if err != nil {
			s.failure.Fprintf(s.out, "❌ Error: %v\n", err)
			failed++
			if !keepGoing {
				return failed, nil
			}
		}
	}
	return failed, scanner.Err()
}

// command is an instruction of the session language.
type command struct {
	name    string
	args    string // usage of the arguments
	help    string
	minArgs int
	maxArgs int
	account bool // needs an account
	run     func(s *Session, args []string) error
}

func commands() []command {
	return []command{
		{"create", "[id] <amount>", "open a new account, replacing the current one", 1, 2, false, (*Session).create},
		{"deposit", "<amount>", "add cash to the account", 1, 1, true, (*Session).deposit},
		{"withdraw", "<amount>", "take cash out of the account", 1, 1, true, (*Session).withdraw},
		{"buy", "<symbol> <quantity>", "buy shares at the current price", 2, 2, true, (*Session).buy},
		{"sell", "<symbol> <quantity>", "sell shares at the current price", 2, 2, true, (*Session).sell},
		{"holdings", "", "list the shares held", 0, 0, true, (*Session).holdings},
		{"value", "", "show the market value of the shares held", 0, 0, true, (*Session).value},
		{"pnl", "", "show the profit or loss since the account opened", 0, 0, true, (*Session).pnl},
		{"summary", "", "show the account summary", 0, 0, true, (*Session).summary},
		{"history", "", "list the transactions", 0, 0, true, (*Session).history},
		{"export", "<file>", "write the transactions to a JSONL file", 1, 1, true, (*Session).export},
		{"prices", "", "show the share prices", 0, 0, false, (*Session).showPrices},
		{"help", "", "show this help", 0, 0, false, (*Session).help},
		{"quit", "", "end the session", 0, 0, false, (*Session).quit},
		{"exit", "", "end the session", 0, 0, false, (*Session).quit},
	}
}

// lookupCommand finds a command by name, or by an unambiguous prefix of its
// name.
func lookupCommand(name string) (command, error) {
	var matches []command
	for _, c := range commands() {
		if c.name == name {
			return c, nil
		}
		if strings.HasPrefix(c.name, name) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 0:
		return command{}, fmt.Errorf("invalid command %q, type 'help' for a list of commands", name)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, c := range matches {
			names[i] = c.name
		}
		return command{}, fmt.Errorf("ambiguous command %q, did you mean: %s?", name, strings.Join(names, ", "))
	}
}

// Exec executes a single line. Blank lines and lines starting with '#' are
// ignored.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	c, err := lookupCommand(strings.ToLower(fields[0]))
	if err != nil {
		return err
	}
	args := fields[1:]
	if len(args) < c.minArgs || len(args) > c.maxArgs {
		return fmt.Errorf("usage: %s %s", c.name, c.args)
	}
	if c.account && s.account == nil {
		return errNoAccount
	}
	return c.run(s, args)
}

func (s *Session) parseAmount(arg string) (papertrade.Money, error) {
	return papertrade.ParseMoney(arg, s.prices.Currency())
}

func (s *Session) create(args []string) error {
	id, amount := s.newID(), args[0]
	if len(args) == 2 {
		id, amount = args[0], args[1]
	}
	deposit, err := s.parseAmount(amount)
	if err != nil {
		return err
	}
	account, err := papertrade.NewAccount(id, deposit, papertrade.WithPrices(s.prices), papertrade.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.account = account
	s.success.Fprintf(s.out, "✅ Account %s created with initial deposit of %s\n", id, account.InitialDeposit())
	return nil
}

func (s *Session) deposit(args []string) error {
	amount, err := s.parseAmount(args[0])
	if err != nil {
		return err
	}
	if err := s.account.Deposit(amount); err != nil {
		return err
	}
	s.success.Fprintf(s.out, "✅ Deposited %s. New balance: %s\n", amount, s.account.Balance())
	return nil
}

func (s *Session) withdraw(args []string) error {
	amount, err := s.parseAmount(args[0])
	if err != nil {
		return err
	}
	ok, err := s.account.Withdraw(amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("insufficient funds, current balance: %s", s.account.Balance())
	}
	s.success.Fprintf(s.out, "✅ Withdrew %s. New balance: %s\n", amount, s.account.Balance())
	return nil
}

// trade parses the symbol and quantity of a buy or sell. Symbols are
// case-insensitive in the session.
func trade(args []string) (string, papertrade.Quantity, error) {
	quantity, err := papertrade.ParseQuantity(args[1])
	return strings.ToUpper(args[0]), quantity, err
}

func (s *Session) buy(args []string) error {
	symbol, quantity, err := trade(args)
	if err != nil {
		return err
	}
	ok, err := s.account.BuyShares(symbol, quantity)
	if err != nil {
		return err
	}
	price := s.prices.PriceOf(symbol)
	if !ok {
		if price.IsZero() {
			return fmt.Errorf("symbol %s not found", symbol)
		}
		return fmt.Errorf("insufficient funds, cost would be %s but your balance is %s", price.Mul(quantity), s.account.Balance())
	}
	s.success.Fprintf(s.out, "✅ Bought %s shares of %s at %s per share.\nNew balance: %s\n", quantity, symbol, price, s.account.Balance())
	return nil
}

func (s *Session) sell(args []string) error {
	symbol, quantity, err := trade(args)
	if err != nil {
		return err
	}
	ok, err := s.account.SellShares(symbol, quantity)
	if err != nil {
		return err
	}
	price := s.prices.PriceOf(symbol)
	if !ok {
		switch position := s.account.Position(symbol); {
		case position.IsZero():
			return fmt.Errorf("you don't own any shares of %s", symbol)
		case position.LessThan(quantity):
			return fmt.Errorf("you only have %s shares of %s, but attempted to sell %s", position, symbol, quantity)
		default:
			return fmt.Errorf("symbol %s not found", symbol)
		}
	}
	s.success.Fprintf(s.out, "✅ Sold %s shares of %s at %s per share.\nNew balance: %s\n", quantity, symbol, price, s.account.Balance())
	return nil
}

func (s *Session) holdings([]string) error {
	holdings := s.account.Holdings()
	if len(holdings) == 0 {
		fmt.Fprintln(s.out, "No stocks in portfolio.")
		return nil
	}
	fmt.Fprintln(s.out, "Current Holdings:")
	for _, symbol := range slices.Sorted(maps.Keys(holdings)) {
		quantity := holdings[symbol]
		price := s.prices.PriceOf(symbol)
		fmt.Fprintf(s.out, "%s: %s shares @ %s = %s\n", symbol, quantity, price, price.Mul(quantity))
	}
	return nil
}

func (s *Session) value([]string) error {
	fmt.Fprintf(s.out, "Portfolio value: %s\n", s.account.PortfolioValue())
	return nil
}

func (s *Session) pnl([]string) error {
	pnl := s.account.ProfitOrLoss()
	switch {
	case pnl.IsPositive():
		fmt.Fprintf(s.out, "Profit/Loss: %s 📈\n", pnl.SignedString())
	case pnl.IsNegative():
		fmt.Fprintf(s.out, "Profit/Loss: %s 📉\n", pnl.SignedString())
	default:
		fmt.Fprintf(s.out, "Profit/Loss: %s\n", pnl.SignedString())
	}
	return nil
}

func (s *Session) summary([]string) error {
	printMarkdown(s.out, renderer.SummaryMarkdown(s.account.Summary()))
	return nil
}

func (s *Session) history([]string) error {
	printMarkdown(s.out, renderer.TransactionsMarkdown(s.account.Transactions()))
	return nil
}

func (s *Session) showPrices([]string) error {
	printMarkdown(s.out, renderer.PricesMarkdown(s.prices))
	return nil
}

func (s *Session) export(args []string) error {
	txs := s.account.Transactions()
	if err := writeTransactions(args[0], txs); err != nil {
		return err
	}
	s.success.Fprintf(s.out, "✅ Exported %d transactions to %s\n", len(txs), args[0])
	return nil
}

func writeTransactions(filename string, txs []papertrade.Transaction) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot export transactions: %w", err)
	}
	if err := papertrade.EncodeTransactions(f, txs); err != nil {
		f.Close()
		return fmt.Errorf("cannot export transactions to %q: %w", filename, err)
	}
	return f.Close()
}

func (s *Session) help([]string) error {
	fmt.Fprintln(s.out, "Commands:")
	for _, c := range commands() {
		fmt.Fprintf(s.out, "  %-30s %s\n", strings.TrimSpace(c.name+" "+c.args), c.help)
	}
	fmt.Fprintln(s.out, "Commands can be abbreviated, lines starting with # are ignored.")
	return nil
}

func (s *Session) quit([]string) error { return errQuit }
