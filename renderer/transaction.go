package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/papertrade"
)

// Transaction renders a transaction to a string.
func Transaction(tx papertrade.Transaction) string {
	switch v := tx.(type) {
	case papertrade.Buy:
		return fmt.Sprintf("Bought %s shares of %s at %s (%s)", v.Quantity, v.Security, v.Price, v.Total())
	case papertrade.Sell:
		return fmt.Sprintf("Sold %s shares of %s at %s (%s)", v.Quantity, v.Security, v.Price, v.Total())
	case papertrade.Deposit:
		return fmt.Sprintf("Deposited %s", v.Amount)
	case papertrade.Withdraw:
		return fmt.Sprintf("Withdrew %s", v.Amount)
	default:
		return string(tx.What())
	}
}

// TransactionsMarkdown renders the transaction log as a numbered table, oldest first.
func TransactionsMarkdown(txs []papertrade.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| # | Command | Details |")
	fmt.Fprintln(&b, "|---:|:---|:---|")
	for i, tx := range txs {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, tx.What(), Transaction(tx))
	}
	return b.String()
}

// PricesMarkdown renders the quoted symbols of a price table.
func PricesMarkdown(p *papertrade.PriceTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Prices (%s)\n\n", p.Currency())
	fmt.Fprintln(&b, "| Symbol | Price |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, symbol := range p.Symbols() {
		fmt.Fprintf(&b, "| %s | %s |\n", symbol, p.PriceOf(symbol))
	}
	return b.String()
}
