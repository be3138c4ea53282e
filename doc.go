// Package papertrade implements a paper trading account: a single cash
// account that can buy and sell shares against a fixed price table, and
// report what it is worth.
//
// The core functionalities include:
//   - Account Ledger: deposits, withdrawals, share purchases and sales, each
//     validated and applied atomically, and recorded in an append-only
//     transaction log.
//   - Price Oracle: an immutable table mapping a ticker symbol to its price.
//     Unknown symbols are priced at zero.
//   - Valuation: portfolio value and profit or loss relative to the initial
//     deposit, always computed from the current oracle prices.
//   - Export: encoding of the transaction log as JSONL, one transaction per
//     line.
//
// Invalid inputs (non-positive amounts or quantities, foreign currencies,
// holdings beyond the int64 range) are reported as errors wrapping one of the
// Err* sentinels. Legitimate refusals
// (insufficient funds, insufficient shares, unknown symbol) are reported as a
// false return and leave the account untouched.
//
// This package serves as the foundational logic for the `paper` command-line
// tool.
package papertrade
