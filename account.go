package papertrade

import (
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"
	"sync"
)

// Account is a trading account: a cash balance, share holdings and the log of
// every transaction that changed them.
//
// All methods are safe for concurrent use. Each operation runs under a single
// lock, so no caller ever observes a partially applied transaction.
type Account struct {
	mu             sync.Mutex
	id             string
	initialDeposit Money
	balance        Money
	holdings       map[string]Quantity // never holds a quantity <= 0
	transactions   []Transaction       // append-only
	prices         PriceOracle
	currency       string
	logger         *slog.Logger
}

// Option configures an Account at creation.
type Option func(*Account)

// WithPrices sets the price oracle the account trades against. It defaults to
// DefaultPrices().
func WithPrices(prices PriceOracle) Option {
	return func(a *Account) { a.prices = prices }
}

// WithLogger sets the logger that receives the account diagnostics. Logs are
// discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Account) { a.logger = logger }
}

// NewAccount opens an account with an initial deposit.
//
// The initial deposit is both the opening balance and the first transaction
// of the log. It must be strictly positive. Its currency, when set, must be
// the currency of the price oracle.
func NewAccount(id string, initialDeposit Money, opts ...Option) (*Account, error) {
	a := &Account{
		id:       id,
		holdings: make(map[string]Quantity),
		prices:   DefaultPrices(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	// The oracle answers in its currency, even for unknown symbols. An oracle
	// without currency trades in the currency of the initial deposit.
	a.currency = a.prices.PriceOf("").Currency()
	if a.currency == "" {
		a.currency = initialDeposit.Currency()
	}

	deposit, err := a.checkAmount(initialDeposit)
	if err != nil {
		return nil, fmt.Errorf("cannot open account %q: %w", id, err)
	}
	a.initialDeposit = deposit
	a.balance = deposit
	a.transactions = []Transaction{NewDeposit(deposit)}
	a.logger.Info("account opened", "account", id, "deposit", deposit)
	return a, nil
}

// checkAmount validates a cash amount and stamps it with the account currency.
func (a *Account) checkAmount(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return amount, fmt.Errorf("%w, got %s", ErrInvalidAmount, amount.Decimal())
	}
	switch amount.Currency() {
	case "":
		return amount.withCurrency(a.currency), nil
	case a.currency:
		return amount, nil
	default:
		return amount, fmt.Errorf("%w: got %s, want %s", ErrCurrencyMismatch, amount.Currency(), a.currency)
	}
}

func checkQuantity(quantity Quantity) error {
	if !quantity.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrInvalidQuantity, quantity)
	}
	return nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// Currency returns the currency of the account cash.
func (a *Account) Currency() string { return a.currency }

// InitialDeposit returns the amount the account was opened with.
func (a *Account) InitialDeposit() Money { return a.initialDeposit }

// Balance returns the cash balance.
func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Deposit adds cash to the account.
func (a *Account) Deposit(amount Money) error {
	amount, err := a.checkAmount(amount)
	if err != nil {
		return fmt.Errorf("cannot deposit: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, NewDeposit(amount))
	a.logger.Debug("deposit", "account", a.id, "amount", amount, "balance", a.balance)
	return nil
}

// Withdraw takes cash out of the account.
//
// It returns false, leaving the account unchanged, if the balance does not
// cover the amount.
func (a *Account) Withdraw(amount Money) (bool, error) {
	amount, err := a.checkAmount(amount)
	if err != nil {
		return false, fmt.Errorf("cannot withdraw: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance.LessThan(amount) {
		a.logger.Debug("withdraw refused: insufficient funds", "account", a.id, "amount", amount, "balance", a.balance)
		return false, nil
	}
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, NewWithdraw(amount))
	a.logger.Debug("withdraw", "account", a.id, "amount", amount, "balance", a.balance)
	return true, nil
}

// BuyShares buys 'quantity' shares of 'symbol' at the current oracle price.
//
// It returns false, leaving the account unchanged, if the symbol has no price
// or if the balance does not cover the cost. The resulting holding must fit in
// a Quantity.
func (a *Account) BuyShares(symbol string, quantity Quantity) (bool, error) {
	if err := checkQuantity(quantity); err != nil {
		return false, fmt.Errorf("cannot buy %s: %w", symbol, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if pos := a.holdings[symbol]; pos > math.MaxInt64-quantity {
		return false, fmt.Errorf("cannot buy %s: %w: holding %s shares, buying %s more", symbol, ErrQuantityOverflow, pos, quantity)
	}

	price := a.prices.PriceOf(symbol)
	if price.IsZero() {
		a.logger.Debug("buy refused: unknown symbol", "account", a.id, "symbol", symbol)
		return false, nil
	}
	cost := price.Mul(quantity)
	if a.balance.LessThan(cost) {
		a.logger.Debug("buy refused: insufficient funds", "account", a.id, "symbol", symbol, "cost", cost, "balance", a.balance)
		return false, nil
	}

	a.balance = a.balance.Sub(cost)
	a.holdings[symbol] = a.holdings[symbol].Add(quantity)
	a.transactions = append(a.transactions, NewBuy(symbol, quantity, price))
	a.logger.Debug("buy", "account", a.id, "symbol", symbol, "quantity", quantity, "price", price, "balance", a.balance)
	return true, nil
}

// SellShares sells 'quantity' shares of 'symbol' at the current oracle price.
//
// It returns false, leaving the account unchanged, if the position is smaller
// than 'quantity' or if the symbol has no price anymore.
func (a *Account) SellShares(symbol string, quantity Quantity) (bool, error) {
	if err := checkQuantity(quantity); err != nil {
		return false, fmt.Errorf("cannot sell %s: %w", symbol, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	pos := a.holdings[symbol]
	if pos.LessThan(quantity) {
		a.logger.Debug("sell refused: insufficient shares", "account", a.id, "symbol", symbol, "quantity", quantity, "position", pos)
		return false, nil
	}
	price := a.prices.PriceOf(symbol)
	if price.IsZero() {
		a.logger.Debug("sell refused: unknown symbol", "account", a.id, "symbol", symbol)
		return false, nil
	}

	a.balance = a.balance.Add(price.Mul(quantity))
	if pos = pos.Sub(quantity); pos.IsZero() {
		delete(a.holdings, symbol)
	} else {
		a.holdings[symbol] = pos
	}
	a.transactions = append(a.transactions, NewSell(symbol, quantity, price))
	a.logger.Debug("sell", "account", a.id, "symbol", symbol, "quantity", quantity, "price", price, "balance", a.balance)
	return true, nil
}

// Position returns the number of shares of 'symbol' held, zero if none.
func (a *Account) Position(symbol string) Quantity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.holdings[symbol]
}

// Holdings returns a copy of the share count per symbol.
func (a *Account) Holdings() map[string]Quantity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return maps.Clone(a.holdings)
}

// Transactions returns a copy of the transaction log, oldest first.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.transactions)
}

// PortfolioValue returns the value of all holdings at current oracle prices.
func (a *Account) PortfolioValue() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.portfolioValue()
}

func (a *Account) portfolioValue() Money {
	total := M(0, a.currency)
	for symbol, quantity := range a.holdings {
		total = total.Add(a.prices.PriceOf(symbol).Mul(quantity))
	}
	return total
}

// ProfitOrLoss returns the net worth (cash plus portfolio value) minus the
// initial deposit.
//
// Cash withdrawn from the account is not part of the net worth anymore, so a
// withdrawal shows up as a loss.
func (a *Account) ProfitOrLoss() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance.Add(a.portfolioValue()).Sub(a.initialDeposit)
}

// Position is a line of a Summary.
type Position struct {
	Symbol   string
	Quantity Quantity
	Price    Money // current price of one share
	Value    Money // Price * Quantity
}

// Summary is a consistent snapshot of an account valuation.
type Summary struct {
	AccountID      string
	Currency       string
	InitialDeposit Money
	Balance        Money
	PortfolioValue Money
	ProfitOrLoss   Money
	Positions      []Position // sorted by symbol
	Transactions   int        // number of transactions in the log
}

// Summary returns the account valuation, computed under a single lock.
func (a *Account) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Summary{
		AccountID:      a.id,
		Currency:       a.currency,
		InitialDeposit: a.initialDeposit,
		Balance:        a.balance,
		PortfolioValue: M(0, a.currency),
		Transactions:   len(a.transactions),
	}
	for _, symbol := range slices.Sorted(maps.Keys(a.holdings)) {
		quantity := a.holdings[symbol]
		price := a.prices.PriceOf(symbol)
		value := price.Mul(quantity)
		s.Positions = append(s.Positions, Position{Symbol: symbol, Quantity: quantity, Price: price, Value: value})
		s.PortfolioValue = s.PortfolioValue.Add(value)
	}
	s.ProfitOrLoss = s.Balance.Add(s.PortfolioValue).Sub(s.InitialDeposit)
	return s
}
