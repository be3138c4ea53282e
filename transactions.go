package papertrade

// CommandType is a typed string for identifying transactions.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdDeposit  CommandType = "deposit"
	CmdWithdraw CommandType = "withdraw"
	CmdBuy      CommandType = "buy"
	CmdSell     CommandType = "sell"
)

// Transaction is a record of the account transaction log.
//
// It is one of Deposit, Withdraw, Buy or Sell. Records are values: once
// appended to the log they are never modified.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction (e.g., "buy", "sell").
	Equal(Transaction) bool
}

type baseCmd struct {
	Command CommandType
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType { return t.Command }

func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	return w.MarshalJSON()
}

// secCmd is a component for share transactions (buy, sell).
type secCmd struct {
	baseCmd
	Security string   // Security is the ticker symbol of the shares traded.
	Quantity Quantity // Quantity is the number of shares traded.
	Price    Money    // Price is the price of one share at the time of the trade.
}

// Total returns the cash value of the trade.
func (t secCmd) Total() Money { return t.Price.Mul(t.Quantity) }

func (t secCmd) equal(o secCmd) bool {
	return t.baseCmd == o.baseCmd && t.Security == o.Security && t.Quantity == o.Quantity && t.Price.Equal(o.Price)
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.rounded())
	w.Optional("currency", t.Price.Currency())
	return w.MarshalJSON()
}

// cashCmd is a component for cash transactions (deposit, withdraw).
type cashCmd struct {
	baseCmd
	Amount Money // Amount is the cash moved in or out of the account.
}

// MarshalJSON implements the json.Marshaler interface for cashCmd.
func (t cashCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// Deposit records cash added to the account.
type Deposit struct{ cashCmd }

// NewDeposit creates a new Deposit transaction.
func NewDeposit(amount Money) Deposit {
	return Deposit{cashCmd{baseCmd: baseCmd{Command: CmdDeposit}, Amount: amount}}
}

func (t Deposit) Equal(other Transaction) bool {
	o, ok := other.(Deposit)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Withdraw records cash taken out of the account.
type Withdraw struct{ cashCmd }

// NewWithdraw creates a new Withdraw transaction.
func NewWithdraw(amount Money) Withdraw {
	return Withdraw{cashCmd{baseCmd: baseCmd{Command: CmdWithdraw}, Amount: amount}}
}

func (t Withdraw) Equal(other Transaction) bool {
	o, ok := other.(Withdraw)
	return ok && t.baseCmd == o.baseCmd && t.Amount.Equal(o.Amount)
}

// Buy records a purchase of shares, Price is the price paid per share.
type Buy struct{ secCmd }

// NewBuy creates a new Buy transaction.
func NewBuy(security string, quantity Quantity, price Money) Buy {
	return Buy{secCmd{baseCmd: baseCmd{Command: CmdBuy}, Security: security, Quantity: quantity, Price: price}}
}

func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd.equal(o.secCmd)
}

// Sell records a sale of shares, Price is the price received per share.
type Sell struct{ secCmd }

// NewSell creates a new Sell transaction.
func NewSell(security string, quantity Quantity, price Money) Sell {
	return Sell{secCmd{baseCmd: baseCmd{Command: CmdSell}, Security: security, Quantity: quantity, Price: price}}
}

func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd.equal(o.secCmd)
}
