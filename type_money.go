package papertrade

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates a Money from a value in major units.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount like "1000" or "12.50".
func ParseMoney(s, currency string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d, cur: currency}, nil
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// bounds of the minor unit amounts go-money can format.
var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// String returns the money formatted in its currency, e.g. "$1,250.00".
//
// Amounts too large for go-money are written as a plain decimal followed by
// the currency code, e.g. "1000000000000000000000.00 USD".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if dec.LessThan(minMinorUnits) || dec.GreaterThan(maxMinorUnits) {
		return strings.TrimSpace(m.value.StringFixed(int32(cur.Fraction)) + " " + m.cur)
	}
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string               { return m.cur }
func (m Money) Decimal() decimal.Decimal       { return m.value }
func (m Money) Equal(n Money) bool             { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                   { return m.value.IsZero() }
func (m Money) IsPositive() bool               { return m.value.IsPositive() }
func (m Money) IsNegative() bool               { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool          { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool       { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                     { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(q Quantity) Money           { return Money{value: m.value.Mul(q.dec()), cur: m.cur} }
func (m Money) withCurrency(code string) Money { return Money{value: m.value, cur: code} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the amount rounded to the currency precision.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", m.rounded())
	w.Optional("currency", m.cur)
	return w.MarshalJSON()
}

func (m Money) rounded() decimal.Decimal {
	if m.cur == "" {
		return m.value
	}
	return m.value.Round(int32(m.currency().Fraction))
}
