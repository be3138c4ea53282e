package papertrade

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Quantity is a number of shares. Shares are indivisible.
type Quantity int64

// Q is a convenient factory for Quantity.
func Q[T int | int32 | int64](value T) Quantity { return Quantity(value) }

func (q Quantity) IsPositive() bool         { return q > 0 }
func (q Quantity) IsZero() bool             { return q == 0 }
func (q Quantity) LessThan(p Quantity) bool { return q < p }
func (q Quantity) Add(p Quantity) Quantity  { return q + p }
func (q Quantity) Sub(p Quantity) Quantity  { return q - p }
func (q Quantity) String() string           { return strconv.FormatInt(int64(q), 10) }
func (q Quantity) dec() decimal.Decimal     { return decimal.NewFromInt(int64(q)) }

// ParseQuantity parses a base 10 share count.
func ParseQuantity(s string) (Quantity, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return Quantity(v), nil
}
