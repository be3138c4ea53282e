package papertrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"

	"github.com/PaesslerAG/jsonpath"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PriceOracle returns the current price of a symbol, or a zero Money when the
// symbol is unknown.
//
// All prices, including the zero price, are expressed in a single currency.
// An oracle answering prices without currency trades in the currency of the
// account it serves.
type PriceOracle interface {
	PriceOf(symbol string) Money
}

// PriceTable is an immutable PriceOracle backed by a fixed symbol to price map.
//
// Symbols are matched exactly: no case folding, no trimming.
type PriceTable struct {
	currency string
	prices   map[string]decimal.Decimal
}

// DefaultPrices returns the reference price table.
func DefaultPrices() *PriceTable {
	return &PriceTable{
		currency: "USD",
		prices: map[string]decimal.Decimal{
			"AAPL":  decimal.NewFromInt(150),
			"TSLA":  decimal.NewFromInt(800),
			"GOOGL": decimal.NewFromInt(2500),
		},
	}
}

// NewPriceTable creates a price table in 'currency' from a copy of 'prices'.
//
// Every price must be strictly positive, a zero price would be
// indistinguishable from an unknown symbol.
func NewPriceTable(currency string, prices map[string]decimal.Decimal) (*PriceTable, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, err
	}
	for symbol, price := range prices {
		if symbol == "" {
			return nil, errors.New("price table contains an empty symbol")
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("price of %q must be positive, got %s", symbol, price)
		}
	}
	return &PriceTable{currency: currency, prices: maps.Clone(prices)}, nil
}

// PriceOf returns the price of one share of 'symbol'.
func (p *PriceTable) PriceOf(symbol string) Money {
	return Money{value: p.prices[symbol], cur: p.currency}
}

// Currency returns the currency all prices are expressed in.
func (p *PriceTable) Currency() string { return p.currency }

// Symbols returns the known symbols in alphabetical order.
func (p *PriceTable) Symbols() []string {
	return slices.Sorted(maps.Keys(p.prices))
}

// DecodePriceTable reads a JSON document from r and builds a price table from
// the object found at the JSONPath expression 'path'. An empty path selects
// the document root. The object members are symbol to price pairs:
//
//	{"quotes": {"AAPL": 150, "TSLA": 800}}
//
// is decoded with path "$.quotes".
func DecodePriceTable(r io.Reader, path, currency string) (*PriceTable, error) {
	if path == "" {
		path = "$"
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("price table is not a valid json: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q in price table: %w", path, err)
	}
	// a filter expression answers a list, keep its single answer if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	jobj, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q must select an object of prices, got %T", path, jval)
	}

	prices := make(map[string]decimal.Decimal, len(jobj))
	for symbol, v := range jobj {
		var price decimal.Decimal
		switch n := v.(type) {
		case json.Number:
			price, err = decimal.NewFromString(n.String())
			if err != nil {
				return nil, fmt.Errorf("price of %q: %w", symbol, err)
			}
		case float64:
			price = decimal.NewFromFloat(n)
		default:
			return nil, fmt.Errorf("price of %q must be a number, got %T", symbol, v)
		}
		prices[symbol] = price
	}
	return NewPriceTable(currency, prices)
}

// currencyCodeRegex checks for the format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidateCurrency checks that 'code' is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if code == "" {
		return errors.New("currency is missing")
	}
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency code format %q: must be 3 uppercase letters", code)
	}
	// GetCurrency folds the case, the format check above does not.
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}
