package papertrade

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// newAccount opens an account on the default prices or fails the test.
func newAccount(t *testing.T, deposit float64, opts ...Option) *Account {
	t.Helper()
	a, err := NewAccount("test", USD(deposit), opts...)
	if err != nil {
		t.Fatalf("NewAccount(%v) error = %v", deposit, err)
	}
	return a
}

// mustBuy buys shares or fails the test.
func mustBuy(t *testing.T, a *Account, symbol string, quantity Quantity) {
	t.Helper()
	ok, err := a.BuyShares(symbol, quantity)
	if err != nil || !ok {
		t.Fatalf("BuyShares(%q, %v) = %v, %v; want true, nil", symbol, quantity, ok, err)
	}
}

// fakePrices is a mutable PriceOracle to simulate price moves.
type fakePrices map[string]float64

func (p fakePrices) PriceOf(symbol string) Money { return USD(p[symbol]) }
