package papertrade

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{USD(250), "$250.00"},
		{USD(1250.5), "$1,250.50"},
		{USD(0.004), "$0.00"},
		{USD(0.005), "$0.01"},
		{USD(-400), "-$400.00"},
		{USD(1e30), "1000000000000000000000000000000.00 USD"},
		{USD(-1e30), "-1000000000000000000000000000000.00 USD"},
		{M(1e30, ""), "1000000000000000000000000000000.00"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{USD(100), "+$100.00"},
		{USD(0), "$0.00"},
		{USD(-100), "-$100.00"},
	}
	for _, tc := range testCases {
		if got := tc.money.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	// Exact decimal arithmetic: 0.1 + 0.2 is 0.3.
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got.Decimal())
	}
	if got := USD(150).Mul(7); !got.Equal(USD(1050)) {
		t.Errorf("150 * 7 = %v, want 1050", got)
	}
	if got := M(10, "").Add(USD(5)); !got.Equal(USD(15)) {
		t.Errorf("weak currency Add = %v (%q), want %v", got, got.Currency(), USD(15))
	}
	if got := USD(5).Sub(USD(7)); !got.IsNegative() {
		t.Errorf("5 - 7 = %v, want a negative amount", got)
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("USD + EUR did not panic")
		}
	}()
	USD(1).Add(EUR(1))
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney("12.50", "USD")
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if !got.Equal(USD(12.5)) {
		t.Errorf("ParseMoney(12.50) = %v, want %v", got, USD(12.5))
	}
	if _, err := ParseMoney("12,50", "USD"); err == nil {
		t.Errorf("ParseMoney(12,50) succeeded, want an error")
	}
}

func TestParseQuantity(t *testing.T) {
	if got, err := ParseQuantity("42"); err != nil || got != 42 {
		t.Errorf("ParseQuantity(42) = %v, %v; want 42, nil", got, err)
	}
	for _, s := range []string{"1.5", "ten", ""} {
		if _, err := ParseQuantity(s); err == nil {
			t.Errorf("ParseQuantity(%q) succeeded, want an error", s)
		}
	}
}
