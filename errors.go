package papertrade

import "errors"

var (
	// ErrInvalidAmount is returned when a cash amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrCurrencyMismatch is returned when a cash amount is expressed in a
	// currency the account does not hold.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidQuantity is returned when a share quantity is not strictly positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrQuantityOverflow is returned when a purchase would grow a holding
	// beyond the largest representable share count.
	ErrQuantityOverflow = errors.New("quantity too large")
)
