package cash

import (
	"github.com/iov-one/bazaar/errors"
)

// Cash reserves 1120~1129 error codes
var (
	// ErrBelowMinimum is returned when a transfer would leave an account
	// with less than the minimum balance.
	ErrBelowMinimum = errors.Register(1120, "below minimum balance")

	// ErrInsufficientFunds is returned when the sender does not hold the
	// requested amount.
	ErrInsufficientFunds = errors.Register(1121, "insufficient funds")

	// ErrEmptyAccount is returned when the sender has no wallet.
	ErrEmptyAccount = errors.Register(1122, "empty account")
)
