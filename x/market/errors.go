package market

import (
	"github.com/iov-one/bazaar/errors"
)

var (
	ErrCountOverflow       = errors.Register(1100, "asset count overflow")
	ErrExceedMaxOwned      = errors.Register(1101, "account owns too many assets")
	ErrBuyerIsOwner        = errors.Register(1102, "buyer is the asset owner")
	ErrTransferToSelf      = errors.Register(1103, "transfer to self")
	ErrAlreadyExists       = errors.Register(1104, "asset already exists")
	ErrNotExist            = errors.Register(1105, "asset does not exist")
	ErrNotOwner            = errors.Register(1106, "not the asset owner")
	ErrNotForSale          = errors.Register(1107, "asset not for sale")
	ErrBidTooLow           = errors.Register(1108, "bid price too low")
	ErrInsufficientBalance = errors.Register(1109, "not enough free balance")

	// ErrInvariant is returned when the stored state contradicts itself.
	// It always indicates a bug.
	ErrInvariant = errors.Register(1110, "broken invariant")
)
