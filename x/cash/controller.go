package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
)

// Controller is the functionality needed by other extensions to use
// account balances.
type Controller interface {
	// Balance returns all coins held by the account.
	Balance(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (coin.Coins, error)

	// FreeBalance returns how much of given currency the account can
	// send without going below the minimum balance.
	FreeBalance(db bazaar.ReadOnlyKVStore, addr bazaar.Address, ticker string) (coin.Coin, error)

	// MoveCoins moves the given amount from src to dst, keeping both
	// accounts at or above the minimum balance.
	MoveCoins(db bazaar.KVStore, src, dst bazaar.Address, amount coin.Coin) error

	// IssueCoins adds the given amount to the destination account.
	IssueCoins(db bazaar.KVStore, dst bazaar.Address, amount coin.Coin) error
}

// BaseController is a simple implementation of Controller
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the given bucket
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns all coins held by the account. An account without a
// wallet holds nothing.
func (c BaseController) Balance(db bazaar.ReadOnlyKVStore, addr bazaar.Address) (coin.Coins, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, nil
	}
	return w.Coins(), nil
}

// FreeBalance is the balance in given currency above the minimum balance.
func (c BaseController) FreeBalance(db bazaar.ReadOnlyKVStore, addr bazaar.Address, ticker string) (coin.Coin, error) {
	conf, err := loadConf(db)
	if err != nil {
		return coin.Coin{}, err
	}
	coins, err := c.Balance(db, addr)
	if err != nil {
		return coin.Coin{}, err
	}
	free := coins.Balance(ticker)
	if conf.MinimumBalance.Ticker != ticker {
		return free, nil
	}
	free, err = free.Subtract(conf.MinimumBalance)
	if err != nil {
		return coin.Coin{}, err
	}
	if !free.IsPositive() {
		return coin.Coin{Ticker: ticker}, nil
	}
	return free, nil
}

// MoveCoins moves the given amount from src to dst.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails.
func (c BaseController) MoveCoins(db bazaar.KVStore, src, dst bazaar.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	if src.Equals(dst) {
		return errors.Wrap(errors.ErrInput, "sender and recipient are the same")
	}
	conf, err := loadConf(db)
	if err != nil {
		return err
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrEmptyAccount, "%s", src)
	}
	if !sender.Coins().Contains(amount) {
		return errors.Wrapf(ErrInsufficientFunds, "%s holds %s", src, sender.Coins().Balance(amount.Ticker))
	}
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if !keepsMinimum(sender.Coins(), conf.MinimumBalance, amount.Ticker) {
		return errors.Wrapf(ErrBelowMinimum, "sender would hold %s", sender.Coins().Balance(amount.Ticker))
	}

	recipient, err := c.bucket.GetOrCreate(db, dst)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	if !keepsMinimum(recipient.Coins(), conf.MinimumBalance, amount.Ticker) {
		return errors.Wrapf(ErrBelowMinimum, "recipient would hold %s", recipient.Coins().Balance(amount.Ticker))
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) IssueCoins(db bazaar.KVStore, dst bazaar.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "non-positive amount")
	}
	recipient, err := c.bucket.GetOrCreate(db, dst)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// keepsMinimum returns false if the account holds less than the minimum
// of the transferred currency.
func keepsMinimum(coins coin.Coins, minimum coin.Coin, ticker string) bool {
	if minimum.IsZero() || minimum.Ticker != ticker {
		return true
	}
	return coins.Balance(ticker).IsGTE(minimum)
}
