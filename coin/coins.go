package coin

import (
	"sort"
	"strings"

	"github.com/iov-one/bazaar/errors"
)

// Coins is a set of positive amounts in distinct currencies, kept sorted
// by ticker. Zero amounts are never part of the set.
type Coins []Coin

// CoinsOf builds a normalized set out of given amounts.
func CoinsOf(cs ...Coin) (Coins, error) {
	var res Coins
	for _, c := range cs {
		var err error
		if res, err = res.Add(c); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Balance returns the amount of given currency. The result is a zero
// coin of that currency if none is held.
func (cs Coins) Balance(ticker string) Coin {
	if i, ok := cs.find(ticker); ok {
		return cs[i]
	}
	return Coin{Ticker: ticker}
}

// Contains returns true if the set holds at least the given amount.
func (cs Coins) Contains(c Coin) bool {
	return cs.Balance(c.Ticker).Compare(c) >= 0
}

// IsEmpty returns true if no currency is held.
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// Add returns a new set with given amount added. A negative amount is
// subtracted. The receiver is not modified.
func (cs Coins) Add(c Coin) (Coins, error) {
	if c.IsZero() {
		return cs.Clone(), nil
	}
	if !IsCC(c.Ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid currency: %q", c.Ticker)
	}

	res := cs.Clone()
	i, ok := res.find(c.Ticker)
	if !ok {
		if !c.IsPositive() {
			return nil, errors.Wrapf(errors.ErrAmount, "no %s to subtract from", c.Ticker)
		}
		norm, err := c.normalize()
		if err != nil {
			return nil, err
		}
		res = append(res, Coin{})
		copy(res[i+1:], res[i:])
		res[i] = norm
		return res, nil
	}

	sum, err := res[i].Add(c)
	if err != nil {
		return nil, err
	}
	switch {
	case sum.IsZero():
		res = append(res[:i], res[i+1:]...)
	case !sum.IsPositive():
		return nil, errors.Wrapf(errors.ErrAmount, "%s would be negative", c.Ticker)
	default:
		res[i] = sum
	}
	return res, nil
}

// Subtract returns a new set with given amount removed. It fails if there
// is not enough in the set.
func (cs Coins) Subtract(c Coin) (Coins, error) {
	return cs.Add(c.Negative())
}

// Clone returns an independent copy of the set.
func (cs Coins) Clone() Coins {
	if len(cs) == 0 {
		return nil
	}
	res := make(Coins, len(cs))
	copy(res, cs)
	return res
}

// Validate requires all amounts to be valid, positive and of distinct,
// sorted currencies.
func (cs Coins) Validate() error {
	for i, c := range cs {
		if err := c.Validate(); err != nil {
			return err
		}
		if !c.IsPositive() {
			return errors.Wrapf(errors.ErrAmount, "non positive %s", c)
		}
		if i > 0 && cs[i-1].Ticker >= c.Ticker {
			return errors.Wrap(errors.ErrState, "coins not sorted or duplicated")
		}
	}
	return nil
}

func (cs Coins) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// find returns the index of given ticker or the index it should be
// inserted at.
func (cs Coins) find(ticker string) (int, bool) {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].Ticker >= ticker })
	return i, i < len(cs) && cs[i].Ticker == ticker
}
