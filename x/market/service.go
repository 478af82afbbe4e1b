package market

import (
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/utils"
)

// Currency is the functionality of the currency ledger that the market
// depends on. It is implemented by cash.Controller.
type Currency interface {
	// FreeBalance returns the amount the account can spend without going
	// below its required minimum.
	FreeBalance(db bazaar.ReadOnlyKVStore, addr bazaar.Address, ticker string) (coin.Coin, error)
	// MoveCoins transfers the amount, keeping both accounts at or above
	// their required minimum.
	MoveCoins(db bazaar.KVStore, src, dst bazaar.Address, amount coin.Coin) error
}

// Service exposes the market operations. Callers are expected to be
// authenticated by the host.
type Service struct {
	currency Currency
	registry AssetRegistry
	index    OwnershipIndex
	engine   TransferEngine
	sink     EventSink
}

// NewService returns a market service. A nil sink discards all events.
func NewService(currency Currency, rand Randomness, sink EventSink) *Service {
	if sink == nil {
		sink = discard{}
	}
	index := NewOwnershipIndex()
	registry := NewAssetRegistry(NewIdentityGenerator(rand), index)
	return &Service{
		currency: currency,
		registry: registry,
		index:    index,
		engine:   NewTransferEngine(registry, index),
		sink:     sink,
	}
}

// CreateAsset registers a new asset with a generated attribute, held by
// the caller.
func (s *Service) CreateAsset(info bazaar.BlockInfo, db bazaar.KVStore, caller bazaar.Address) (id []byte, err error) {
	defer func(start time.Time) {
		utils.LogResult(info, start, "create asset", err, "caller", caller.String())
	}(time.Now())

	id, err = s.registry.Create(db, info, caller, nil)
	if err != nil {
		return nil, err
	}
	info.Logger().Info("asset created", "asset", hexID(id))
	s.sink.Emit(Created{Account: caller, AssetID: id})
	return id, nil
}

// SetPrice changes the asking price of an asset held by the caller. A nil
// price takes the asset off sale.
func (s *Service) SetPrice(info bazaar.BlockInfo, db bazaar.KVStore, caller bazaar.Address, id []byte, price *coin.Coin) (err error) {
	defer func(start time.Time) {
		utils.LogResult(info, start, "set price", err, "caller", caller.String(), "asset", hexID(id))
	}(time.Now())

	err = utils.Savepoint(db, func(db bazaar.KVStore) error {
		if err := s.requireOwner(db, caller, id); err != nil {
			return err
		}
		if price != nil {
			if err := price.Validate(); err != nil {
				return errors.Wrap(errors.ErrAmount, err.Error())
			}
			if !price.IsPositive() {
				return errors.Wrap(errors.ErrAmount, "price must be positive")
			}
		}
		return s.registry.Update(db, id, func(a *Asset) error {
			a.Price = coin.Coin{}
			if price != nil {
				a.Price = *price
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	s.sink.Emit(PriceSet{Account: caller, AssetID: id, Price: price.Clone()})
	return nil
}

// Transfer gives an asset held by the caller to another account for free.
func (s *Service) Transfer(info bazaar.BlockInfo, db bazaar.KVStore, caller, to bazaar.Address, id []byte) (err error) {
	defer func(start time.Time) {
		utils.LogResult(info, start, "transfer", err, "caller", caller.String(), "asset", hexID(id))
	}(time.Now())

	if err := to.Validate(); err != nil {
		return errors.Wrap(err, "recipient")
	}
	if caller.Equals(to) {
		return errors.Wrapf(ErrTransferToSelf, "asset %X", id)
	}
	err = utils.Savepoint(db, func(db bazaar.KVStore) error {
		if err := s.requireOwner(db, caller, id); err != nil {
			return err
		}
		if err := s.requireCapacity(db, to); err != nil {
			return err
		}
		return s.engine.MoveOwnership(info, db, id, to)
	})
	if err != nil {
		return err
	}
	s.sink.Emit(Transferred{From: caller, To: to, AssetID: id})
	return nil
}

// Buy pays the bid to the owner of an asset that is for sale and makes
// the caller its new owner. The payment and the ownership change are
// applied together or not at all.
func (s *Service) Buy(info bazaar.BlockInfo, db bazaar.KVStore, caller bazaar.Address, id []byte, bid coin.Coin) (err error) {
	defer func(start time.Time) {
		utils.LogResult(info, start, "buy", err, "caller", caller.String(), "asset", hexID(id), "bid", bid.String())
	}(time.Now())

	var seller bazaar.Address
	err = utils.Savepoint(db, func(db bazaar.KVStore) error {
		asset, err := s.registry.Get(db, id)
		if err != nil {
			return err
		}
		if asset.Owner.Equals(caller) {
			return errors.Wrapf(ErrBuyerIsOwner, "asset %X", id)
		}
		if !asset.ForSale() {
			return errors.Wrapf(ErrNotForSale, "asset %X", id)
		}
		if !bid.SameType(asset.Price) || bid.Compare(asset.Price) < 0 {
			return errors.Wrapf(ErrBidTooLow, "asking %s", asset.Price)
		}
		if err := bid.Validate(); err != nil {
			return errors.Wrap(errors.ErrAmount, err.Error())
		}

		free, err := s.currency.FreeBalance(db, caller, bid.Ticker)
		if err != nil {
			return errors.Wrap(err, "free balance")
		}
		if !free.IsGTE(bid) {
			return errors.Wrapf(ErrInsufficientBalance, "%s available", free)
		}
		if err := s.requireCapacity(db, caller); err != nil {
			return err
		}

		seller = asset.Owner
		if err := s.currency.MoveCoins(db, caller, seller, bid); err != nil {
			return errors.Wrap(err, "payment")
		}
		return s.engine.MoveOwnership(info, db, id, caller)
	})
	if err != nil {
		return err
	}
	s.sink.Emit(Bought{Buyer: caller, Seller: seller, AssetID: id, Price: bid})
	return nil
}

// Asset returns the asset stored under id or ErrNotExist.
func (s *Service) Asset(db bazaar.ReadOnlyKVStore, id []byte) (*Asset, error) {
	return s.registry.Get(db, id)
}

// AssetsOf returns the IDs of all assets held by the account.
func (s *Service) AssetsOf(db bazaar.ReadOnlyKVStore, account bazaar.Address) ([][]byte, error) {
	return s.index.Owned(db, account)
}

// AssetCount returns the number of assets ever created.
func (s *Service) AssetCount(db bazaar.ReadOnlyKVStore) (uint64, error) {
	return s.registry.Count(db)
}

// Seed describes an asset registered at startup.
type Seed struct {
	Owner bazaar.Address `json:"owner"`
	// Attribute is generated when not provided.
	Attribute *Attribute `json:"attribute,omitempty"`
}

// Initialize registers all seeds. Either all of them are registered or
// none. No events are emitted.
func (s *Service) Initialize(info bazaar.BlockInfo, db bazaar.KVStore, seeds []Seed) error {
	return utils.Savepoint(db, func(db bazaar.KVStore) error {
		for i, seed := range seeds {
			id, err := s.registry.Create(db, info.WithTxIndex(uint32(i)), seed.Owner, seed.Attribute)
			if err != nil {
				return errors.Wrapf(err, "asset %d", i)
			}
			info.Logger().Debug("asset created", "asset", hexID(id), "owner", seed.Owner.String())
		}
		return nil
	})
}

func (s *Service) requireOwner(db bazaar.ReadOnlyKVStore, caller bazaar.Address, id []byte) error {
	asset, err := s.registry.Get(db, id)
	if err != nil {
		return err
	}
	if !asset.Owner.Equals(caller) {
		return errors.Wrapf(ErrNotOwner, "asset %X", id)
	}
	return nil
}

func (s *Service) requireCapacity(db bazaar.ReadOnlyKVStore, account bazaar.Address) error {
	ok, err := s.index.HasCapacity(db, account)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrExceedMaxOwned, "account %s", account)
	}
	return nil
}
