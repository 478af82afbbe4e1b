package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/utils"
)

// TransferEngine changes the owner of assets, keeping the registry and
// the ownership index in sync.
type TransferEngine struct {
	registry AssetRegistry
	index    OwnershipIndex
}

// NewTransferEngine returns an engine operating on the given registry and
// index.
func NewTransferEngine(registry AssetRegistry, index OwnershipIndex) TransferEngine {
	return TransferEngine{registry: registry, index: index}
}

// MoveOwnership makes to the owner of the asset and takes it off sale.
// Either all changes are written or none.
func (e TransferEngine) MoveOwnership(info bazaar.BlockInfo, db bazaar.KVStore, id []byte, to bazaar.Address) error {
	return utils.Savepoint(db, func(db bazaar.KVStore) error {
		asset, err := e.registry.Get(db, id)
		if err != nil {
			return err
		}
		if err := e.index.Remove(db, asset.Owner, id); err != nil {
			if ErrInvariant.Is(err) {
				info.Logger().Error("ownership index out of sync",
					"asset", hexID(id), "owner", asset.Owner.String(), "err", err)
			}
			return err
		}
		err = e.registry.Update(db, id, func(a *Asset) error {
			a.Owner = to
			a.Price = coin.Coin{}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "update asset")
		}
		return e.index.Add(db, to, id)
	})
}
