package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
)

// OwnershipIndex keeps the list of assets held by every account. An
// account that holds nothing has no entry.
type OwnershipIndex struct {
	bucket orm.ModelBucket
}

// NewOwnershipIndex returns an index using the default bucket.
func NewOwnershipIndex() OwnershipIndex {
	return OwnershipIndex{
		bucket: orm.NewModelBucket("owned", &OwnedAssets{}),
	}
}

// Owned returns the IDs of all assets held by the account, in the order
// they were acquired, except that removals move the last asset into the
// freed position.
func (ix OwnershipIndex) Owned(db bazaar.ReadOnlyKVStore, account bazaar.Address) ([][]byte, error) {
	owned, err := ix.load(db, account)
	if err != nil {
		return nil, err
	}
	return owned.IDs, nil
}

// HasCapacity returns true if the account can receive one more asset.
func (ix OwnershipIndex) HasCapacity(db bazaar.ReadOnlyKVStore, account bazaar.Address) (bool, error) {
	conf, err := LoadConfig(db)
	if err != nil {
		return false, err
	}
	owned, err := ix.load(db, account)
	if err != nil {
		return false, err
	}
	return len(owned.IDs) < int(conf.MaxOwned), nil
}

// Add appends the asset to the account's list.
func (ix OwnershipIndex) Add(db bazaar.KVStore, account bazaar.Address, id []byte) error {
	ok, err := ix.HasCapacity(db, account)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrExceedMaxOwned, "account %s", account)
	}
	owned, err := ix.load(db, account)
	if err != nil {
		return err
	}
	if owned.index(id) >= 0 {
		return errors.Wrapf(ErrInvariant, "asset %X already held by %s", id, account)
	}
	owned.IDs = append(owned.IDs, append([]byte(nil), id...))
	return ix.bucket.Put(db, account, owned)
}

// Remove takes the asset out of the account's list, moving the last
// element of the list into its place. The account not holding the asset
// means the index is broken and ErrInvariant is returned.
func (ix OwnershipIndex) Remove(db bazaar.KVStore, account bazaar.Address, id []byte) error {
	owned, err := ix.load(db, account)
	if err != nil {
		return err
	}
	i := owned.index(id)
	if i < 0 {
		return errors.Wrapf(ErrInvariant, "asset %X not indexed for %s", id, account)
	}
	last := len(owned.IDs) - 1
	owned.IDs[i] = owned.IDs[last]
	owned.IDs = owned.IDs[:last]

	if len(owned.IDs) == 0 {
		return ix.bucket.Delete(db, account)
	}
	return ix.bucket.Put(db, account, owned)
}

// Scan calls fn for every account that holds assets.
func (ix OwnershipIndex) Scan(db bazaar.ReadOnlyKVStore, fn func(account bazaar.Address, ids [][]byte) error) error {
	return ix.bucket.Scan(db, func(key []byte, m orm.Model) error {
		owned, ok := m.(*OwnedAssets)
		if !ok {
			return errors.WithType(errors.ErrType, m)
		}
		return fn(bazaar.Address(key), owned.IDs)
	})
}

func (ix OwnershipIndex) load(db bazaar.ReadOnlyKVStore, account bazaar.Address) (*OwnedAssets, error) {
	var owned OwnedAssets
	switch err := ix.bucket.One(db, account, &owned); {
	case err == nil:
		return &owned, nil
	case errors.ErrNotFound.Is(err):
		return &OwnedAssets{}, nil
	default:
		return nil, err
	}
}
