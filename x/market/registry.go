package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	"github.com/iov-one/bazaar/x/utils"
)

const assetBucket = "asset"

// AssetRegistry stores assets by their ID and counts them.
type AssetRegistry struct {
	bucket  orm.ModelBucket
	counter orm.Counter
	index   OwnershipIndex
	ids     IdentityGenerator
}

// NewAssetRegistry returns a registry that generates attributes with ids
// and registers new assets in index.
func NewAssetRegistry(ids IdentityGenerator, index OwnershipIndex) AssetRegistry {
	return AssetRegistry{
		bucket:  orm.NewModelBucket(assetBucket, &Asset{}),
		counter: orm.NewCounter(assetBucket, "count"),
		index:   index,
		ids:     ids,
	}
}

// Create registers a new asset held by owner and returns its ID. If attr
// is nil, a new attribute is generated.
//
// All checks are done before the first write and the writes are applied
// together or not at all.
func (r AssetRegistry) Create(db bazaar.KVStore, info bazaar.BlockInfo, owner bazaar.Address, attr *Attribute) ([]byte, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}

	var id []byte
	err := utils.Savepoint(db, func(db bazaar.KVStore) error {
		var a Attribute
		if attr != nil {
			a = *attr
		} else {
			generated, err := r.ids.GenerateAttribute(db, info)
			if err != nil {
				return err
			}
			a = generated
		}

		var err error
		id, err = ComputeID(a, owner)
		if err != nil {
			return err
		}

		if err := r.counter.CanIncrement(db); err != nil {
			if errors.ErrOverflow.Is(err) {
				return errors.Wrap(ErrCountOverflow, err.Error())
			}
			return err
		}
		switch err := r.bucket.Has(db, id); {
		case err == nil:
			return errors.Wrapf(ErrAlreadyExists, "asset %X", id)
		case !errors.ErrNotFound.Is(err):
			return err
		}

		if err := r.index.Add(db, owner, id); err != nil {
			return err
		}
		if err := r.bucket.Put(db, id, &Asset{Attribute: a, Owner: owner}); err != nil {
			return err
		}
		_, err = r.counter.Increment(db)
		return err
	})
	if err != nil {
		return nil, err
	}
	return id, nil
}

// Get returns the asset stored under id or ErrNotExist.
func (r AssetRegistry) Get(db bazaar.ReadOnlyKVStore, id []byte) (*Asset, error) {
	var a Asset
	if err := r.bucket.One(db, id, &a); err != nil {
		if errors.ErrNotFound.Is(err) {
			return nil, errors.Wrapf(ErrNotExist, "asset %X", id)
		}
		return nil, err
	}
	return &a, nil
}

// Has returns true if an asset is stored under id.
func (r AssetRegistry) Has(db bazaar.ReadOnlyKVStore, id []byte) (bool, error) {
	switch err := r.bucket.Has(db, id); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, err
	}
}

// Update loads the asset, applies fn and stores the result. Nothing is
// written when fn fails.
func (r AssetRegistry) Update(db bazaar.KVStore, id []byte, fn func(*Asset) error) error {
	a, err := r.Get(db, id)
	if err != nil {
		return err
	}
	if err := fn(a); err != nil {
		return err
	}
	return r.bucket.Put(db, id, a)
}

// Count returns the number of assets ever created.
func (r AssetRegistry) Count(db bazaar.ReadOnlyKVStore) (uint64, error) {
	return r.counter.Value(db)
}

// Scan calls fn for every stored asset, ordered by ID.
func (r AssetRegistry) Scan(db bazaar.ReadOnlyKVStore, fn func(id []byte, a *Asset) error) error {
	return r.bucket.Scan(db, func(key []byte, m orm.Model) error {
		a, ok := m.(*Asset)
		if !ok {
			return errors.WithType(errors.ErrType, m)
		}
		return fn(key, a)
	})
}
