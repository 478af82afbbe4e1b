package utils

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Savepoint will isolate all data written by fn, and commit or roll back
// to the savepoint based on the returned error.
//
// The store must support cache wrapping, as there is no way to undo the
// writes of a failed call otherwise.
func Savepoint(db bazaar.KVStore, fn func(bazaar.KVStore) error) error {
	cstore, ok := db.(bazaar.CacheableKVStore)
	if !ok {
		return errors.Wrapf(errors.ErrHuman, "%T does not support savepoints", db)
	}

	cache := cstore.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "writing savepoint")
	}
	return nil
}
