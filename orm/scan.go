package orm

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Scan calls fn for every element stored in the bucket, in ascending key
// order. Keys passed to fn are stripped of the bucket prefix. Iteration
// stops on the first error returned by fn.
func (b Bucket) Scan(db bazaar.ReadOnlyKVStore, fn func(key []byte, obj Object) error) error {
	start, end := prefixRange(b.prefix)
	it, err := db.Iterator(start, end)
	if err != nil {
		return errors.Wrap(err, "prefix scan")
	}
	defer it.Close()

	for ; it.Valid(); it.Next() {
		key := it.Key()[len(b.prefix):]
		obj, err := b.Parse(append([]byte(nil), key...), it.Value())
		if err != nil {
			return err
		}
		if err := fn(obj.Key(), obj); err != nil {
			return err
		}
	}
	return nil
}

// prefixRange turns a prefix into a (start, end) range. The end is the
// smallest key that is greater than all keys with the given prefix, or
// nil if no such key exists.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	start := append([]byte(nil), prefix...)
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return start, end[:i+1]
		}
	}
	return start, nil
}
