package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
)

// Counter maintains a single uint64 value in the store. A missing value
// reads as zero.
type Counter struct {
	id []byte
}

// NewCounter returns a counter. Counter is using following pattern
// to construct a key:
//    _c.<bucket>:<name>
func NewCounter(bucket, name string) Counter {
	return Counter{
		id: []byte("_c." + bucket + ":" + name),
	}
}

// Key returns the database key the counter is stored under.
func (c Counter) Key() []byte {
	return c.id
}

// Value returns the current state of the counter.
func (c Counter) Value(db bazaar.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(c.id)
	if err != nil {
		return 0, err
	}
	return decodeCounter(raw)
}

// CanIncrement returns ErrOverflow if the counter reached its maximum value.
func (c Counter) CanIncrement(db bazaar.ReadOnlyKVStore) error {
	val, err := c.Value(db)
	if err != nil {
		return err
	}
	if val == math.MaxUint64 {
		return errors.Wrapf(errors.ErrOverflow, "counter %s", c.id)
	}
	return nil
}

// Increment increases the counter by one and returns the new value.
func (c Counter) Increment(db bazaar.KVStore) (uint64, error) {
	val, err := c.Value(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrapf(errors.ErrOverflow, "counter %s", c.id)
	}
	val++
	return val, c.Set(db, val)
}

// Set overwrites the counter state.
func (c Counter) Set(db bazaar.KVStore, val uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, val)
	return db.Set(c.id, raw)
}

func decodeCounter(raw []byte) (uint64, error) {
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrState, "counter value of %d bytes", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
