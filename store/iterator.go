package store

import (
	"bytes"

	"github.com/iov-one/bazaar/errors"
)

// source marks where the current item comes from
type source int

const (
	fromNone source = iota
	fromCache
	fromParent
	fromBoth
)

// mergeIterator joins a snapshot of cached items with the iterator of
// the backing store. Cached values take precedence and tombstones hide
// the parent entries with the same key.
type mergeIterator struct {
	cache   []cacheItem
	pos     int
	parent  Iterator
	reverse bool
}

var _ Iterator = (*mergeIterator)(nil)

func newMergeIterator(cache []cacheItem, parent Iterator, reverse bool) (*mergeIterator, error) {
	it := &mergeIterator{
		cache:   cache,
		parent:  parent,
		reverse: reverse,
	}
	if err := it.skipDeleted(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

// Valid implements Iterator and returns true iff it can be read
func (m *mergeIterator) Valid() bool {
	return m.source() != fromNone
}

// Next moves the iterator to the next sequential key, skipping over
// all keys deleted in the cache.
func (m *mergeIterator) Next() error {
	if err := m.advance(); err != nil {
		return err
	}
	return m.skipDeleted()
}

// Key returns the key of the cursor.
func (m *mergeIterator) Key() []byte {
	switch m.source() {
	case fromCache, fromBoth:
		return m.cache[m.pos].key
	case fromParent:
		return m.parent.Key()
	default:
		panic("iterator is not valid")
	}
}

// Value returns the value of the cursor.
func (m *mergeIterator) Value() []byte {
	switch m.source() {
	case fromCache, fromBoth:
		return m.cache[m.pos].value
	case fromParent:
		return m.parent.Value()
	default:
		panic("iterator is not valid")
	}
}

// Close releases the Iterator.
func (m *mergeIterator) Close() {
	m.cache = nil
	m.pos = 0
	if m.parent != nil {
		m.parent.Close()
		m.parent = nil
	}
}

func (m *mergeIterator) advance() error {
	switch m.source() {
	case fromCache:
		m.pos++
	case fromBoth:
		m.pos++
		return m.parent.Next()
	case fromParent:
		return m.parent.Next()
	default:
		return errors.Wrap(errors.ErrDatabase, "iterator exhausted")
	}
	return nil
}

func (m *mergeIterator) skipDeleted() error {
	for {
		switch m.source() {
		case fromCache, fromBoth:
			if !m.cache[m.pos].deleted {
				return nil
			}
			if err := m.advance(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// source selects the iterator with the first key in iteration order
func (m *mergeIterator) source() source {
	cacheValid := m.pos < len(m.cache)
	parentValid := m.parent != nil && m.parent.Valid()

	switch {
	case !cacheValid && !parentValid:
		return fromNone
	case !parentValid:
		return fromCache
	case !cacheValid:
		return fromParent
	}

	cmp := bytes.Compare(m.cache[m.pos].key, m.parent.Key())
	if m.reverse {
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return fromCache
	case cmp > 0:
		return fromParent
	default:
		return fromBoth
	}
}
