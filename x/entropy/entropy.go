/*
Package entropy provides on-chain randomness derived from the hashes of
the most recently committed blocks.

The values are predictable by whoever produces the blocks, which makes
them suitable for low stakes decisions only.
*/
package entropy

import (
	"encoding/binary"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	amino "github.com/tendermint/go-amino"
	"golang.org/x/crypto/blake2b"
)

// HistorySize is the number of block hashes mixed into every random value.
const HistorySize = 81

var cdc = amino.NewCodec()

var historyKey = []byte("recent")

// History is the stored ring of recent block hashes.
type History struct {
	Hashes [][]byte
	// Next is the position of the next write in Hashes.
	Next uint32
	// Height of the most recently recorded block.
	Height int64
}

var _ orm.Model = (*History)(nil)

func (h *History) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(h)
}

func (h *History) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, h)
}

func (h *History) Validate() error {
	if len(h.Hashes) > HistorySize {
		return errors.Wrapf(errors.ErrState, "%d hashes kept", len(h.Hashes))
	}
	if int(h.Next) > len(h.Hashes) || (len(h.Hashes) < HistorySize && int(h.Next) != len(h.Hashes)) {
		return errors.Wrapf(errors.ErrState, "next position %d", h.Next)
	}
	for i, hash := range h.Hashes {
		if len(hash) == 0 {
			return errors.Wrapf(errors.ErrEmpty, "hash %d", i)
		}
	}
	return nil
}

func (h *History) Copy() orm.Model {
	cpy := &History{Next: h.Next, Height: h.Height}
	for _, hash := range h.Hashes {
		cpy.Hashes = append(cpy.Hashes, append([]byte(nil), hash...))
	}
	return cpy
}

// RecentHashes is a source of randomness backed by the history of block
// hashes kept in the store.
type RecentHashes struct {
	bucket orm.ModelBucket
}

// NewRecentHashes returns a randomness source using the default bucket.
func NewRecentHashes() RecentHashes {
	return RecentHashes{
		bucket: orm.NewModelBucket("entropy", &History{}),
	}
}

// Record adds the hash of a committed block to the history, replacing
// the oldest one once HistorySize hashes are kept.
func (r RecentHashes) Record(db bazaar.KVStore, height int64, hash []byte) error {
	if len(hash) == 0 {
		return errors.Wrap(errors.ErrEmpty, "block hash")
	}
	h, err := r.history(db)
	if err != nil {
		return err
	}
	if height <= h.Height && len(h.Hashes) > 0 {
		return errors.Wrapf(errors.ErrState, "height %d already recorded", height)
	}

	hash = append([]byte(nil), hash...)
	if len(h.Hashes) < HistorySize {
		h.Hashes = append(h.Hashes, hash)
		h.Next = uint32(len(h.Hashes)) % HistorySize
	} else {
		h.Hashes[h.Next] = hash
		h.Next = (h.Next + 1) % HistorySize
	}
	h.Height = height
	return r.bucket.Put(db, historyKey, h)
}

// Random returns a 32 byte value derived from the subject and all
// recorded block hashes. The same subject gives the same value until a
// new block hash is recorded.
func (r RecentHashes) Random(db bazaar.ReadOnlyKVStore, subject []byte) ([]byte, error) {
	h, err := r.history(db)
	if err != nil {
		return nil, err
	}
	if len(h.Hashes) == 0 {
		sum := blake2b.Sum256(subject)
		return sum[:], nil
	}

	var out [blake2b.Size256]byte
	idx := make([]byte, 4)
	for i, hash := range h.Hashes {
		binary.BigEndian.PutUint32(idx, uint32(i))
		sum := blake2b.Sum256(concat(idx, subject, hash))
		for j := range out {
			out[j] ^= sum[j]
		}
	}
	return out[:], nil
}

// Height returns the height of the most recently recorded block.
func (r RecentHashes) Height(db bazaar.ReadOnlyKVStore) (int64, error) {
	h, err := r.history(db)
	if err != nil {
		return 0, err
	}
	return h.Height, nil
}

func (r RecentHashes) history(db bazaar.ReadOnlyKVStore) (*History, error) {
	var h History
	switch err := r.bucket.One(db, historyKey, &h); {
	case err == nil:
		return &h, nil
	case errors.ErrNotFound.Is(err):
		return &History{}, nil
	default:
		return nil, err
	}
}

func concat(parts ...[]byte) []byte {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
