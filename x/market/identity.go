package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"golang.org/x/crypto/blake2b"
)

// IDLength is the size in bytes of an asset ID.
const IDLength = blake2b.Size256

var dnaSubject = []byte("dna")

// Randomness provides values that are unpredictable for the callers of
// the market operations.
type Randomness interface {
	Random(db bazaar.ReadOnlyKVStore, subject []byte) ([]byte, error)
}

// IdentityGenerator produces asset attributes and IDs.
type IdentityGenerator struct {
	rand Randomness
}

// NewIdentityGenerator returns a generator drawing from the given source
// of randomness.
func NewIdentityGenerator(rand Randomness) IdentityGenerator {
	return IdentityGenerator{rand: rand}
}

// attributeSeed is the encoded input of an attribute hash.
type attributeSeed struct {
	Random  []byte
	TxIndex uint32
	Height  int64
}

// GenerateAttribute returns a new attribute derived from the randomness
// source and the position of the current operation in the chain. Equal
// inputs produce equal attributes.
func (g IdentityGenerator) GenerateAttribute(db bazaar.ReadOnlyKVStore, info bazaar.BlockInfo) (Attribute, error) {
	var attr Attribute
	random, err := g.rand.Random(db, dnaSubject)
	if err != nil {
		return attr, errors.Wrap(err, "randomness")
	}
	raw, err := cdc.MarshalBinaryBare(attributeSeed{
		Random:  random,
		TxIndex: info.TxIndex(),
		Height:  info.Height(),
	})
	if err != nil {
		return attr, errors.Wrap(err, "encode attribute seed")
	}
	h, err := blake2b.New(AttributeLength, nil)
	if err != nil {
		return attr, errors.Wrap(errors.ErrHuman, err.Error())
	}
	// Hash writes never fail.
	_, _ = h.Write(raw)
	copy(attr[:], h.Sum(nil))
	return attr, nil
}

// ComputeID returns the ID of an asset created with given attribute for
// given owner. It is the hash of the encoded asset as it looks right after
// creation.
func ComputeID(attr Attribute, owner bazaar.Address) ([]byte, error) {
	raw, err := (&Asset{Attribute: attr, Owner: owner}).Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "encode asset")
	}
	sum := blake2b.Sum256(raw)
	return sum[:], nil
}
