package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	amino "github.com/tendermint/go-amino"
)

// BucketName is where we store the balances
const BucketName = "cash"

var cdc = amino.NewCodec()

// Set is the stored content of a wallet.
type Set struct {
	Coins coin.Coins `json:"coins"`
}

var _ orm.Model = (*Set)(nil)

func (s *Set) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(s)
}

func (s *Set) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, s)
}

// Validate requires that all coins are in alphabetical order
func (s *Set) Validate() error {
	return s.Coins.Validate()
}

// Copy makes a new set with the same coins
func (s *Set) Copy() orm.Model {
	return &Set{
		Coins: s.Coins.Clone(),
	}
}

// Wallet is the actual object that we want to pass around
// in our code. It contains a set of coins, as well as the
// address.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   bazaar.Address
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates a wallet with this address holding given coins.
func NewWallet(key bazaar.Address, coins ...coin.Coin) (*Wallet, error) {
	set, err := coin.CoinsOf(coins...)
	if err != nil {
		return nil, err
	}
	return &Wallet{key: key, value: &Set{Coins: set}}, nil
}

// Value gets the value stored in the object
func (w Wallet) Value() orm.Model {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Address of the wallet owner.
func (w Wallet) Address() bazaar.Address {
	return w.key
}

// Validate makes sure the fields aren't empty.
// And delegates to the value validator if present
func (w Wallet) Validate() error {
	if err := w.key.Validate(); err != nil {
		return errors.Field("Key", err, "invalid wallet address")
	}
	return w.value.Validate()
}

// SetKey may be used to update a simple obj key
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy().(*Set),
	}
	// only copy key if non-nil
	if len(w.key) > 0 {
		res.key = append(bazaar.Address(nil), w.key...)
	}
	return res
}

// Coins returns the coins stored in the wallet
func (w Wallet) Coins() coin.Coins {
	return w.value.Coins
}

// Add modifies the wallet to add Coin c
func (w *Wallet) Add(c coin.Coin) error {
	cs, err := w.Coins().Add(c)
	if err != nil {
		return err
	}
	w.value.Coins = cs
	return nil
}

// Subtract modifies the wallet to remove Coin c
func (w *Wallet) Subtract(c coin.Coin) error {
	return w.Add(c.Negative())
}

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a cash.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, &Wallet{value: &Set{}}),
	}
}

// Get returns the wallet of given address or nil if none is stored.
func (b Bucket) Get(db bazaar.ReadOnlyKVStore, key bazaar.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	w, ok := obj.(*Wallet)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj)
	}
	return w, nil
}

// Save writes the wallet. An empty wallet is removed from the store.
func (b Bucket) Save(db bazaar.KVStore, w *Wallet) error {
	if w.Coins().IsEmpty() {
		return b.Bucket.Delete(db, w.Key())
	}
	return b.Bucket.Save(db, w)
}

// GetOrCreate returns the stored wallet or a new, empty one.
func (b Bucket) GetOrCreate(db bazaar.ReadOnlyKVStore, key bazaar.Address) (*Wallet, error) {
	w, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = &Wallet{key: key, value: &Set{}}
	}
	return w, nil
}
