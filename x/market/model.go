package market

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/orm"
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

// AttributeLength is the size in bytes of an asset attribute.
const AttributeLength = 16

// Attribute is the immutable, opaque payload of an asset.
type Attribute [AttributeLength]byte

// ParseAttribute decodes a hex encoded attribute.
func ParseAttribute(s string) (Attribute, error) {
	var a Attribute
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return a, errors.Wrapf(errors.ErrInput, "attribute: %s", err)
	}
	if len(raw) != AttributeLength {
		return a, errors.Wrapf(errors.ErrInput, "attribute of %d bytes", len(raw))
	}
	copy(a[:], raw)
	return a, nil
}

func (a Attribute) String() string {
	return strings.ToUpper(hex.EncodeToString(a[:]))
}

func (a Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Attribute) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, "attribute must be a hex string")
	}
	parsed, err := ParseAttribute(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Asset is the stored state of a single asset. The asset ID is not part of
// the value, it is the key the asset is stored under.
type Asset struct {
	Attribute Attribute `json:"attribute"`
	// Price is the asking price. A zero value means the asset is not for
	// sale.
	Price coin.Coin      `json:"price"`
	Owner bazaar.Address `json:"owner"`
}

var _ orm.Model = (*Asset)(nil)

func (a *Asset) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(a)
}

func (a *Asset) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, a)
}

func (a *Asset) Validate() error {
	if err := a.Owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner")
	}
	if a.Price.IsZero() {
		return nil
	}
	if err := a.Price.Validate(); err != nil {
		return errors.Field("Price", err, "invalid price")
	}
	if !a.Price.IsPositive() {
		return errors.Field("Price", errors.ErrAmount, "price must be positive")
	}
	return nil
}

func (a *Asset) Copy() orm.Model {
	return &Asset{
		Attribute: a.Attribute,
		Price:     a.Price,
		Owner:     append(bazaar.Address(nil), a.Owner...),
	}
}

// ForSale returns true if the owner set an asking price.
func (a *Asset) ForSale() bool {
	return !a.Price.IsZero()
}

// AskPrice returns the asking price or nil if the asset is not for sale.
func (a *Asset) AskPrice() *coin.Coin {
	if !a.ForSale() {
		return nil
	}
	return a.Price.Clone()
}

// OwnedAssets is the ordered list of asset IDs held by a single account.
type OwnedAssets struct {
	IDs [][]byte `json:"ids"`
}

var _ orm.Model = (*OwnedAssets)(nil)

func (o *OwnedAssets) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(o)
}

func (o *OwnedAssets) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, o)
}

func (o *OwnedAssets) Validate() error {
	if len(o.IDs) == 0 {
		return errors.Wrap(errors.ErrEmpty, "no assets")
	}
	for i, id := range o.IDs {
		if len(id) != IDLength {
			return errors.Wrapf(errors.ErrInput, "asset %d: id of %d bytes", i, len(id))
		}
	}
	return nil
}

func (o *OwnedAssets) Copy() orm.Model {
	cpy := &OwnedAssets{IDs: make([][]byte, len(o.IDs))}
	for i, id := range o.IDs {
		cpy.IDs[i] = append([]byte(nil), id...)
	}
	return cpy
}

// index returns the position of id or -1.
func (o *OwnedAssets) index(id []byte) int {
	for i, x := range o.IDs {
		if string(x) == string(id) {
			return i
		}
	}
	return -1
}
