package app

import (
	"encoding/hex"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/market"
)

// Operation kinds handled by the market routes.
const (
	OpCreateAsset = "create_asset"
	OpSetPrice    = "set_price"
	OpTransfer    = "transfer"
	OpBuy         = "buy"
)

// Operation is a single request executed within a block. The caller is
// trusted to be authenticated by whoever built the block.
type Operation struct {
	Kind   string         `json:"op"`
	Caller bazaar.Address `json:"caller"`
	// Asset is the hex encoded asset ID.
	Asset string         `json:"asset,omitempty"`
	To    bazaar.Address `json:"to,omitempty"`
	// Price is the asking price for set_price and the bid for buy.
	Price *coin.Coin `json:"price,omitempty"`
}

// AssetID decodes the asset ID of the operation.
func (op Operation) AssetID() ([]byte, error) {
	if op.Asset == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "asset")
	}
	id, err := hex.DecodeString(op.Asset)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "asset: %s", err)
	}
	return id, nil
}

// RegisterMarketRoutes registers handlers for all market operations.
func RegisterMarketRoutes(r *Router, svc *market.Service) {
	r.Handle(OpCreateAsset, HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		id, err := svc.CreateAsset(info, db, op.Caller)
		if err != nil {
			return nil, err
		}
		return &Result{Data: id}, nil
	}))
	r.Handle(OpSetPrice, HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		id, err := op.AssetID()
		if err != nil {
			return nil, err
		}
		return &Result{}, svc.SetPrice(info, db, op.Caller, id, op.Price)
	}))
	r.Handle(OpTransfer, HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		id, err := op.AssetID()
		if err != nil {
			return nil, err
		}
		return &Result{}, svc.Transfer(info, db, op.Caller, op.To, id)
	}))
	r.Handle(OpBuy, HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		id, err := op.AssetID()
		if err != nil {
			return nil, err
		}
		if op.Price == nil {
			return nil, errors.Wrap(errors.ErrEmpty, "bid")
		}
		return &Result{}, svc.Buy(info, db, op.Caller, id, *op.Price)
	}))
}
