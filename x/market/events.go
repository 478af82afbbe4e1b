package market

import (
	"fmt"
	"sync"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/tendermint/tendermint/libs/common"
)

// Event describes a committed change of the market state.
type Event interface {
	// Kind is the name of the event.
	Kind() string
	// Tags returns the indexable representation of the event.
	Tags() []common.KVPair
}

// EventSink receives events of committed operations.
type EventSink interface {
	Emit(Event)
}

// Created is emitted when a new asset was registered.
type Created struct {
	Account bazaar.Address
	AssetID []byte
}

func (Created) Kind() string { return "created" }

func (e Created) Tags() []common.KVPair {
	return tags(e.Kind(), e.AssetID,
		"account", e.Account.String())
}

// PriceSet is emitted when the owner changed the asking price. A nil
// price means the asset was taken off sale.
type PriceSet struct {
	Account bazaar.Address
	AssetID []byte
	Price   *coin.Coin
}

func (PriceSet) Kind() string { return "price_set" }

func (e PriceSet) Tags() []common.KVPair {
	price := ""
	if e.Price != nil {
		price = e.Price.String()
	}
	return tags(e.Kind(), e.AssetID,
		"account", e.Account.String(),
		"price", price)
}

// Transferred is emitted when the owner gave the asset away.
type Transferred struct {
	From    bazaar.Address
	To      bazaar.Address
	AssetID []byte
}

func (Transferred) Kind() string { return "transferred" }

func (e Transferred) Tags() []common.KVPair {
	return tags(e.Kind(), e.AssetID,
		"from", e.From.String(),
		"to", e.To.String())
}

// Bought is emitted when the asset was sold.
type Bought struct {
	Buyer   bazaar.Address
	Seller  bazaar.Address
	AssetID []byte
	Price   coin.Coin
}

func (Bought) Kind() string { return "bought" }

func (e Bought) Tags() []common.KVPair {
	return tags(e.Kind(), e.AssetID,
		"buyer", e.Buyer.String(),
		"seller", e.Seller.String(),
		"price", e.Price.String())
}

func tags(kind string, id []byte, keyvals ...string) []common.KVPair {
	res := []common.KVPair{
		{Key: []byte("market.action"), Value: []byte(kind)},
		{Key: []byte("market.asset"), Value: []byte(hexID(id))},
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		res = append(res, common.KVPair{
			Key:   []byte("market." + keyvals[i]),
			Value: []byte(keyvals[i+1]),
		})
	}
	return res
}

func hexID(id []byte) string {
	return fmt.Sprintf("%X", id)
}

// Recorder is an EventSink that keeps all events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ EventSink = (*Recorder)(nil)

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns all events recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Drain returns all events recorded so far and forgets them.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := r.events
	r.events = nil
	return events
}

type discard struct{}

func (discard) Emit(Event) {}
