package market

import (
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/entropy"
)

// fixture is a market wired to the cash and entropy extensions on top of
// an in memory store.
type fixture struct {
	db     bazaar.CacheableKVStore
	cash   cash.BaseController
	events *Recorder
	svc    *Service
	tx     uint32
}

func newFixture(t testing.TB, maxOwned uint32) *fixture {
	t.Helper()

	db := store.MemStore()
	assert.Nil(t, SaveConfig(db, Configuration{MaxOwned: maxOwned}))
	ctrl := cash.NewController(cash.NewBucket())
	events := &Recorder{}
	return &fixture{
		db:     db,
		cash:   ctrl,
		events: events,
		svc:    NewService(ctrl, entropy.NewRecentHashes(), events),
	}
}

// info returns the context of the next operation in the block.
func (f *fixture) info(t testing.TB) bazaar.BlockInfo {
	f.tx++
	return weavetest.BlockInfo(t, 7).WithTxIndex(f.tx)
}

func (f *fixture) create(t testing.TB, owner bazaar.Address) []byte {
	t.Helper()
	id, err := f.svc.CreateAsset(f.info(t), f.db, owner)
	if err != nil {
		t.Fatalf("cannot create asset: %+v", err)
	}
	return id
}

func (f *fixture) fund(t testing.TB, addr bazaar.Address, amount coin.Coin) {
	t.Helper()
	assert.Nil(t, f.cash.IssueCoins(f.db, addr, amount))
}

func (f *fixture) balance(t testing.TB, addr bazaar.Address) coin.Coin {
	t.Helper()
	coins, err := f.cash.Balance(f.db, addr)
	assert.Nil(t, err)
	return coins.Balance("IOV")
}

func (f *fixture) asset(t testing.TB, id []byte) *Asset {
	t.Helper()
	a, err := f.svc.Asset(f.db, id)
	assert.Nil(t, err)
	return a
}

func (f *fixture) owned(t testing.TB, addr bazaar.Address) [][]byte {
	t.Helper()
	ids, err := f.svc.AssetsOf(f.db, addr)
	assert.Nil(t, err)
	return ids
}

func (f *fixture) count(t testing.TB) uint64 {
	t.Helper()
	n, err := f.svc.AssetCount(f.db)
	assert.Nil(t, err)
	return n
}

// dump returns the whole content of the store, in key order.
func dump(t testing.TB, db bazaar.ReadOnlyKVStore) []bazaar.Model {
	t.Helper()
	it, err := db.Iterator(nil, nil)
	assert.Nil(t, err)
	defer it.Close()

	var res []bazaar.Model
	for ; it.Valid(); it.Next() {
		res = append(res, bazaar.Pair(it.Key(), it.Value()))
	}
	return res
}

func iov(whole int64) coin.Coin {
	return coin.NewCoin(whole, 0, "IOV")
}
