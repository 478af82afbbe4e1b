package app

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
	"github.com/iov-one/bazaar/x/market"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

var genesisTime = time.Date(2019, time.June, 1, 12, 0, 0, 0, time.UTC)

func testGenesis(t testing.TB, maxOwned int, alice, bob bazaar.Address) Genesis {
	t.Helper()

	raw := fmt.Sprintf(`{
		"conf": {
			"cash": {"minimum_balance": "1 IOV"},
			"market": {"max_owned": %d}
		},
		"cash": [
			{"address": %q, "coins": ["100 IOV"]},
			{"address": %q, "coins": ["100 IOV"]}
		],
		"assets": [
			{"owner": %q},
			{"owner": %q, "attribute": "0x000102030405060708090A0B0C0D0E0F"}
		]
	}`, maxOwned, alice, bob, alice, bob)

	var opts bazaar.Options
	require.NoError(t, json.Unmarshal([]byte(raw), &opts))
	return Genesis{ChainID: "bazaar-test", AppState: opts}
}

func newTestChain(t testing.TB) (*Chain, Stack, func()) {
	t.Helper()
	db, cleanup := weavetest.CommitKVStore(t)
	stack := NewStack()
	chain, err := NewChain(db, stack, log.NewNopLogger())
	if err != nil {
		cleanup()
		t.Fatalf("cannot create chain: %+v", err)
	}
	return chain, stack, cleanup
}

func TestInitChain(t *testing.T) {
	chain, _, cleanup := newTestChain(t)
	defer cleanup()

	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()

	id, err := chain.InitChain(testGenesis(t, 3, alice, bob), genesisTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Version)
	assert.Equal(t, "bazaar-test", chain.ChainID())

	owned, err := chain.AssetsOf(alice)
	require.NoError(t, err)
	assert.Equal(t, 1, len(owned))

	owned, err = chain.AssetsOf(bob)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	asset, err := chain.Asset(owned[0])
	require.NoError(t, err)
	assert.Equal(t, "000102030405060708090A0B0C0D0E0F", asset.Attribute.String())

	_, err = chain.InitChain(testGenesis(t, 3, alice, bob), genesisTime)
	assert.IsErr(t, errors.ErrState, err)
}

func TestInitChainFailureKeepsStoreEmpty(t *testing.T) {
	chain, _, cleanup := newTestChain(t)
	defer cleanup()

	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()

	// A zero limit is not a valid market configuration.
	_, err := chain.InitChain(testGenesis(t, 0, alice, bob), genesisTime)
	require.Error(t, err)
	assert.Equal(t, "", chain.ChainID())

	_, err = chain.DeliverBlock(genesisTime, nil)
	assert.IsErr(t, errors.ErrState, err)

	// A corrected genesis can still be applied.
	_, err = chain.InitChain(testGenesis(t, 1, alice, bob), genesisTime)
	require.NoError(t, err)
}

func TestDeliverBlock(t *testing.T) {
	chain, stack, cleanup := newTestChain(t)
	defer cleanup()

	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()
	_, err := chain.InitChain(testGenesis(t, 3, alice, bob), genesisTime)
	require.NoError(t, err)

	// Both operations create an asset in the same block. Each has its own
	// transaction index and therefore its own attribute.
	res, err := chain.DeliverBlock(genesisTime.Add(5*time.Second), []Operation{
		{Kind: OpCreateAsset, Caller: alice},
		{Kind: OpCreateAsset, Caller: alice},
		{Kind: "unknown", Caller: alice},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Height)
	require.Len(t, res.Results, 3)
	assert.Equal(t, true, res.Results[0].IsOK())
	assert.Equal(t, true, res.Results[1].IsOK())
	assert.Equal(t, ErrUnknownOperation.Code(), res.Results[2].Code)
	require.NotEqual(t, res.Results[0].Data, res.Results[1].Data)

	assetID := fmt.Sprintf("%X", res.Results[0].Data)
	assert.Equal(t, []byte("created"), tagValue(res.Results[0], "market.action"))
	assert.Equal(t, []byte(assetID), tagValue(res.Results[0], "market.asset"))

	owned, err := chain.AssetsOf(alice)
	require.NoError(t, err)
	assert.Equal(t, 3, len(owned))

	price := coin.NewCoinp(10, 0, "IOV")
	res, err = chain.DeliverBlock(genesisTime.Add(10*time.Second), []Operation{
		// Bob does not own the asset.
		{Kind: OpSetPrice, Caller: bob, Asset: assetID, Price: price},
		{Kind: OpSetPrice, Caller: alice, Asset: assetID, Price: price},
		// A bid is required.
		{Kind: OpBuy, Caller: bob, Asset: assetID},
		{Kind: OpBuy, Caller: bob, Asset: assetID, Price: coin.NewCoinp(9, 0, "IOV")},
		{Kind: OpBuy, Caller: bob, Asset: assetID, Price: price},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Height)
	codes := make([]uint32, len(res.Results))
	for i, r := range res.Results {
		codes[i] = r.Code
	}
	assert.Equal(t, []uint32{
		market.ErrNotOwner.Code(),
		0,
		errors.ErrEmpty.Code(),
		market.ErrBidTooLow.Code(),
		0,
	}, codes)
	assert.Equal(t, []byte("bought"), tagValue(res.Results[4], "market.action"))

	// Failed operations do not leak events into the next result.
	assert.Equal(t, 0, len(res.Results[2].Tags))

	db := chain.QueryStore()
	id, err := Operation{Asset: assetID}.AssetID()
	require.NoError(t, err)
	asset, err := stack.Market.Asset(db, id)
	require.NoError(t, err)
	assert.Equal(t, bob, asset.Owner)
	assert.Equal(t, false, asset.ForSale())

	bobBalance, err := stack.Cash.Balance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(90, 0, "IOV"), bobBalance.Balance("IOV"))
	aliceBalance, err := stack.Cash.Balance(db, alice)
	require.NoError(t, err)
	assert.Equal(t, coin.NewCoin(110, 0, "IOV"), aliceBalance.Balance("IOV"))

	assertConsistent(t, chain, stack)
}

func TestChainReload(t *testing.T) {
	db, cleanup := weavetest.CommitKVStore(t)
	defer cleanup()

	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()

	chain, err := NewChain(db, NewStack(), log.NewNopLogger())
	require.NoError(t, err)
	_, err = chain.InitChain(testGenesis(t, 3, alice, bob), genesisTime)
	require.NoError(t, err)
	res, err := chain.DeliverBlock(genesisTime.Add(time.Second), []Operation{
		{Kind: OpCreateAsset, Caller: bob},
	})
	require.NoError(t, err)

	// A new chain on top of the same store continues where the previous
	// one stopped.
	stack := NewStack()
	reloaded, err := NewChain(db, stack, log.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "bazaar-test", reloaded.ChainID())
	info, err := reloaded.CommitInfo()
	require.NoError(t, err)
	assert.Equal(t, res.Height, info.Version)
	assert.EqualBytes(t, res.Hash, info.Hash)

	owned, err := reloaded.AssetsOf(bob)
	require.NoError(t, err)
	assert.Equal(t, 2, len(owned))

	next, err := reloaded.DeliverBlock(genesisTime.Add(2*time.Second), nil)
	require.NoError(t, err)
	assert.Equal(t, res.Height+1, next.Height)

	assertConsistent(t, reloaded, stack)
}

func TestDeliverBlockRecoversPanics(t *testing.T) {
	chain, stack, cleanup := newTestChain(t)
	defer cleanup()

	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()
	_, err := chain.InitChain(testGenesis(t, 3, alice, bob), genesisTime)
	require.NoError(t, err)

	stack.Router.Handle("explode", HandlerFunc(func(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) (*Result, error) {
		if err := db.Set([]byte("garbage"), []byte("x")); err != nil {
			return nil, err
		}
		panic("boom")
	}))

	res, err := chain.DeliverBlock(genesisTime.Add(time.Second), []Operation{
		{Kind: "explode", Caller: alice},
		{Kind: OpCreateAsset, Caller: alice},
	})
	require.NoError(t, err)
	assert.Equal(t, errors.ErrPanic.Code(), res.Results[0].Code)
	assert.Equal(t, true, res.Results[1].IsOK())

	got, err := chain.QueryStore().Get([]byte("garbage"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func tagValue(r Result, key string) []byte {
	for _, kv := range r.Tags {
		if string(kv.Key) == key {
			return kv.Value
		}
	}
	return nil
}

func assertConsistent(t testing.TB, chain *Chain, stack Stack) {
	t.Helper()
	if err := stack.Market.CheckConsistency(chain.QueryStore()); err != nil {
		t.Fatalf("inconsistent market state: %+v", err)
	}
}

func TestRestartKeepsStateDeterministic(t *testing.T) {
	alice, bob := weavetest.NewAddress(), weavetest.NewAddress()
	gen := testGenesis(t, 5, alice, bob)
	blocks := [][]Operation{
		{{Kind: OpCreateAsset, Caller: alice}},
		{{Kind: OpCreateAsset, Caller: bob}},
		{{Kind: OpCreateAsset, Caller: alice}},
	}

	run := func(restartAfter int) []byte {
		db, cleanup := weavetest.CommitKVStore(t)
		defer cleanup()

		chain, err := NewChain(db, NewStack(), log.NewNopLogger())
		require.NoError(t, err)
		_, err = chain.InitChain(gen, genesisTime)
		require.NoError(t, err)

		var last BlockResult
		for i, ops := range blocks {
			if i == restartAfter {
				chain, err = NewChain(db, NewStack(), log.NewNopLogger())
				require.NoError(t, err)
			}
			last, err = chain.DeliverBlock(genesisTime.Add(time.Duration(i+1)*time.Second), ops)
			require.NoError(t, err)
		}
		return last.Hash
	}

	assert.EqualBytes(t, run(-1), run(2))
}
