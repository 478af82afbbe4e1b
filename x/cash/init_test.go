package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
	"github.com/iov-one/bazaar/weavetest"
	"github.com/iov-one/bazaar/weavetest/assert"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"conf": {"cash": {"minimum_balance": "0.5 IOV"}},
		"cash": [
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "coins": ["10 IOV", "2.25 ETH"]},
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "coins": ["1 IOV"]}
		]
	}`
	var opts bazaar.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, weavetest.BlockInfo(t, 0), db))

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, coin.NewCoin(0, 500000000, "IOV"), conf.MinimumBalance)

	addr := weavetest.ParseAddress(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	coins, err := NewController(NewBucket()).Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, coin.Coins{coin.NewCoin(2, 250000000, "ETH"), coin.NewCoin(11, 0, "IOV")}, coins)
}

func TestGenesisErrors(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"no configuration is fine": {
			genesis: `{"cash": []}`,
		},
		"bad address": {
			genesis: `{"cash": [{"address": "0102", "coins": ["1 IOV"]}]}`,
			wantErr: errors.ErrInput,
		},
		"negative minimum": {
			genesis: `{"conf": {"cash": {"minimum_balance": "-1 IOV"}}}`,
			wantErr: errors.ErrAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var opts bazaar.Options
			assert.Nil(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := Initializer{}.FromGenesis(opts, weavetest.BlockInfo(t, 0), store.MemStore())
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
