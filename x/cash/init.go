package cash

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use bazaar.Address, so address in hex, not base64
type GenesisAccount struct {
	Address bazaar.Address `json:"address"`
	Coins   []coin.Coin    `json:"coins"`
}

// Initializer fulfils the bazaar.Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bazaar.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts bazaar.Options, info bazaar.BlockInfo, kv bazaar.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confPkg, &conf); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "init config")
	}

	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		wallet, err := bucket.GetOrCreate(kv, acct.Address)
		if err != nil {
			return err
		}
		for _, c := range acct.Coins {
			if err := c.Validate(); err != nil {
				return errors.Wrapf(err, "account %d", i)
			}
			if err := wallet.Add(c); err != nil {
				return errors.Wrapf(err, "account %d", i)
			}
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return err
		}
	}
	info.Logger().Info("cash initialized", "accounts", len(accts))
	return nil
}
