package market

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const optKey = "assets"

// Initializer fulfils the bazaar.Initializer interface to load the market
// configuration and the initial assets from the genesis file.
type Initializer struct {
	Service *Service
}

var _ bazaar.Initializer = Initializer{}

// FromGenesis stores the configuration found under conf.market and
// registers every asset listed under assets.
func (i Initializer) FromGenesis(opts bazaar.Options, info bazaar.BlockInfo, kv bazaar.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(kv, opts, confPkg, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var seeds []Seed
	if err := opts.ReadOptions(optKey, &seeds); err != nil {
		return err
	}
	for n, s := range seeds {
		if err := s.Owner.Validate(); err != nil {
			return errors.Wrapf(err, "asset %d owner", n)
		}
	}
	if err := i.Service.Initialize(info, kv, seeds); err != nil {
		return err
	}
	info.Logger().Info("market initialized", "assets", len(seeds), "max_owned", conf.MaxOwned)
	return nil
}
