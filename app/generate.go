package app

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store/iavl"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/market"
	"github.com/tendermint/tendermint/libs/log"
)

// DefaultMaxOwned is the ownership limit written to new genesis files.
const DefaultMaxOwned = 10

// GenInitOptions returns the application state of a new genesis file.
// Every address given as an argument is funded and receives one asset.
// Without arguments a single random address is used.
func GenInitOptions(args []string) (bazaar.Options, error) {
	var addrs []bazaar.Address
	for _, a := range args {
		addr, err := bazaar.ParseAddress(a)
		if err != nil {
			return nil, errors.Wrapf(err, "address %q", a)
		}
		addrs = append(addrs, addr)
	}
	if len(addrs) == 0 {
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, errors.Wrap(err, "random address")
		}
		addrs = append(addrs, bazaar.NewAddress(seed))
	}

	accounts := make([]cash.GenesisAccount, len(addrs))
	seeds := make([]market.Seed, len(addrs))
	for i, addr := range addrs {
		accounts[i] = cash.GenesisAccount{
			Address: addr,
			Coins:   []coin.Coin{coin.NewCoin(1000, 0, "IOV")},
		}
		seeds[i] = market.Seed{Owner: addr}
	}

	conf := map[string]interface{}{
		"cash":   cash.Configuration{MinimumBalance: coin.NewCoin(1, 0, "IOV")},
		"market": market.Configuration{MaxOwned: DefaultMaxOwned},
	}
	opts := bazaar.Options{}
	for key, value := range map[string]interface{}{
		"conf":   conf,
		"cash":   accounts,
		"assets": seeds,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "encode %s: %s", key, err)
		}
		opts[key] = raw
	}
	return opts, nil
}

// GenerateChain opens the store kept under home and returns a chain
// executing the market operations on top of it. The returned function
// releases the store.
func GenerateChain(home string, logger log.Logger) (*Chain, func(), error) {
	db, err := iavl.NewCommitStore(filepath.Join(home, "data"), "bazaar")
	if err != nil {
		return nil, nil, errors.Wrap(err, "open store")
	}
	chain, err := NewChain(db, NewStack(), logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return chain, db.Close, nil
}

// GenesisFile returns the location of the genesis file under home.
func GenesisFile(home string) string {
	return filepath.Join(home, "genesis.json")
}

// RandomChainID returns a chain id that is valid for a new genesis.
func RandomChainID() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "random chain id")
	}
	return fmt.Sprintf("bazaar-%x", b), nil
}
