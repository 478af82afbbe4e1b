package server

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/market"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagAsset   = "asset"
	flagAccount = "account"
)

// QueryCmd prints either an asset or all assets held by an account, as
// found in the last committed block.
func QueryCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	var asset, account string
	queryFlags := flag.NewFlagSet("query", flag.ExitOnError)
	queryFlags.StringVar(&asset, flagAsset, "", "hex encoded asset id")
	queryFlags.StringVar(&account, flagAccount, "", "account address")
	if err := queryFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if (asset == "") == (account == "") {
		return errors.Wrap(errors.ErrInput, "usage: cmd query -asset=<id> | -account=<address>")
	}

	chain, cleanup, err := gen(home, logger)
	if err != nil {
		return err
	}
	defer cleanup()
	return query(chain, asset, account, os.Stdout)
}

// AssetView is the printed representation of an asset.
type AssetView struct {
	ID string `json:"id"`
	*market.Asset
}

// HoldingsView is the printed representation of an account.
type HoldingsView struct {
	Account bazaar.Address `json:"account"`
	Assets  []string       `json:"assets"`
}

func query(chain *app.Chain, asset, account string, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if asset != "" {
		id, err := hex.DecodeString(asset)
		if err != nil {
			return errors.Wrapf(errors.ErrInput, "asset: %s", err)
		}
		a, err := chain.Asset(id)
		if err != nil {
			return err
		}
		return enc.Encode(AssetView{ID: asset, Asset: a})
	}

	addr, err := bazaar.ParseAddress(account)
	if err != nil {
		return errors.Wrap(err, "account")
	}
	ids, err := chain.AssetsOf(addr)
	if err != nil {
		return err
	}
	view := HoldingsView{Account: addr, Assets: make([]string, len(ids))}
	for i, id := range ids {
		view.Assets[i] = fmt.Sprintf("%X", id)
	}
	return enc.Encode(view)
}
