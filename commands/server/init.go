package server

import (
	"flag"
	"os"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagChainID = "chain-id"
)

// GenOptions can parse command-line arguments to generate the
// application state of the genesis file.
type GenOptions func(args []string) (bazaar.Options, error)

// InitCmd writes a new genesis file under home. An existing genesis file
// is never overwritten.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var chainID string
	initFlags := flag.NewFlagSet("init", flag.ExitOnError)
	initFlags.StringVar(&chainID, flagChainID, "", "chain id, random when not provided")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := app.GenesisFile(home)
	if fileExists(genFile) {
		logger.Info("Found genesis file", "path", genFile)
		return nil
	}

	if chainID == "" {
		id, err := app.RandomChainID()
		if err != nil {
			return err
		}
		chainID = id
	}
	if !bazaar.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %q", chainID)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0755); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	gendoc := app.Genesis{ChainID: chainID, AppState: options}
	if err := app.SaveGenesis(genFile, gendoc); err != nil {
		return err
	}
	logger.Info("Generated genesis file", "path", genFile, "chain_id", chainID)
	return nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}
