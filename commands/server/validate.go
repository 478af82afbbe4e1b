package server

import (
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/store"
)

// ValidateGenesis loads every genesis file and runs the initializer on a
// throwaway store, returning the first failure.
func ValidateGenesis(ini bazaar.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini bazaar.Initializer, genesisPath string) error {
	gen, err := app.LoadGenesis(genesisPath)
	if err != nil {
		return err
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	info, err := bazaar.NewBlockInfo(gen.ChainID, 1, time.Now(), nil)
	if err != nil {
		return err
	}
	if err := ini.FromGenesis(gen.AppState, info, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
