package server

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/iov-one/bazaar/app"
	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagDebug = "debug"
)

// AppGenerator lets us lazily initialize the chain, using home dir and
// logger potentially initialized with other flags. The returned function
// releases all resources held by the chain.
type AppGenerator func(home string, logger log.Logger) (*app.Chain, func(), error)

// Block is a set of operations executed and committed together.
type Block struct {
	Time       time.Time       `json:"time"`
	Operations []app.Operation `json:"ops"`
}

type runArgs struct {
	blocksPath string
	debug      bool
}

func parseRunArgs(args []string) (runArgs, error) {
	if len(args) < 1 {
		return runArgs{}, errors.Wrap(errors.ErrInput,
			"usage: cmd run <path to blocks.json> [-debug]")
	}
	res := runArgs{blocksPath: args[0]}
	runFlags := flag.NewFlagSet("run", flag.ExitOnError)
	runFlags.BoolVar(&res.debug, flagDebug, false, "print the failure log of every operation")
	err := runFlags.Parse(args[1:])
	return res, err
}

// RunCmd executes all blocks found in the given file on top of the state
// stored under home. The genesis file is applied first if the chain was
// not initialized yet. Every committed block is printed as JSON.
func RunCmd(gen AppGenerator, logger log.Logger, home string, args []string) error {
	flags, err := parseRunArgs(args)
	if err != nil {
		return err
	}

	raw, err := ioutil.ReadFile(flags.blocksPath)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	var blocks []Block
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode blocks: %s", err)
	}

	chain, cleanup, err := gen(home, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if chain.ChainID() == "" {
		gendoc, err := app.LoadGenesis(app.GenesisFile(home))
		if err != nil {
			return errors.Wrap(err, "genesis")
		}
		id, err := chain.InitChain(gendoc, time.Now().UTC())
		if err != nil {
			return err
		}
		logger.Info("Applied genesis", "chain_id", gendoc.ChainID, "height", id.Version)
	}
	return runBlocks(chain, blocks, os.Stdout, flags.debug)
}

func runBlocks(chain *app.Chain, blocks []Block, out io.Writer, debug bool) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for i, b := range blocks {
		if b.Time.IsZero() {
			b.Time = time.Now().UTC()
		}
		res, err := chain.DeliverBlock(b.Time, b.Operations)
		if err != nil {
			return errors.Wrapf(err, "block %d", i)
		}
		if !debug {
			for n := range res.Results {
				res.Results[n].Log = ""
			}
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("cannot write result: %s", err)
		}
	}
	return nil
}
