package app

import (
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/x/market"
	"github.com/iov-one/bazaar/x/utils"
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"
)

// Chain executes blocks of operations on top of a commit store. Every
// block is committed as a new version of the store. Genesis is the first
// version.
type Chain struct {
	logger  log.Logger
	store   *CommitStore
	stack   Stack
	chainID string
}

// NewChain loads the latest committed state of the store.
func NewChain(db bazaar.CommitKVStore, stack Stack, logger log.Logger) (*Chain, error) {
	cs, err := NewCommitStore(db)
	if err != nil {
		return nil, err
	}
	chainID, err := loadChainID(cs.DeliverStore())
	if err != nil {
		return nil, err
	}
	return &Chain{
		logger:  logger.With("module", "chain"),
		store:   cs,
		stack:   stack,
		chainID: chainID,
	}, nil
}

// ChainID returns the chain id set during genesis, or an empty string if
// the chain was not initialized yet.
func (c *Chain) ChainID() string {
	return c.chainID
}

// CommitInfo returns the height and the hash of the last committed
// block.
func (c *Chain) CommitInfo() (bazaar.CommitID, error) {
	return c.store.CommitInfo()
}

// InitChain stores the chain id, runs all initializers with the genesis
// application state and commits the result.
func (c *Chain) InitChain(gen Genesis, blockTime time.Time) (bazaar.CommitID, error) {
	if c.chainID != "" {
		return bazaar.CommitID{}, errors.Wrapf(errors.ErrState, "chain %q already initialized", c.chainID)
	}
	info, err := c.blockInfo(gen.ChainID, blockTime)
	if err != nil {
		return bazaar.CommitID{}, err
	}

	db := c.store.DeliverStore()
	err = utils.Savepoint(db, func(db bazaar.KVStore) error {
		if err := saveChainID(db, gen.ChainID); err != nil {
			return err
		}
		return c.stack.Init.FromGenesis(gen.AppState, info, db)
	})
	// Nothing from genesis is reported.
	c.stack.Events.Drain()
	if err != nil {
		return bazaar.CommitID{}, errors.Wrap(err, "genesis")
	}
	c.chainID = gen.ChainID
	c.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return c.commit()
}

// DeliverBlock executes all operations in order and commits the block.
// The hash of the previous block is recorded as entropy before any
// operation runs. A failing operation does not modify the state and does
// not prevent the following operations from being executed.
func (c *Chain) DeliverBlock(blockTime time.Time, ops []Operation) (BlockResult, error) {
	if c.chainID == "" {
		return BlockResult{}, errors.Wrap(errors.ErrState, "chain not initialized")
	}
	info, err := c.blockInfo(c.chainID, blockTime)
	if err != nil {
		return BlockResult{}, err
	}

	db := c.store.DeliverStore()
	last, err := c.store.CommitInfo()
	if err != nil {
		return BlockResult{}, errors.Wrap(err, "commit info")
	}
	if err := c.stack.Entropy.Record(db, last.Version, last.Hash); err != nil {
		return BlockResult{}, errors.Wrap(err, "record block hash")
	}

	results := make([]Result, len(ops))
	for i, op := range ops {
		results[i] = c.deliver(info.WithTxIndex(uint32(i)), db, op)
	}

	id, err := c.commit()
	if err != nil {
		return BlockResult{}, err
	}
	return BlockResult{
		Height:  id.Version,
		Hash:    id.Hash,
		Results: results,
	}, nil
}

func (c *Chain) deliver(info bazaar.BlockInfo, db bazaar.KVStore, op Operation) Result {
	var res *Result
	err := utils.Recovered(func() error {
		h, err := c.stack.Router.Handler(op.Kind)
		if err != nil {
			return err
		}
		return utils.Savepoint(db, func(db bazaar.KVStore) error {
			var err error
			res, err = h.Deliver(info, db, op)
			return err
		})
	})
	events := c.stack.Events.Drain()

	if err != nil {
		code, msg := errors.ResultInfo(err, false)
		info.Logger().Debug("operation failed", "op", op.Kind, "code", code, "err", err)
		return Result{Kind: op.Kind, Code: code, Log: msg}
	}
	if res == nil {
		res = &Result{}
	}
	res.Kind = op.Kind
	for _, e := range events {
		res.Tags = append(res.Tags, e.Tags()...)
	}
	return *res
}

func (c *Chain) commit() (bazaar.CommitID, error) {
	id, err := c.store.Commit()
	if err != nil {
		return id, errors.Wrap(err, "commit")
	}
	c.logger.Info("committed block", "height", id.Version, "hash", common.HexBytes(id.Hash))
	return id, nil
}

func (c *Chain) blockInfo(chainID string, blockTime time.Time) (bazaar.BlockInfo, error) {
	last, err := c.store.CommitInfo()
	if err != nil {
		return bazaar.BlockInfo{}, errors.Wrap(err, "commit info")
	}
	return bazaar.NewBlockInfo(chainID, last.Version+1, blockTime, c.logger)
}

// QueryStore returns a read only view of the last committed block.
func (c *Chain) QueryStore() bazaar.ReadOnlyKVStore {
	return c.store.QueryStore()
}

// Asset returns the asset stored under id in the last committed block.
func (c *Chain) Asset(id []byte) (*market.Asset, error) {
	return c.stack.Market.Asset(c.QueryStore(), id)
}

// AssetsOf returns the assets held by the account in the last committed
// block.
func (c *Chain) AssetsOf(account bazaar.Address) ([][]byte, error) {
	return c.stack.Market.AssetsOf(c.QueryStore(), account)
}
