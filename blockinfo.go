package bazaar

import (
	"regexp"
	"time"

	"github.com/iov-one/bazaar/errors"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	// DefaultLogger is used for all block info that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// BlockInfo is the explicit execution context passed to every operation.
// It carries the position of the operation in the ledger and the logger
// that should be used while handling it.
type BlockInfo struct {
	chainID string
	height  int64
	txIndex uint32
	time    time.Time
	logger  log.Logger
}

// NewBlockInfo creates a BlockInfo for the block at the given height.
// Operations inside of the block should be distinguished with WithTxIndex.
func NewBlockInfo(chainID string, height int64, blockTime time.Time, logger log.Logger) (BlockInfo, error) {
	if !IsValidChainID(chainID) {
		return BlockInfo{}, errors.Wrap(errors.ErrInput, "chainID invalid")
	}
	if height < 0 {
		return BlockInfo{}, errors.Wrapf(errors.ErrInput, "negative height %d", height)
	}
	if logger == nil {
		logger = DefaultLogger
	}
	return BlockInfo{
		chainID: chainID,
		height:  height,
		time:    blockTime.UTC(),
		logger:  logger,
	}, nil
}

func (b BlockInfo) ChainID() string {
	return b.chainID
}

func (b BlockInfo) Height() int64 {
	return b.height
}

// TxIndex is the position of the current operation within the block.
func (b BlockInfo) TxIndex() uint32 {
	return b.txIndex
}

func (b BlockInfo) BlockTime() time.Time {
	return b.time
}

func (b BlockInfo) Logger() log.Logger {
	if b.logger == nil {
		return DefaultLogger
	}
	return b.logger
}

// WithTxIndex returns a copy of this block info pointing at another
// operation of the same block.
func (b BlockInfo) WithTxIndex(index uint32) BlockInfo {
	b.txIndex = index
	return b
}

// WithLogInfo accepts keyvalue pairs, and returns another
// block info like this, after passing all the keyvals to the
// Logger
func (b BlockInfo) WithLogInfo(keyvals ...interface{}) BlockInfo {
	b.logger = b.Logger().With(keyvals...)
	return b
}
