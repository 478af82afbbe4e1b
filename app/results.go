package app

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Result is the outcome of a single operation. A zero code means
// success.
type Result struct {
	Kind string `json:"op"`
	Code uint32 `json:"code"`
	Log  string `json:"log,omitempty"`
	// Data is set by operations that return a value, for example the ID
	// of a created asset.
	Data []byte          `json:"data,omitempty"`
	Tags []common.KVPair `json:"tags,omitempty"`
}

// IsOK returns true if the operation succeeded.
func (r Result) IsOK() bool {
	return r.Code == 0
}

// BlockResult describes a committed block.
type BlockResult struct {
	Height  int64    `json:"height"`
	Hash    []byte   `json:"hash"`
	Results []Result `json:"results"`
}
