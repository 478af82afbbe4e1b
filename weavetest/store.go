package weavetest

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data.
// This implementation should be used instead of MemStore when you want the
// exact same storage implementation as the production instance is using.
func CommitKVStore(t testing.TB) (db *iavl.CommitStore, cleanup func()) {
	t.Helper()

	dbpath, err := ioutil.TempDir("", "bazaar")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	db, err = iavl.NewCommitStore(dbpath, "db")
	if err != nil {
		os.RemoveAll(dbpath)
		t.Fatalf("cannot create commit store: %s", err)
	}
	return db, func() {
		db.Close()
		os.RemoveAll(dbpath)
	}
}

// BlockInfo returns a block info for the given height of a test chain,
// with a deterministic block time.
func BlockInfo(t testing.TB, height int64) bazaar.BlockInfo {
	t.Helper()

	blockTime := time.Date(2019, time.March, 15, 14, 56, 0, 0, time.UTC).Add(time.Duration(height) * 5 * time.Second)
	info, err := bazaar.NewBlockInfo("test-chain", height, blockTime, nil)
	if err != nil {
		t.Fatalf("cannot create block info: %s", err)
	}
	return info
}
