package store

import "github.com/iov-one/bazaar"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = bazaar.ReadOnlyKVStore
	KVStore          = bazaar.KVStore
	SetDeleter       = bazaar.SetDeleter
	Batch            = bazaar.Batch
	Iterator         = bazaar.Iterator
	CacheableKVStore = bazaar.CacheableKVStore
	KVCacheWrap      = bazaar.KVCacheWrap
	CommitKVStore    = bazaar.CommitKVStore
	CommitID         = bazaar.CommitID
	Model            = bazaar.Model
)
