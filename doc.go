/*
Package bazaar defines the interfaces shared by the asset marketplace
packages: key-value storage with savepoints, persistent models, account
addresses, block information and genesis options.

Extensions (see x/) are written against these interfaces only, so the
same code runs over the in-memory btree store used in tests and the
durable iavl store used by the daemon.
*/
package bazaar
