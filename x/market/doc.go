/*
Package market implements a registry of uniquely identified digital assets
together with a marketplace where owners can price, give away and sell
them.

Every asset has exactly one owner and every owner keeps a bounded list of
the assets it holds. All state changing operations of the Service are
atomic: they either apply every write or none, and the events describing
them are emitted only after the writes were committed.
*/
package market
