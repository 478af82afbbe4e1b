package weavetest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	"github.com/iov-one/bazaar"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// bazaar.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) bazaar.Address {
	t.Helper()

	addr, err := bazaar.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

var addressSeq uint64

// NewAddress returns a new, unique address. Use it when a test needs an
// account but does not care about its value.
func NewAddress() bazaar.Address {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, atomic.AddUint64(&addressSeq, 1))
	return bazaar.NewAddress(raw)
}
