package utils

import (
	"github.com/iov-one/bazaar/errors"
)

// Recovered calls fn and turns a panic into an ErrPanic error, so that
// it can be logged as any other failure.
func Recovered(fn func() error) (err error) {
	defer errors.Recover(&err)
	return fn()
}
