package bazaar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/bazaar"
)

func TestVersion(t *testing.T) {
	defer func() { bazaar.GitCommit = "" }()

	bazaar.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", bazaar.Version())

	bazaar.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", bazaar.Version())
}
