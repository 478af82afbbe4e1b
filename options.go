package bazaar

import (
	"encoding/json"

	"github.com/iov-one/bazaar/errors"
)

// Options are the app options read from the genesis file.
// Each extension can look up its key and parse the json as desired.
type Options map[string]json.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	if err := json.Unmarshal([]byte(msg), obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot parse %q option: %s", key, err)
	}
	return nil
}

// Initializer implementations are used to initialize extensions from the
// genesis file contents.
type Initializer interface {
	FromGenesis(opts Options, info BlockInfo, kv KVStore) error
}

// ChainInitializers lets you initialize many extensions with one function
func ChainInitializers(inits ...Initializer) Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []Initializer
}

// FromGenesis will pass opts to all Initializers in the list,
// aborting at the first error.
func (c chainInitializer) FromGenesis(opts Options, info BlockInfo, kv KVStore) error {
	for _, i := range c.inits {
		if err := i.FromGenesis(opts, info, kv); err != nil {
			return err
		}
	}
	return nil
}
