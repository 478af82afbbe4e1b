package cash

import (
	"github.com/iov-one/bazaar/coin"
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const confPkg = "cash"

// Configuration of the cash extension.
type Configuration struct {
	// MinimumBalance is the smallest amount of its currency an account may
	// hold. A zero value disables the check.
	MinimumBalance coin.Coin `json:"minimum_balance"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if c.MinimumBalance.IsZero() {
		return nil
	}
	if err := c.MinimumBalance.Validate(); err != nil {
		return errors.Wrap(err, "minimum balance")
	}
	if !c.MinimumBalance.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "minimum balance must be positive")
	}
	return nil
}

// loadConf returns the stored configuration. A missing configuration
// means there is no minimum balance.
func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		if errors.ErrNotFound.Is(err) {
			return Configuration{}, nil
		}
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// SaveConfig stores the configuration of the cash extension.
func SaveConfig(db gconf.Store, conf Configuration) error {
	return gconf.Save(db, confPkg, &conf)
}
