package market

import (
	"github.com/iov-one/bazaar/errors"
	"github.com/iov-one/bazaar/gconf"
)

const confPkg = "market"

// Configuration of the market extension.
type Configuration struct {
	// MaxOwned is the number of assets a single account can hold.
	MaxOwned uint32 `json:"max_owned"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(c)
}

func (c *Configuration) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, c)
}

func (c *Configuration) Validate() error {
	if c.MaxOwned == 0 {
		return errors.Field("MaxOwned", errors.ErrInput, "must be greater than zero")
	}
	return nil
}

// LoadConfig returns the stored configuration. The market cannot operate
// without one.
func LoadConfig(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, confPkg, &conf); err != nil {
		return conf, errors.Wrap(err, "load market configuration")
	}
	return conf, nil
}

// SaveConfig validates and stores the configuration of the market
// extension.
func SaveConfig(db gconf.Store, conf Configuration) error {
	return gconf.Save(db, confPkg, &conf)
}
