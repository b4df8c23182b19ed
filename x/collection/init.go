package collection

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it to the
// database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	// Unlike for most extensions, this configuration is not optional. The
	// supply cap must be present in the genesis as it cannot be set
	// afterwards.
	if err := gconf.InitConfig(db, opts, "collection", &conf); err != nil {
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}
	return nil
}
