package sale

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial configuration from genesis and save it in
// the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, "sale", &conf); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		// The sale configuration is optional during the genesis. It can
		// be created later by the migration admin.
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}
	return nil
}
