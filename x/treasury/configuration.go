package treasury

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
}

var _ orm.Model = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	if len(c.Approvers) == 0 {
		errs = errors.AppendField(errs, "Approvers", errors.ErrEmpty)
	}
	// Approvers must not repeat. A duplicated entry would count twice
	// towards the quorum.
	seen := make(map[string]struct{})
	for _, a := range c.Approvers {
		if err := a.Validate(); err != nil {
			errs = errors.AppendField(errs, "Approvers", err)
			continue
		}
		if _, ok := seen[a.String()]; ok {
			errs = errors.AppendField(errs, "Approvers", errors.Wrapf(errors.ErrDuplicate, "approver %s", a))
			continue
		}
		seen[a.String()] = struct{}{}
	}
	switch {
	case c.Quorum == 0:
		errs = errors.AppendField(errs, "Quorum", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	case int(c.Quorum) > len(c.Approvers):
		errs = errors.AppendField(errs, "Quorum", errors.Wrap(errors.ErrAmount, "must not be greater than the number of approvers"))
	}
	return errs
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "treasury", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
