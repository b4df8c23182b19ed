package sale

import (
	"crypto/sha256"

	"github.com/iov-one/weave/coin"
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
	errs = errors.AppendField(errs, "Price", validatePrice(c.Price))
	errs = errors.AppendField(errs, "PresalePriceOg", validatePrice(c.PresalePriceOg))
	errs = errors.AppendField(errs, "PresalePriceWl", validatePrice(c.PresalePriceWl))
	// A sale without dates could never leave the idle stage. Reject such
	// a configuration instead of letting it sit dead.
	if c.PresaleStart == 0 {
		errs = errors.AppendField(errs, "PresaleStart", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "PresaleStart", c.PresaleStart.Validate())
	}
	if c.PublicSaleStart == 0 {
		errs = errors.AppendField(errs, "PublicSaleStart", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "PublicSaleStart", c.PublicSaleStart.Validate())
	}
	if c.RevealAt != 0 {
		errs = errors.AppendField(errs, "RevealAt", c.RevealAt.Validate())
	}
	errs = errors.AppendField(errs, "OgRoot", validateRoot(c.OgRoot))
	errs = errors.AppendField(errs, "WlRoot", validateRoot(c.WlRoot))
	return errs
}

// validatePrice accepts the zero value. A stage with a zero price is a free
// mint.
func validatePrice(p coin.Coin) error {
	if p.IsZero() {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	return nil
}

// validateRoot accepts an unset allowlist root. Minting against an unset
// root always fails the proof check.
func validateRoot(root []byte) error {
	if len(root) != 0 && len(root) != sha256.Size {
		return errors.Wrap(errors.ErrInput, "must be a sha256 checksum")
	}
	return nil
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "sale", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
