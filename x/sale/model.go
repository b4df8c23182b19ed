package sale

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Participant{}, migration.NoModification)
}

var _ orm.Model = (*Participant)(nil)

func (m *Participant) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", m.Address.Validate())
	return errs
}

// NewParticipantBucket returns the bucket of per wallet mint records. The
// records are keyed by the wallet address.
func NewParticipantBucket() orm.ModelBucket {
	b := orm.NewModelBucket("minter", &Participant{})
	return migration.NewModelBucket("sale", b)
}
