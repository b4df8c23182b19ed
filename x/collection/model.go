package collection

import (
	"encoding/binary"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Token{}, migration.NoModification)
	migration.MustRegister(1, &Counter{}, migration.NoModification)
}

var _ orm.Model = (*Token)(nil)

func (m *Token) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	errs = errors.AppendField(errs, "MintedAt", m.MintedAt.Validate())
	return errs
}

func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("token", &Token{},
		orm.WithIndex("owner", tokenOwner, false),
	)
	return migration.NewModelBucket("collection", b)
}

func tokenOwner(o orm.Object) ([]byte, error) {
	t, ok := o.Value().(*Token)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a Token")
	}
	return t.Owner, nil
}

var _ orm.Model = (*Counter)(nil)

func (m *Counter) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	return errs
}

func NewCounterBucket() orm.ModelBucket {
	b := orm.NewModelBucket("supply", &Counter{})
	return migration.NewModelBucket("collection", b)
}

// counterKey is the key of the only Counter instance that this package
// maintains.
var counterKey = []byte("minted")

// tokenKey returns the database key of a token. Tokens are identified by a
// sequence number, the first minted token having the ID 1.
func tokenKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}
