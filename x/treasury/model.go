package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Withdrawal{}, migration.NoModification)
}

const (
	maxMemoSize = 128
	maxRefSize  = 64
)

var _ orm.Model = (*Withdrawal)(nil)

func (m *Withdrawal) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if err := m.Amount.Validate(); err != nil {
		errs = errors.AppendField(errs, "Amount", err)
	} else if !m.Amount.IsPositive() {
		errs = errors.AppendField(errs, "Amount", errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.AppendField(errs, "Memo", errors.Wrapf(errors.ErrInput, "longer than %d characters", maxMemoSize))
	}
	if len(m.Ref) > maxRefSize {
		errs = errors.AppendField(errs, "Ref", errors.Wrapf(errors.ErrInput, "longer than %d bytes", maxRefSize))
	}
	for _, c := range m.Confirmations {
		errs = errors.AppendField(errs, "Confirmations", c.Validate())
	}
	errs = errors.AppendField(errs, "CreatedAt", m.CreatedAt.Validate())
	return errs
}

// HasConfirmed returns true if the given address already confirmed this
// withdrawal.
func (m *Withdrawal) HasConfirmed(a weave.Address) bool {
	for _, c := range m.Confirmations {
		if c.Equals(a) {
			return true
		}
	}
	return false
}

// Confirm adds the given address to the confirmation set. Each address can
// confirm only once.
func (m *Withdrawal) Confirm(a weave.Address) error {
	if m.HasConfirmed(a) {
		return errors.Wrapf(ErrAlreadyConfirmed, "approver %s", a)
	}
	m.Confirmations = append(m.Confirmations, a)
	return nil
}

// RevokeConfirmation removes the given address from the confirmation set. It
// fails if no confirmation from that address exists.
func (m *Withdrawal) RevokeConfirmation(a weave.Address) error {
	for i, c := range m.Confirmations {
		if c.Equals(a) {
			m.Confirmations = append(m.Confirmations[:i], m.Confirmations[i+1:]...)
			return nil
		}
	}
	return errors.Wrapf(ErrNotConfirmed, "approver %s", a)
}

func NewWithdrawalBucket() orm.ModelBucket {
	b := orm.NewModelBucket("withdrawal", &Withdrawal{},
		orm.WithIDSequence(withdrawalSeq),
	)
	return migration.NewModelBucket("treasury", b)
}

var withdrawalSeq = orm.NewSequence("treasury", "id")
