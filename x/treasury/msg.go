package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &SubmitWithdrawalMsg{}, migration.NoModification)
	migration.MustRegister(1, &ConfirmWithdrawalMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeConfirmationMsg{}, migration.NoModification)
	migration.MustRegister(1, &ExecuteWithdrawalMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*SubmitWithdrawalMsg)(nil)

func (SubmitWithdrawalMsg) Path() string {
	return "treasury/submit_withdrawal"
}

func (m *SubmitWithdrawalMsg) Validate() error {
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
	return errs
}

var _ weave.Msg = (*ConfirmWithdrawalMsg)(nil)

func (ConfirmWithdrawalMsg) Path() string {
	return "treasury/confirm_withdrawal"
}

func (m *ConfirmWithdrawalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.WithdrawalID) == 0 {
		errs = errors.AppendField(errs, "WithdrawalID", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*RevokeConfirmationMsg)(nil)

func (RevokeConfirmationMsg) Path() string {
	return "treasury/revoke_confirmation"
}

func (m *RevokeConfirmationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.WithdrawalID) == 0 {
		errs = errors.AppendField(errs, "WithdrawalID", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*ExecuteWithdrawalMsg)(nil)

func (ExecuteWithdrawalMsg) Path() string {
	return "treasury/execute_withdrawal"
}

func (m *ExecuteWithdrawalMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if len(m.WithdrawalID) == 0 {
		errs = errors.AppendField(errs, "WithdrawalID", errors.ErrEmpty)
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "treasury/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	} else {
		// Unlike the sale configuration, the treasury one is always
		// replaced as a whole. Approvers and quorum must be consistent
		// within a single message, merging could break that.
		errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	}
	return errs
}
