package sale

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &OgMintMsg{}, migration.NoModification)
	migration.MustRegister(1, &WlMintMsg{}, migration.NoModification)
	migration.MustRegister(1, &PublicMintMsg{}, migration.NoModification)
	migration.MustRegister(1, &OperatorMintMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*OgMintMsg)(nil)

func (OgMintMsg) Path() string {
	return "sale/og_mint"
}

func (m *OgMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Minter", m.Minter.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Payment", validatePayment(m.Payment))
	return errs
}

var _ weave.Msg = (*WlMintMsg)(nil)

func (WlMintMsg) Path() string {
	return "sale/wl_mint"
}

func (m *WlMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Minter", m.Minter.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Payment", validatePayment(m.Payment))
	return errs
}

var _ weave.Msg = (*PublicMintMsg)(nil)

func (PublicMintMsg) Path() string {
	return "sale/public_mint"
}

func (m *PublicMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Minter", m.Minter.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Payment", validatePayment(m.Payment))
	return errs
}

var _ weave.Msg = (*OperatorMintMsg)(nil)

func (OperatorMintMsg) Path() string {
	return "sale/operator_mint"
}

func (m *OperatorMintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	if m.Amount == 0 {
		errs = errors.AppendField(errs, "Amount",
			errors.Wrap(errors.ErrAmount, "must be greater than zero"))
	}
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "sale/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	// The patch can be sparse. Zero value fields keep the currently
	// configured value, so the full configuration validation can be done
	// only after patching.
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

func validatePayment(p coin.Coin) error {
	// A zero value payment is valid. A free mint carries no currency.
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
