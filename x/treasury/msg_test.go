package treasury

import (
	"strings"
	"testing"

	weave "github.com/iov-one/weave"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestSubmitWithdrawalMsgValidate(t *testing.T) {
	dest := weavetest.NewCondition().Address()

	valid := SubmitWithdrawalMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Destination: dest,
		Amount:      coin.NewCoin(5, 0, "IOV"),
		Memo:        "artist payout",
	}

	cases := map[string]struct {
		Mod func(*SubmitWithdrawalMsg)
		// Field name to error mapping. Use `nil` if no error is
		// expected.
		WantErrs map[string]*errors.Error
	}{
		"valid message": {
			Mod: nil,
			WantErrs: map[string]*errors.Error{
				"Metadata":    nil,
				"Destination": nil,
				"Amount":      nil,
				"Memo":        nil,
				"Ref":         nil,
			},
		},
		"missing metadata": {
			Mod: func(msg *SubmitWithdrawalMsg) { msg.Metadata = nil },
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing destination": {
			Mod: func(msg *SubmitWithdrawalMsg) { msg.Destination = nil },
			WantErrs: map[string]*errors.Error{
				"Destination": errors.ErrEmpty,
			},
		},
		"zero amount": {
			Mod: func(msg *SubmitWithdrawalMsg) { msg.Amount = coin.NewCoin(0, 0, "IOV") },
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"amount without a currency": {
			Mod: func(msg *SubmitWithdrawalMsg) { msg.Amount = coin.Coin{Whole: 1} },
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
		"memo too long": {
			Mod: func(msg *SubmitWithdrawalMsg) { msg.Memo = strings.Repeat("x", maxMemoSize+1) },
			WantErrs: map[string]*errors.Error{
				"Memo": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := valid
			if tc.Mod != nil {
				tc.Mod(&msg)
			}
			err := msg.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestConfirmWithdrawalMsgValidate(t *testing.T) {
	valid := ConfirmWithdrawalMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		WithdrawalID: weavetest.SequenceID(1),
	}

	cases := map[string]struct {
		Mod func(*ConfirmWithdrawalMsg)
		// Field name to error mapping. Use `nil` if no error is
		// expected.
		WantErrs map[string]*errors.Error
	}{
		"valid message": {
			Mod: nil,
			WantErrs: map[string]*errors.Error{
				"Metadata":     nil,
				"WithdrawalID": nil,
			},
		},
		"missing metadata": {
			Mod: func(msg *ConfirmWithdrawalMsg) { msg.Metadata = nil },
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing withdrawal id": {
			Mod: func(msg *ConfirmWithdrawalMsg) { msg.WithdrawalID = nil },
			WantErrs: map[string]*errors.Error{
				"WithdrawalID": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg := valid
			if tc.Mod != nil {
				tc.Mod(&msg)
			}
			err := msg.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	var (
		owner    = weavetest.NewCondition().Address()
		approver = weavetest.NewCondition().Address()
	)

	t.Run("valid message", func(t *testing.T) {
		msg := UpdateConfigurationMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Patch: &Configuration{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     owner,
				Approvers: []weave.Address{approver},
				Quorum:    1,
			},
		}
		if err := msg.Validate(); err != nil {
			t.Fatalf("a complete patch must be valid: %+v", err)
		}
	})

	// Unlike the sale configuration, the treasury one is small enough that
	// every update must provide a complete replacement.
	t.Run("incomplete patch", func(t *testing.T) {
		msg := UpdateConfigurationMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Patch: &Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
			},
		}
		err := msg.Validate()
		assert.FieldError(t, err, "Approvers", errors.ErrEmpty)
		assert.FieldError(t, err, "Quorum", errors.ErrAmount)
	})
}
