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

func TestWithdrawalValidate(t *testing.T) {
	var (
		dest     = weavetest.NewCondition().Address()
		approver = weavetest.NewCondition().Address()
	)

	valid := Withdrawal{
		Metadata:      &weave.Metadata{Schema: 1},
		Destination:   dest,
		Amount:        coin.NewCoin(5, 0, "IOV"),
		Memo:          "artist payout",
		Confirmations: []weave.Address{approver},
		CreatedAt:     weave.UnixTime(1600000000),
	}

	cases := map[string]struct {
		Mod func(*Withdrawal)
		// Field name to error mapping. Use `nil` if no error is
		// expected.
		WantErrs map[string]*errors.Error
	}{
		"valid withdrawal": {
			Mod: nil,
			WantErrs: map[string]*errors.Error{
				"Metadata":      nil,
				"Destination":   nil,
				"Amount":        nil,
				"Memo":          nil,
				"Ref":           nil,
				"Confirmations": nil,
				"CreatedAt":     nil,
			},
		},
		"missing metadata": {
			Mod: func(w *Withdrawal) { w.Metadata = nil },
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing destination": {
			Mod: func(w *Withdrawal) { w.Destination = nil },
			WantErrs: map[string]*errors.Error{
				"Destination": errors.ErrEmpty,
			},
		},
		"zero amount": {
			Mod: func(w *Withdrawal) { w.Amount = coin.NewCoin(0, 0, "IOV") },
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"negative amount": {
			Mod: func(w *Withdrawal) { w.Amount = coin.NewCoin(-1, 0, "IOV") },
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"memo too long": {
			Mod: func(w *Withdrawal) { w.Memo = strings.Repeat("x", maxMemoSize+1) },
			WantErrs: map[string]*errors.Error{
				"Memo": errors.ErrInput,
			},
		},
		"ref too long": {
			Mod: func(w *Withdrawal) { w.Ref = []byte(strings.Repeat("x", maxRefSize+1)) },
			WantErrs: map[string]*errors.Error{
				"Ref": errors.ErrInput,
			},
		},
		"malformed confirmation": {
			Mod: func(w *Withdrawal) {
				w.Confirmations = []weave.Address{weave.Address("x")}
			},
			WantErrs: map[string]*errors.Error{
				"Confirmations": errors.ErrInput,
			},
		},
		"negative creation time": {
			Mod: func(w *Withdrawal) { w.CreatedAt = -5 },
			WantErrs: map[string]*errors.Error{
				"CreatedAt": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			w := valid
			if tc.Mod != nil {
				tc.Mod(&w)
			}
			err := w.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestWithdrawalConfirmations(t *testing.T) {
	var (
		a = weavetest.NewCondition().Address()
		b = weavetest.NewCondition().Address()
	)

	var w Withdrawal

	if w.HasConfirmed(a) {
		t.Fatal("a fresh withdrawal must have no confirmations")
	}
	if err := w.Confirm(a); err != nil {
		t.Fatalf("first confirmation: %+v", err)
	}
	if err := w.Confirm(a); !ErrAlreadyConfirmed.Is(err) {
		t.Fatalf("want an already confirmed error, got %+v", err)
	}
	if err := w.Confirm(b); err != nil {
		t.Fatalf("second confirmation: %+v", err)
	}
	if !w.HasConfirmed(a) || !w.HasConfirmed(b) {
		t.Fatal("both confirmations must be recorded")
	}

	if err := w.RevokeConfirmation(a); err != nil {
		t.Fatalf("revoke: %+v", err)
	}
	if w.HasConfirmed(a) {
		t.Fatal("a revoked confirmation must be gone")
	}
	if !w.HasConfirmed(b) {
		t.Fatal("revoking one confirmation must not affect another")
	}
	if err := w.RevokeConfirmation(a); !ErrNotConfirmed.Is(err) {
		t.Fatalf("want a not confirmed error, got %+v", err)
	}
}
