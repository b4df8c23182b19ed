package sale

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestOgMintMsgValidate(t *testing.T) {
	minter := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Msg *OgMintMsg
		// Field name to error mapping. Use `nil` if no error is expected.
		WantErrs map[string]*errors.Error
	}{
		"valid message": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   2,
				Proof:    [][]byte{leafHash([]byte("sibling"))},
				Payment:  coin.NewCoin(2, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Metadata": nil,
				"Minter":   nil,
				"Amount":   nil,
				"Payment":  nil,
			},
		},
		"an empty proof is valid in the message": {
			// Whether the proof holds is decided by the handler, not
			// during the message validation.
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   1,
				Payment:  coin.NewCoin(1, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Proof": nil,
			},
		},
		"missing metadata": {
			Msg: &OgMintMsg{
				Minter:  minter,
				Amount:  1,
				Payment: coin.NewCoin(1, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing minter": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   1,
				Payment:  coin.NewCoin(1, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Minter": errors.ErrEmpty,
			},
		},
		"zero amount": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   0,
				Payment:  coin.NewCoin(1, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"negative payment": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   1,
				Payment:  coin.NewCoin(-1, 0, "IOV"),
			},
			WantErrs: map[string]*errors.Error{
				"Payment": errors.ErrAmount,
			},
		},
		"a zero payment is valid, the mint may be free": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   1,
			},
			WantErrs: map[string]*errors.Error{
				"Payment": nil,
			},
		},
		"a non zero payment needs a currency": {
			Msg: &OgMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Minter:   minter,
				Amount:   1,
				Payment:  coin.Coin{Whole: 1},
			},
			WantErrs: map[string]*errors.Error{
				"Payment": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestOperatorMintMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg      *OperatorMintMsg
		WantErrs map[string]*errors.Error
	}{
		"valid message": {
			Msg: &OperatorMintMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
				Amount:    10,
			},
			WantErrs: map[string]*errors.Error{
				"Metadata":  nil,
				"Recipient": nil,
				"Amount":    nil,
			},
		},
		"missing recipient": {
			Msg: &OperatorMintMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   10,
			},
			WantErrs: map[string]*errors.Error{
				"Recipient": errors.ErrEmpty,
			},
		},
		"zero amount": {
			Msg: &OperatorMintMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Recipient: weavetest.NewCondition().Address(),
			},
			WantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg      *UpdateConfigurationMsg
		WantErrs map[string]*errors.Error
	}{
		"a sparse patch is valid": {
			Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					BaseUri: "ipfs://QmYwAPJzv5CZsnA/",
				},
			},
			WantErrs: map[string]*errors.Error{
				"Patch": nil,
			},
		},
		"missing patch": {
			Msg: &UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			WantErrs: map[string]*errors.Error{
				"Patch": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Msg.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
