package sale

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	// Complete and valid. Cases modify a copy to break a single field.
	valid := Configuration{
		Metadata:          &weave.Metadata{Schema: 1},
		Owner:             weavetest.NewCondition().Address(),
		Price:             coin.NewCoin(2, 0, "IOV"),
		PresalePriceOg:    coin.NewCoin(1, 0, "IOV"),
		PresalePriceWl:    coin.NewCoin(1, 500000000, "IOV"),
		MaxTokenPerWallet: 4,
		MaxMintPerTx:      2,
		PresaleMaxPerOg:   3,
		PresaleMaxPerWl:   2,
		PresaleStart:      1600000000,
		PublicSaleStart:   1600003600,
		OgRoot:            leafHash([]byte("og")),
		WlRoot:            leafHash([]byte("wl")),
		BaseUri:           "ipfs://QmYwAPJzv5CZsnA/",
	}

	cases := map[string]struct {
		Mod func(*Configuration)
		// Field name to error mapping. Use `nil` if no error is expected.
		WantErrs map[string]*errors.Error
	}{
		"valid configuration": {
			Mod: func(*Configuration) {},
			WantErrs: map[string]*errors.Error{
				"Metadata":        nil,
				"Owner":           nil,
				"Price":           nil,
				"PresaleStart":    nil,
				"PublicSaleStart": nil,
				"OgRoot":          nil,
				"WlRoot":          nil,
			},
		},
		"missing metadata": {
			Mod: func(c *Configuration) { c.Metadata = nil },
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing owner": {
			Mod: func(c *Configuration) { c.Owner = nil },
			WantErrs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"negative price": {
			Mod: func(c *Configuration) { c.Price = coin.NewCoin(-1, 0, "IOV") },
			WantErrs: map[string]*errors.Error{
				"Price": errors.ErrAmount,
			},
		},
		"price without a currency": {
			Mod: func(c *Configuration) { c.PresalePriceOg = coin.Coin{Whole: 1} },
			WantErrs: map[string]*errors.Error{
				"PresalePriceOg": errors.ErrCurrency,
			},
		},
		"a zero price makes the stage a free mint": {
			Mod: func(c *Configuration) { c.Price = coin.Coin{} },
			WantErrs: map[string]*errors.Error{
				"Price": nil,
			},
		},
		"missing presale start": {
			Mod: func(c *Configuration) { c.PresaleStart = 0 },
			WantErrs: map[string]*errors.Error{
				"PresaleStart": errors.ErrEmpty,
			},
		},
		"missing public sale start": {
			Mod: func(c *Configuration) { c.PublicSaleStart = 0 },
			WantErrs: map[string]*errors.Error{
				"PublicSaleStart": errors.ErrEmpty,
			},
		},
		"malformed allowlist root": {
			Mod: func(c *Configuration) { c.OgRoot = []byte("short") },
			WantErrs: map[string]*errors.Error{
				"OgRoot": errors.ErrInput,
			},
		},
		"unset allowlist roots are allowed": {
			Mod: func(c *Configuration) {
				c.OgRoot = nil
				c.WlRoot = nil
			},
			WantErrs: map[string]*errors.Error{
				"OgRoot": nil,
				"WlRoot": nil,
			},
		},
		"unset base uri is allowed": {
			Mod: func(c *Configuration) { c.BaseUri = "" },
			WantErrs: map[string]*errors.Error{
				"BaseUri": nil,
			},
		},
		"unset reveal time is allowed": {
			Mod: func(c *Configuration) { c.RevealAt = 0 },
			WantErrs: map[string]*errors.Error{
				"RevealAt": nil,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			c := valid
			tc.Mod(&c)
			err := c.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
