package sale

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestGateCanWithdraw(t *testing.T) {
	var (
		presaleStart = weave.UnixTime(1600000000)
		publicStart  = presaleStart + 3600
	)

	base := Configuration{
		Metadata:        &weave.Metadata{Schema: 1},
		Owner:           weavetest.NewCondition().Address(),
		Price:           coin.NewCoin(2, 0, "IOV"),
		PresalePriceOg:  coin.NewCoin(1, 0, "IOV"),
		PresalePriceWl:  coin.NewCoin(1, 0, "IOV"),
		PresaleStart:    presaleStart,
		PublicSaleStart: publicStart,
		BaseUri:         "ipfs://QmYwAPJzv5CZsnA/",
	}
	noURI := base
	noURI.BaseUri = ""

	cases := map[string]struct {
		Conf    Configuration
		Now     weave.UnixTime
		WantErr *errors.Error
	}{
		"before the sale": {
			Conf:    base,
			Now:     presaleStart - 1,
			WantErr: ErrWrongStage,
		},
		"during the presale": {
			Conf:    base,
			Now:     presaleStart + 10,
			WantErr: ErrWrongStage,
		},
		"public sale with the metadata location set": {
			Conf:    base,
			Now:     publicStart + 10,
			WantErr: nil,
		},
		"public sale without the metadata location": {
			Conf:    noURI,
			Now:     publicStart + 10,
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "sale")
			if err := gconf.Save(db, "sale", &tc.Conf); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}
			ctx := weave.WithBlockTime(context.Background(), tc.Now.Time())
			if err := NewGate().CanWithdraw(ctx, db); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
