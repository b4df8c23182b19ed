package sale

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Gate answers whether the sale has reached the point at which the
// collected funds may leave the revenue account.
type Gate struct{}

func NewGate() Gate {
	return Gate{}
}

// CanWithdraw returns nil once the public sale has started and the token
// metadata location is configured. Until both conditions hold, the funds
// collected by the mint handlers must stay locked.
func (Gate) CanWithdraw(ctx weave.Context, db weave.KVStore) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return errors.Wrap(err, "block time")
	}
	if stage := CurrentStage(&conf, weave.AsUnixTime(now)); stage != StagePublicSale {
		return errors.Wrapf(ErrWrongStage, "sale is %s", stage)
	}
	if conf.BaseUri == "" {
		return errors.Wrap(errors.ErrState, "metadata base URI is not configured")
	}
	return nil
}
