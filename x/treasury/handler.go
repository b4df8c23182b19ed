package treasury

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewWithdrawalBucket().Register("withdrawals", qr)
}

// ReleaseGate decides if funds are allowed to leave the revenue account. The
// sale package provides an implementation that opens the gate during the
// public sale once the token metadata location is configured.
type ReleaseGate interface {
	CanWithdraw(ctx weave.Context, db weave.KVStore) error
}

// RevenueAccount returns the address that collects all mint payments.
// Executed withdrawals are paid out of this account.
func RevenueAccount() weave.Address {
	return weave.NewCondition("treasury", "revenue", []byte("main")).Address()
}

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller, gate ReleaseGate) {
	r = migration.SchemaMigratingRegistry("treasury", r)

	withdrawals := NewWithdrawalBucket()

	r.Handle(&SubmitWithdrawalMsg{}, &submitWithdrawalHandler{
		auth:        auth,
		withdrawals: withdrawals,
	})
	r.Handle(&ConfirmWithdrawalMsg{}, &confirmWithdrawalHandler{
		auth:        auth,
		withdrawals: withdrawals,
	})
	r.Handle(&RevokeConfirmationMsg{}, &revokeConfirmationHandler{
		auth:        auth,
		withdrawals: withdrawals,
	})
	r.Handle(&ExecuteWithdrawalMsg{}, &executeWithdrawalHandler{
		auth:        auth,
		withdrawals: withdrawals,
		cashctrl:    cashctrl,
		gate:        gate,
		guard:       &payoutGuard{},
	})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler("treasury", &Configuration{}, auth, migration.CurrentAdmin))
}

// payoutGuard serializes withdrawal executions of a single application
// instance. A payout moves funds and rewrites the withdrawal record and no
// second payout may start until all writes of the first one are done. The
// flag is released when the handler returns, also on failure.
type payoutGuard struct {
	busy bool
}

func (g *payoutGuard) enter() error {
	if g.busy {
		return errors.Wrap(ErrReentrancy, "payout in progress")
	}
	g.busy = true
	return nil
}

func (g *payoutGuard) exit() {
	g.busy = false
}

type submitWithdrawalHandler struct {
	auth        x.Authenticator
	withdrawals orm.ModelBucket
}

func (h *submitWithdrawalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *submitWithdrawalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	withdrawal := Withdrawal{
		Metadata:    &weave.Metadata{Schema: 1},
		Destination: msg.Destination,
		Amount:      msg.Amount,
		Memo:        msg.Memo,
		Ref:         msg.Ref,
		CreatedAt:   weave.AsUnixTime(now),
	}
	key, err := h.withdrawals.Put(db, nil, &withdrawal)
	if err != nil {
		return nil, errors.Wrap(err, "store withdrawal")
	}
	return &weave.DeliverResult{Data: key}, nil
}

func (h *submitWithdrawalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SubmitWithdrawalMsg, error) {
	var msg SubmitWithdrawalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	// Both the owner and any approver can propose a withdrawal. Approvals
	// are a separate step, a proposal alone moves no funds.
	if !h.auth.HasAddress(ctx, conf.Owner) {
		if _, err := signingApprover(ctx, h.auth, &conf); err != nil {
			return nil, errors.Wrap(errors.ErrUnauthorized, "owner or approver signature missing")
		}
	}
	return &msg, nil
}

type confirmWithdrawalHandler struct {
	auth        x.Authenticator
	withdrawals orm.ModelBucket
}

func (h *confirmWithdrawalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *confirmWithdrawalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, withdrawal, approver, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := withdrawal.Confirm(approver); err != nil {
		return nil, err
	}
	if _, err := h.withdrawals.Put(db, msg.WithdrawalID, withdrawal); err != nil {
		return nil, errors.Wrap(err, "store withdrawal")
	}
	return &weave.DeliverResult{Data: msg.WithdrawalID}, nil
}

func (h *confirmWithdrawalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ConfirmWithdrawalMsg, *Withdrawal, weave.Address, error) {
	var msg ConfirmWithdrawalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	approver, err := signingApprover(ctx, h.auth, &conf)
	if err != nil {
		return nil, nil, nil, err
	}
	var withdrawal Withdrawal
	if err := h.withdrawals.One(db, msg.WithdrawalID, &withdrawal); err != nil {
		return nil, nil, nil, err
	}
	if withdrawal.Executed {
		return nil, nil, nil, errors.Wrap(ErrAlreadyExecuted, "withdrawal is paid out")
	}
	if withdrawal.HasConfirmed(approver) {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyConfirmed, "approver %s", approver)
	}
	return &msg, &withdrawal, approver, nil
}

type revokeConfirmationHandler struct {
	auth        x.Authenticator
	withdrawals orm.ModelBucket
}

func (h *revokeConfirmationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *revokeConfirmationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, withdrawal, approver, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := withdrawal.RevokeConfirmation(approver); err != nil {
		return nil, err
	}
	if _, err := h.withdrawals.Put(db, msg.WithdrawalID, withdrawal); err != nil {
		return nil, errors.Wrap(err, "store withdrawal")
	}
	return &weave.DeliverResult{Data: msg.WithdrawalID}, nil
}

func (h *revokeConfirmationHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeConfirmationMsg, *Withdrawal, weave.Address, error) {
	var msg RevokeConfirmationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	approver, err := signingApprover(ctx, h.auth, &conf)
	if err != nil {
		return nil, nil, nil, err
	}
	var withdrawal Withdrawal
	if err := h.withdrawals.One(db, msg.WithdrawalID, &withdrawal); err != nil {
		return nil, nil, nil, err
	}
	// A confirmation can be taken back at any point before the payout,
	// also when the quorum was already reached.
	if withdrawal.Executed {
		return nil, nil, nil, errors.Wrap(ErrAlreadyExecuted, "withdrawal is paid out")
	}
	if !withdrawal.HasConfirmed(approver) {
		return nil, nil, nil, errors.Wrapf(ErrNotConfirmed, "approver %s", approver)
	}
	return &msg, &withdrawal, approver, nil
}

type executeWithdrawalHandler struct {
	auth        x.Authenticator
	withdrawals orm.ModelBucket
	cashctrl    cash.Controller
	gate        ReleaseGate
	guard       *payoutGuard
}

func (h *executeWithdrawalHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *executeWithdrawalHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, withdrawal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := cash.MoveCoins(db, h.cashctrl, RevenueAccount(), withdrawal.Destination, []*coin.Coin{&withdrawal.Amount}); err != nil {
		return nil, errors.Wrap(err, "payout")
	}
	// Mark the withdrawal as executed to avoid a double payout.
	withdrawal.Executed = true
	if _, err := h.withdrawals.Put(db, msg.WithdrawalID, withdrawal); err != nil {
		return nil, errors.Wrap(err, "store withdrawal")
	}
	return &weave.DeliverResult{Data: msg.WithdrawalID}, nil
}

func (h *executeWithdrawalHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ExecuteWithdrawalMsg, *Withdrawal, error) {
	var msg ExecuteWithdrawalMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	// Approvers only vote. Moving the funds is exclusive to the owner.
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	var withdrawal Withdrawal
	if err := h.withdrawals.One(db, msg.WithdrawalID, &withdrawal); err != nil {
		return nil, nil, err
	}
	if withdrawal.Executed {
		return nil, nil, errors.Wrap(ErrAlreadyExecuted, "withdrawal is paid out")
	}
	if got := uint32(len(withdrawal.Confirmations)); got < conf.Quorum {
		return nil, nil, errors.Wrapf(ErrQuorumNotMet, "have %d of %d confirmations", got, conf.Quorum)
	}
	if err := h.gate.CanWithdraw(ctx, db); err != nil {
		return nil, nil, err
	}
	if err := hasFunds(db, h.cashctrl, RevenueAccount(), withdrawal.Amount); err != nil {
		return nil, nil, err
	}
	return &msg, &withdrawal, nil
}

// signingApprover returns the first approver from the configuration that
// signed the transaction.
func signingApprover(ctx weave.Context, auth x.Authenticator, conf *Configuration) (weave.Address, error) {
	for _, a := range conf.Approvers {
		if auth.HasAddress(ctx, a) {
			return a, nil
		}
	}
	return nil, errors.Wrap(errors.ErrUnauthorized, "approver signature missing")
}

// hasFunds returns no error if given wallet contains at least given amount of
// funds.
func hasFunds(db weave.KVStore, ctrl cash.Controller, wallet weave.Address, funds coin.Coin) error {
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		return errors.Wrap(err, "wallet balance")
	}
	for _, c := range coins {
		if c.Ticker != funds.Ticker {
			continue
		}
		if c.Compare(funds) >= 0 {
			return nil
		}
	}
	return errors.Wrap(errors.ErrAmount, "not enough funds in the revenue account")
}
