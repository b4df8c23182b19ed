package treasury

import (
	"context"
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	coin "github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

// openGate allows every payout.
type openGate struct{}

func (openGate) CanWithdraw(weave.Context, weave.KVStore) error {
	return nil
}

// closedGate denies every payout.
type closedGate struct{}

func (closedGate) CanWithdraw(weave.Context, weave.KVStore) error {
	return errors.Wrap(errors.ErrState, "funds are locked")
}

func TestWithdrawalUseCases(t *testing.T) {
	type Request struct {
		Conditions  []weave.Condition
		Tx          weave.Tx
		BlockHeight int64
		WantErr     *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		ownerCond     = weavetest.NewCondition()
		approverACond = weavetest.NewCondition()
		approverBCond = weavetest.NewCondition()
		approverCCond = weavetest.NewCondition()
		destCond      = weavetest.NewCondition()
		otherCond     = weavetest.NewCondition()

		blockNow = weave.UnixTime(1600000000)
	)

	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    ownerCond.Address(),
		Approvers: []weave.Address{
			approverACond.Address(),
			approverBCond.Address(),
			approverCCond.Address(),
		},
		Quorum: 2,
	}

	submitTx := &weavetest.Tx{
		Msg: &SubmitWithdrawalMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Destination: destCond.Address(),
			Amount:      coin.NewCoin(7, 0, "IOV"),
			Memo:        "artist payout",
		},
	}
	confirmTx := &weavetest.Tx{
		Msg: &ConfirmWithdrawalMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			WithdrawalID: weavetest.SequenceID(1),
		},
	}
	revokeTx := &weavetest.Tx{
		Msg: &RevokeConfirmationMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			WithdrawalID: weavetest.SequenceID(1),
		},
	}
	executeTx := &weavetest.Tx{
		Msg: &ExecuteWithdrawalMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			WithdrawalID: weavetest.SequenceID(1),
		},
	}

	cases := map[string]struct {
		Gate      ReleaseGate
		Funds     []AccountBalance
		Requests  []Request
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"an approved withdrawal is paid out": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 103,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, destCond.Address(), coin.NewCoin(7, 0, "IOV"))
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(3, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), true, 2)
			},
		},
		"the owner can submit as well": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				var w Withdrawal
				if err := NewWithdrawalBucket().One(db, weavetest.SequenceID(1), &w); err != nil {
					t.Fatalf("cannot get withdrawal: %s", err)
				}
				if len(w.Confirmations) != 0 {
					t.Fatalf("a new withdrawal must have no confirmations, got %d", len(w.Confirmations))
				}
				if w.CreatedAt != blockNow {
					t.Fatalf("want creation time %s, got %s", blockNow, w.CreatedAt)
				}
			},
		},
		"submitting requires a treasury member": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{otherCond},
					Tx:          submitTx,
					BlockHeight: 100,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"a non approver cannot confirm": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{otherCond},
					Tx:          confirmTx,
					BlockHeight: 101,
					WantErr:     errors.ErrUnauthorized,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          confirmTx,
					BlockHeight: 102,
					WantErr:     errors.ErrUnauthorized,
				},
			},
		},
		"an approver can confirm only once": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 102,
					WantErr:     ErrAlreadyConfirmed,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 1)
			},
		},
		"an unknown withdrawal cannot be confirmed": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 100,
					WantErr:     errors.ErrNotFound,
				},
			},
		},
		"quorum must be met before the payout": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 102,
					WantErr:     ErrQuorumNotMet,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(10, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 1)
			},
		},
		"a revoked confirmation does not count towards the quorum": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				// Taking back a confirmation is allowed also after the
				// quorum was reached, as long as nothing was paid out.
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          revokeTx,
					BlockHeight: 103,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 104,
					WantErr:     ErrQuorumNotMet,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(10, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 1)
			},
		},
		"revoking without a confirmation fails": {
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          revokeTx,
					BlockHeight: 101,
					WantErr:     ErrNotConfirmed,
				},
			},
		},
		"only the owner can execute": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          executeTx,
					BlockHeight: 103,
					WantErr:     errors.ErrUnauthorized,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(10, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 2)
			},
		},
		"a withdrawal cannot be paid out twice": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(20, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 103,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 104,
					WantErr:     ErrAlreadyExecuted,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, destCond.Address(), coin.NewCoin(7, 0, "IOV"))
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(13, 0, "IOV"))
			},
		},
		"an executed withdrawal is sealed": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 103,
				},
				{
					Conditions:  []weave.Condition{approverCCond},
					Tx:          confirmTx,
					BlockHeight: 104,
					WantErr:     ErrAlreadyExecuted,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          revokeTx,
					BlockHeight: 105,
					WantErr:     ErrAlreadyExecuted,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertWithdrawal(t, db, weavetest.SequenceID(1), true, 2)
			},
		},
		"the release gate can block the payout": {
			Gate: closedGate{},
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 103,
					WantErr:     errors.ErrState,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(10, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 2)
			},
		},
		"the payout fails when the revenue account is short": {
			Funds: []AccountBalance{
				{Wallet: RevenueAccount(), Amount: coin.NewCoin(5, 0, "IOV")},
			},
			Requests: []Request{
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          submitTx,
					BlockHeight: 100,
				},
				{
					Conditions:  []weave.Condition{approverACond},
					Tx:          confirmTx,
					BlockHeight: 101,
				},
				{
					Conditions:  []weave.Condition{approverBCond},
					Tx:          confirmTx,
					BlockHeight: 102,
				},
				{
					Conditions:  []weave.Condition{ownerCond},
					Tx:          executeTx,
					BlockHeight: 103,
					WantErr:     errors.ErrAmount,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, RevenueAccount(), coin.NewCoin(5, 0, "IOV"))
				assertWithdrawal(t, db, weavetest.SequenceID(1), false, 2)
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "treasury", "cash")

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			gate := tc.Gate
			if gate == nil {
				gate = openGate{}
			}
			RegisterRoutes(rt, auth, ctrl, gate)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			treasuryConf := conf
			if err := gconf.Save(db, "treasury", &treasuryConf); err != nil {
				t.Fatalf("cannot save treasury configuration: %s", err)
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), req.BlockHeight)
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)
				ctx = weave.WithBlockTime(ctx, blockNow.Time())

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantErr, err)
				}
				cache.Discard()
				if _, err := rt.Deliver(ctx, db, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestPayoutGuard(t *testing.T) {
	g := &payoutGuard{}
	if err := g.enter(); err != nil {
		t.Fatalf("first enter: %+v", err)
	}
	if err := g.enter(); !ErrReentrancy.Is(err) {
		t.Fatalf("want a reentrancy error, got %+v", err)
	}
	g.exit()
	if err := g.enter(); err != nil {
		t.Fatalf("enter after exit: %+v", err)
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}

func assertWithdrawal(t testing.TB, db weave.KVStore, id []byte, executed bool, confirmations int) {
	t.Helper()

	var w Withdrawal
	if err := NewWithdrawalBucket().One(db, id, &w); err != nil {
		t.Fatalf("cannot get withdrawal %x: %s", id, err)
	}
	if w.Executed != executed {
		t.Fatalf("want executed %v, got %v", executed, w.Executed)
	}
	if len(w.Confirmations) != confirmations {
		t.Fatalf("want %d confirmations, got %d", confirmations, len(w.Confirmations))
	}
}
