package mintdrop_test

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	mintdrop "github.com/iov-one/mintdrop/cmd/mintdropd/app"
	"github.com/iov-one/mintdrop/cmd/mintdropd/app/testdata/fixtures"
	"github.com/iov-one/mintdrop/x/collection"
	"github.com/iov-one/mintdrop/x/sale"
	"github.com/iov-one/mintdrop/x/treasury"
	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
)

func TestApp(t *testing.T) {
	appFixture := fixtures.NewApp()
	addr := appFixture.GenesisKeyAddress
	pk := appFixture.GenesisKey
	chainID := appFixture.ChainID
	myApp := appFixture.Build()
	revenue := treasury.RevenueAccount()

	// Query for my balance
	dbKey := cash.NewBucket().DBKey(addr)
	queryAndCheckAccount(t, myApp, "/", dbKey, cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{{Ticker: "IOV", Whole: 50000}},
	})

	// buy two tokens during the public sale
	dres := publicMint(t, myApp, chainID, 2, []Signer{{pk, 0}}, addr, 2, coin.NewCoin(2, 0, "IOV"))

	// the keys of both minted tokens come back in mint order
	assert.Equal(t, 16, len(dres.Data))

	// one tag for the action and one for every modified key
	assert.Equal(t, 9, len(dres.Tags))
	wantKeys := []string{
		"action",
		toHex("cash:") + addr.String(),           // payment left the minter wallet
		toHex("cash:") + revenue.String(),        // payment arrived on the revenue account
		toHex("sigs:") + addr.String(),           // minter sequence incremented
		toHex("minter:") + addr.String(),         // mint record updated
		toHex("token:") + "0000000000000001",     // first token
		toHex("token:") + "0000000000000002",     // second token
		toHex("_i.token_owner:") + addr.String(), // owner index
		toHex("supply:minted"),                   // supply counter
	}
	for _, want := range wantKeys {
		var found bool
		for i := 0; i < len(dres.Tags) && !found; i++ {
			found = string(dres.Tags[i].Key) == want
		}
		assert.Equal(t, true, found)
	}

	// first tag is the action tagger, following are key tagger
	assert.Equal(t, "sale/public_mint", string(dres.Tags[0].Value))
	for _, tag := range dres.Tags[1:] {
		assert.Equal(t, "s", string(tag.Value))
	}

	// the payment is on the revenue account now
	queryAndCheckAccount(t, myApp, "/wallets", revenue, cash.Set{
		Coins: coin.Coins{{Ticker: "IOV", Whole: 2}},
	})
	queryAndCheckAccount(t, myApp, "/", dbKey, cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{{Ticker: "IOV", Whole: 49998}},
	})

	// both tokens belong to the minter
	queryAndCheckToken(t, myApp, dres.Data[:8], addr)
	queryAndCheckToken(t, myApp, dres.Data[8:], addr)
	queryAndCheckSupply(t, myApp, 2)
	queryAndCheckMinter(t, myApp, addr, sale.Participant{
		Metadata:     &weave.Metadata{Schema: 1},
		Address:      addr,
		PublicMinted: 2,
	})

	// a plain cash transfer still works next to the sale
	friend := crypto.GenPrivKeyEd25519().PublicKey().Address()
	sendCash(t, myApp, chainID, 3, []Signer{{pk, 1}}, addr, friend, 100, "IOV", "Have a great trip!")
	queryAndCheckAccount(t, myApp, "/wallets", friend, cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{{Ticker: "IOV", Whole: 100}},
	})

	// the operator mints a promotional token for free
	promo := crypto.GenPrivKeyEd25519().PublicKey().Address()
	dres = operatorMint(t, myApp, chainID, 4, []Signer{{pk, 2}}, promo, 1)
	queryAndCheckToken(t, myApp, dres.Data, promo)
	queryAndCheckSupply(t, myApp, 3)

	// propose a payout from the revenue account
	artist := crypto.GenPrivKeyEd25519().PublicKey().Address()
	wID := submitWithdrawal(t, myApp, chainID, 5, []Signer{{pk, 3}}, addr,
		artist, coin.NewCoin(2, 0, "IOV"), "artist payout")
	queryAndCheckWithdrawal(t, myApp, wID, artist, false, 0)

	// an approver can confirm, change their mind and confirm again
	confirmWithdrawal(t, myApp, chainID, 6, []Signer{{pk, 4}}, wID)
	queryAndCheckWithdrawal(t, myApp, wID, artist, false, 1)
	revokeConfirmation(t, myApp, chainID, 7, []Signer{{pk, 5}}, wID)
	queryAndCheckWithdrawal(t, myApp, wID, artist, false, 0)
	confirmWithdrawal(t, myApp, chainID, 8, []Signer{{pk, 6}}, wID)

	// with the quorum reached the owner pays out
	executeWithdrawal(t, myApp, chainID, 9, []Signer{{pk, 7}}, wID)
	queryAndCheckWithdrawal(t, myApp, wID, artist, true, 1)
	queryAndCheckAccount(t, myApp, "/wallets", artist, cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{{Ticker: "IOV", Whole: 2}},
	})
	// mint payment plus submit fee minus payout stays on the revenue account
	queryAndCheckAccount(t, myApp, "/wallets", revenue, cash.Set{
		Coins: coin.Coins{{Ticker: "IOV", Whole: 1}},
	})
	queryAndCheckAccount(t, myApp, "/", dbKey, cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins:    coin.Coins{{Ticker: "IOV", Whole: 49897}},
	})
}

func toHex(s string) string {
	h := hex.EncodeToString([]byte(s))
	return strings.ToUpper(h)
}

type Signer struct {
	pk    *crypto.PrivateKey
	nonce int64
}

// publicMint creates a public sale mint transaction, signs it and sends it
func publicMint(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	minter weave.Address, amount uint32, payment coin.Coin) abci.ResponseDeliverTx {
	msg := &sale.PublicMintMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Minter:   minter,
		Amount:   amount,
		Payment:  payment,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_SalePublicMintMsg{SalePublicMintMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

// operatorMint mints outside of the sale, signed by the collection owner
func operatorMint(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	recipient weave.Address, amount uint32) abci.ResponseDeliverTx {
	msg := &sale.OperatorMintMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Recipient: recipient,
		Amount:    amount,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_SaleOperatorMintMsg{SaleOperatorMintMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

// sendCash creates a transfer transaction, signs it and sends it
func sendCash(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	from, to weave.Address, amount int64, ticker, memo string) abci.ResponseDeliverTx {
	msg := &cash.SendMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      from,
		Destination: to,
		Amount:      &coin.Coin{Whole: amount, Ticker: ticker},
		Memo:        memo,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_CashSendMsg{CashSendMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

// submitWithdrawal proposes a payout from the revenue account and returns the
// ID of the created withdrawal
func submitWithdrawal(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	payer, destination weave.Address, amount coin.Coin, memo string) []byte {
	msg := &treasury.SubmitWithdrawalMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Destination: destination,
		Amount:      amount,
		Memo:        memo,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_TreasurySubmitWithdrawalMsg{TreasurySubmitWithdrawalMsg: msg},
	}
	tx.Fee(payer, coin.NewCoin(1, 0, "IOV"))
	dres := signAndCommit(t, baseApp, tx, signers, chainID, height)
	return dres.Data
}

func confirmWithdrawal(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	withdrawalID []byte) abci.ResponseDeliverTx {
	msg := &treasury.ConfirmWithdrawalMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		WithdrawalID: withdrawalID,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_TreasuryConfirmWithdrawalMsg{TreasuryConfirmWithdrawalMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

func revokeConfirmation(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	withdrawalID []byte) abci.ResponseDeliverTx {
	msg := &treasury.RevokeConfirmationMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		WithdrawalID: withdrawalID,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_TreasuryRevokeConfirmationMsg{TreasuryRevokeConfirmationMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

func executeWithdrawal(t *testing.T, baseApp abci.Application, chainID string, height int64, signers []Signer,
	withdrawalID []byte) abci.ResponseDeliverTx {
	msg := &treasury.ExecuteWithdrawalMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		WithdrawalID: withdrawalID,
	}
	tx := &mintdrop.Tx{
		Sum: &mintdrop.Tx_TreasuryExecuteWithdrawalMsg{TreasuryExecuteWithdrawalMsg: msg},
	}
	return signAndCommit(t, baseApp, tx, signers, chainID, height)
}

// signAndCommit signs tx with signatures from signers and submits to the chain
// asserts and fails the test in case of errors during the process
func signAndCommit(
	t *testing.T,
	app abci.Application,
	tx *mintdrop.Tx,
	signers []Signer,
	chainID string,
	height int64,
) abci.ResponseDeliverTx {
	t.Helper()

	for _, signer := range signers {
		sig, err := sigs.SignTx(signer.pk, tx, chainID, signer.nonce)
		assert.Nil(t, err)
		tx.Signatures = append(tx.Signatures, sig)
	}

	txBytes, err := tx.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, true, len(txBytes) != 0)

	// Submit to the chain
	header := abci.Header{
		Height: height,
		Time:   time.Now(),
	}
	app.BeginBlock(abci.RequestBeginBlock{Header: header})
	// check and deliver must pass
	chres := app.CheckTx(txBytes)
	assert.Equal(t, uint32(0), chres.Code)

	dres := app.DeliverTx(txBytes)
	assert.Equal(t, uint32(0), dres.Code)

	app.EndBlock(abci.RequestEndBlock{})
	cres := app.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return dres
}

// queryAndCheckAccount queries the wallet from the chain and check it is the one expected
func queryAndCheckAccount(t *testing.T, baseApp abci.Application, path string, data []byte, expected cash.Set) {
	t.Helper()
	query := abci.RequestQuery{Path: path, Data: data}
	res := baseApp.Query(query)

	// check query was ok
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var actual cash.Set
	err := weaveApp.UnmarshalOneResult(res.Value, &actual)
	assert.Nil(t, err)
	assert.Equal(t, expected.Coins, actual.Coins)
}

// queryAndCheckToken queries a token from the chain and checks its owner
func queryAndCheckToken(t *testing.T, baseApp abci.Application, data []byte, owner weave.Address) {
	t.Helper()
	query := abci.RequestQuery{Path: "/tokens", Data: data}
	res := baseApp.Query(query)

	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var actual collection.Token
	err := weaveApp.UnmarshalOneResult(res.Value, &actual)
	assert.Nil(t, err)
	assert.Equal(t, owner, actual.Owner)
}

// queryAndCheckSupply queries the supply counter and checks the total
func queryAndCheckSupply(t *testing.T, baseApp abci.Application, minted uint64) {
	t.Helper()
	query := abci.RequestQuery{Path: "/supply", Data: []byte("minted")}
	res := baseApp.Query(query)

	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var actual collection.Counter
	err := weaveApp.UnmarshalOneResult(res.Value, &actual)
	assert.Nil(t, err)
	assert.Equal(t, minted, actual.Count)
}

// queryAndCheckMinter queries the mint record from the chain and check it is the one expected
func queryAndCheckMinter(t *testing.T, baseApp abci.Application, addr weave.Address, expected sale.Participant) {
	t.Helper()
	query := abci.RequestQuery{Path: "/minters", Data: addr}
	res := baseApp.Query(query)

	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var actual sale.Participant
	err := weaveApp.UnmarshalOneResult(res.Value, &actual)
	assert.Nil(t, err)
	assert.Equal(t, expected, actual)
}

// queryAndCheckWithdrawal queries the withdrawal from the chain and checks
// destination, payout state and the number of confirmations
func queryAndCheckWithdrawal(t *testing.T, baseApp abci.Application, data []byte,
	destination weave.Address, executed bool, confirmations int) {
	t.Helper()
	query := abci.RequestQuery{Path: "/withdrawals", Data: data}
	res := baseApp.Query(query)

	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, true, len(res.Value) != 0)

	var actual treasury.Withdrawal
	err := weaveApp.UnmarshalOneResult(res.Value, &actual)
	assert.Nil(t, err)
	assert.Equal(t, destination, actual.Destination)
	assert.Equal(t, executed, actual.Executed)
	assert.Equal(t, confirmations, len(actual.Confirmations))
}
