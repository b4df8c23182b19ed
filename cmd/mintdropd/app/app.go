/*
Package mintdrop links together all the extensions that make up the mint
drop application.
*/
package mintdrop

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/mintdrop/x/collection"
	"github.com/iov-one/mintdrop/x/sale"
	"github.com/iov-one/mintdrop/x/treasury"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/msgfee"
	"github.com/iov-one/weave/x/multisig"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{}, multisig.Authenticate{})
}

// CashControl returns a controller for cash functions
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, and recovery
func Chain(authFn x.Authenticator, minFee coin.Coin) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		multisig.NewDecorator(authFn),
		msgfee.NewAntispamFeeDecorator(minFee),
		// cash.NewDynamicFeeDecorator embeds a savepoint, so that
		// any tx that gets this far will pay a fee even when the
		// message processing fails.
		cash.NewDynamicFeeDecorator(authFn, CashControl()),
		msgfee.NewFeeDecorator(),
		utils.NewSavepoint().OnDeliver(),
		utils.NewActionTagger(),
	)
}

// Router returns a default router, dispatching to all message handlers of
// this application.
func Router(authFn x.Authenticator, cashctrl cash.Controller) app.Router {
	r := app.NewRouter()

	cash.RegisterRoutes(r, authFn, cashctrl)
	migration.RegisterRoutes(r, authFn)
	multisig.RegisterRoutes(r, authFn)
	// Sale proceeds are collected on the treasury revenue account and can
	// leave it only through an approved withdrawal, once the sale gate
	// opens.
	sale.RegisterRoutes(r, authFn, cashctrl, collection.NewController(), treasury.RevenueAccount())
	treasury.RegisterRoutes(r, authFn, cashctrl, sale.NewGate())
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/tokens", "/supply", "/minters", "/withdrawals",
// "/wallets", "/auth", "/contracts" and "/"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		migration.RegisterQuery,
		collection.RegisterQuery,
		sale.RegisterQuery,
		treasury.RegisterQuery,
		cash.RegisterQuery,
		sigs.RegisterQuery,
		multisig.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(minFee coin.Coin) weave.Handler {
	authFn := Authenticator()
	return Chain(authFn, minFee).
		WithHandler(Router(authFn, CashControl()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
