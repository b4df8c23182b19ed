package mintdrop

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/mintdrop/x/collection"
	"github.com/iov-one/mintdrop/x/sale"
	"github.com/iov-one/mintdrop/x/treasury"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/msgfee"
	"github.com/iov-one/weave/x/multisig"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich account and a
// single key collection operator, to use for dev mode
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "IOV"
	if len(args) > 0 {
		code = args[0]
		if !coin.IsCC(code) {
			return nil, fmt.Errorf("invalid ticker %s", code)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(phrase)
	}
	var owner weave.Address
	if err := owner.UnmarshalJSON([]byte(`"` + addr + `"`)); err != nil {
		return nil, fmt.Errorf("invalid address %q: %s", addr, err)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": code,
					},
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				// Transaction fees are part of the sale revenue and
				// follow the same withdrawal rules.
				CollectorAddress: treasury.RevenueAccount(),
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"migration": dict{
				"admin": addr,
			},
			"collection": collection.Configuration{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     owner,
				MaxSupply: 5000,
			},
			// The dev mode sale runs the public stage from the start.
			// Presale minting stays disabled until allowlist roots are
			// configured.
			"sale": sale.Configuration{
				Metadata:          &weave.Metadata{Schema: 1},
				Owner:             owner,
				Price:             coin.Coin{Whole: 1, Ticker: code},
				PresalePriceOg:    coin.Coin{Whole: 1, Ticker: code},
				PresalePriceWl:    coin.Coin{Whole: 1, Ticker: code},
				MaxTokenPerWallet: 10,
				MaxMintPerTx:      5,
				PresaleMaxPerOg:   2,
				PresaleMaxPerWl:   1,
				ClaimOnce:         true,
				PresaleStart:      1,
				PublicSaleStart:   1,
			},
			"treasury": treasury.Configuration{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     owner,
				Approvers: []weave.Address{owner},
				Quorum:    1,
			},
		},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "multisig", "ver": 1},
			{"pkg": "msgfee", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "collection", "ver": 1},
			{"pkg": "sale", "ver": 1},
			{"pkg": "treasury", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "mintdrop.db")
	}

	stack := Stack(options.MinFee)
	application, err := Application("mintdrop", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}

	return DecorateApp(application, options.Logger), nil
}

// DecorateApp adds initializers and Logger to app
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&multisig.Initializer{},
		&cash.Initializer{},
		&msgfee.Initializer{},
		&collection.Initializer{},
		&sale.Initializer{},
		&treasury.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

// InlineApp will take a previously prepared CommitStore and return a complete Application
func InlineApp(kv weave.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	minFee := coin.Coin{}
	stack := Stack(minFee)
	ctx := context.Background()
	store := app.NewStoreApp("mintdrop", kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, TxDecoder, stack, nil, debug)
	return DecorateApp(base, logger)
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key, along with a json
// representation of the keys. You can give coins to this address and import
// the keys in a client to use them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
