package fixtures

import (
	"fmt"
	"math/rand"

	mintdrop "github.com/iov-one/mintdrop/cmd/mintdropd/app"
	"github.com/iov-one/mintdrop/x/treasury"
	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// appState sets up a chain with an open public sale and a single key
// treasury. The genesis account is the collection operator, the sole
// treasury approver and a rich wallet at once.
const appState = `
  {
    "cash": [
      {
        "address": "%[1]s",
        "coins": [
          {"whole": 50000, "ticker": "IOV"}
        ]
      }
    ],
    "conf": {
      "cash": {
        "collector_address": "%[2]s",
        "minimal_fee": {}
      },
      "migration": {
        "admin": "%[1]s"
      },
      "collection": {
        "metadata": {"schema": 1},
        "owner": "%[1]s",
        "max_supply": 5000
      },
      "sale": {
        "metadata": {"schema": 1},
        "owner": "%[1]s",
        "price": {"whole": 1, "ticker": "IOV"},
        "presale_price_og": {"whole": 1, "ticker": "IOV"},
        "presale_price_wl": {"whole": 1, "ticker": "IOV"},
        "max_token_per_wallet": 10,
        "max_mint_per_tx": 5,
        "presale_max_per_og": 2,
        "presale_max_per_wl": 1,
        "claim_once": true,
        "presale_start": 1,
        "public_sale_start": 1,
        "base_uri": "ipfs://mintdrop/"
      },
      "treasury": {
        "metadata": {"schema": 1},
        "owner": "%[1]s",
        "approvers": ["%[1]s"],
        "quorum": 1
      }
    },
    "initialize_schema": [
      {"pkg": "cash", "ver": 1},
      {"pkg": "sigs", "ver": 1},
      {"pkg": "multisig", "ver": 1},
      {"pkg": "msgfee", "ver": 1},
      {"pkg": "utils", "ver": 1},
      {"pkg": "collection", "ver": 1},
      {"pkg": "sale", "ver": 1},
      {"pkg": "treasury", "ver": 1}
    ]
  }
`

type AppFixture struct {
	Name              string
	ChainID           string
	GenesisKey        *crypto.PrivateKey
	GenesisKeyAddress weave.Address
}

func NewApp() *AppFixture {
	pk := crypto.GenPrivKeyEd25519()
	addr := pk.PublicKey().Address()
	name := fmt.Sprintf("test-%d", rand.Intn(99999999)) //chain id max 20 chars
	return &AppFixture{
		Name:              name,
		ChainID:           fmt.Sprintf("chain-%s", name),
		GenesisKey:        pk,
		GenesisKeyAddress: addr,
	}
}

func (f AppFixture) Build() weaveApp.BaseApp {
	// setup app
	stack := mintdrop.Stack(coin.Coin{})
	myApp, err := mintdrop.Application(f.Name, stack, mintdrop.TxDecoder, "", true)
	if err != nil {
		panic(err)
	}
	myApp = mintdrop.DecorateApp(myApp, log.NewNopLogger())

	// load state
	genesis := fmt.Sprintf(appState, f.GenesisKeyAddress, treasury.RevenueAccount())
	myApp.InitChain(abci.RequestInitChain{AppStateBytes: []byte(genesis), ChainId: f.ChainID})
	header := abci.Header{Height: 1}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	block1 := cres.Data
	// sanity check
	if len(block1) == 0 {
		panic("first block must not be empty")
	}
	return myApp
}
