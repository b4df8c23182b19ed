package mintdrop

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/iov-one/mintdrop/x/sale"
	"github.com/iov-one/mintdrop/x/treasury"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// we fix the private keys here for deterministic output with the same encoding
// these are not secure at all, but the only point is to check the format,
// which is easier when everything is reproduceable.
var (
	source = makePrivKey("1234567890")
	dst    = makePrivKey("F00BA411").PublicKey().Address()
)

// makePrivKey repeats the string as long as needed to get 64 digits, then
// parses it as hex. It uses this repeated string as a "random" seed
// for the private key.
//
// nothing random about it, but at least it gives us variety
func makePrivKey(seed string) *crypto.PrivateKey {
	rep := 64/len(seed) + 1
	in := strings.Repeat(seed, rep)[:64]
	bin, err := hex.DecodeString(in)
	if err != nil {
		panic(err)
	}
	return crypto.PrivKeyEd25519FromSeed(bin)
}

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 150, Fractional: 567000, Ticker: "IOV"},
		},
	}

	eth := &coin.Coin{Whole: 50000, Fractional: 12345, Ticker: "ETH"}

	pub := source.PublicKey()
	addr := pub.Address()
	user := &sigs.UserData{
		Metadata: &weave.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	mintMsg := &sale.PublicMintMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Minter:   addr,
		Amount:   2,
		Payment:  coin.NewCoin(2, 0, "IOV"),
	}

	unsigned := Tx{
		Sum: &Tx_SalePublicMintMsg{mintMsg},
	}
	tx := unsigned
	sig, err := sigs.SignTx(source, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	submitMsg := &treasury.SubmitWithdrawalMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Destination: dst,
		Amount:      coin.NewCoin(250, 0, "IOV"),
		Memo:        "artist payout",
	}
	submitTx := &Tx{
		Sum: &Tx_TreasurySubmitWithdrawalMsg{submitMsg},
	}

	participant := &sale.Participant{
		Metadata:     &weave.Metadata{Schema: 1},
		Address:      addr,
		PublicMinted: 2,
	}

	fmt.Printf("Address: %s\n", addr)
	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "coin", Obj: eth},
		{Filename: "priv_key", Obj: source},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "public_mint_msg", Obj: mintMsg},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
		{Filename: "submit_withdrawal_msg", Obj: submitMsg},
		{Filename: "submit_withdrawal_tx", Obj: submitTx},
		{Filename: "participant", Obj: participant},
	}
}
