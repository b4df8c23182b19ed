package collection

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/orm"
)

// Controller provides the token registry functionality that other extensions
// build on. This package registers no message handlers. Minting is available
// only through this interface so that the extension that embeds it stays in
// control of who can create tokens and when.
type Controller interface {
	// Mint creates count new tokens owned by owner. Token IDs are
	// assigned from a dense sequence, the first token minted on a chain
	// having the ID 1. The keys of the created tokens are returned in
	// mint order. Mint fails with ErrSupplyExhausted when the supply cap
	// does not allow count more tokens and in that case no token is
	// created.
	Mint(db weave.KVStore, owner weave.Address, count uint32, now weave.UnixTime) ([][]byte, error)

	// TotalMinted returns the number of tokens minted so far.
	TotalMinted(db weave.KVStore) (uint64, error)

	// Available returns ErrSupplyExhausted if minting count more tokens
	// would exceed the supply cap.
	Available(db weave.KVStore, count uint32) error

	// OwnerOf returns the owner of the token with the given ID.
	OwnerOf(db weave.KVStore, id uint64) (weave.Address, error)

	// BalanceOf returns the number of tokens held by the given address.
	BalanceOf(db weave.KVStore, addr weave.Address) (uint64, error)
}

// TokenController is the standard implementation of the Controller interface.
type TokenController struct {
	tokens  orm.ModelBucket
	counter orm.ModelBucket
}

var _ Controller = TokenController{}

// NewController returns a token controller using the default buckets of this
// package.
func NewController() TokenController {
	return TokenController{
		tokens:  NewTokenBucket(),
		counter: NewCounterBucket(),
	}
}

func (c TokenController) Mint(db weave.KVStore, owner weave.Address, count uint32, now weave.UnixTime) ([][]byte, error) {
	if count == 0 {
		return nil, errors.Wrap(errors.ErrAmount, "zero amount")
	}
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	cnt, err := c.loadCounter(db)
	if err != nil {
		return nil, err
	}
	if err := availableSupply(conf.MaxSupply, cnt.Count, count); err != nil {
		return nil, err
	}

	keys := make([][]byte, 0, count)
	for i := uint32(0); i < count; i++ {
		cnt.Count++
		t := Token{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			MintedAt: now,
		}
		key := tokenKey(cnt.Count)
		if _, err := c.tokens.Put(db, key, &t); err != nil {
			return nil, errors.Wrap(err, "cannot store token")
		}
		keys = append(keys, key)
	}
	if _, err := c.counter.Put(db, counterKey, &cnt); err != nil {
		return nil, errors.Wrap(err, "cannot store counter")
	}
	return keys, nil
}

func (c TokenController) TotalMinted(db weave.KVStore) (uint64, error) {
	cnt, err := c.loadCounter(db)
	if err != nil {
		return 0, err
	}
	return cnt.Count, nil
}

func (c TokenController) Available(db weave.KVStore, count uint32) error {
	conf, err := loadConf(db)
	if err != nil {
		return err
	}
	cnt, err := c.loadCounter(db)
	if err != nil {
		return err
	}
	return availableSupply(conf.MaxSupply, cnt.Count, count)
}

func (c TokenController) OwnerOf(db weave.KVStore, id uint64) (weave.Address, error) {
	var t Token
	switch err := c.tokens.One(db, tokenKey(id), &t); {
	case err == nil:
		return t.Owner, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoSuchToken, "token %d", id)
	default:
		return nil, errors.Wrap(err, "cannot load token")
	}
}

func (c TokenController) BalanceOf(db weave.KVStore, addr weave.Address) (uint64, error) {
	var tokens []Token
	keys, err := c.tokens.ByIndex(db, "owner", addr, &tokens)
	if err != nil {
		return 0, errors.Wrap(err, "cannot query by owner")
	}
	return uint64(len(keys)), nil
}

// loadCounter returns the current mint counter. A counter that was not yet
// persisted counts as zero.
func (c TokenController) loadCounter(db weave.KVStore) (Counter, error) {
	var cnt Counter
	switch err := c.counter.One(db, counterKey, &cnt); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		cnt = Counter{Metadata: &weave.Metadata{Schema: 1}}
	default:
		return cnt, errors.Wrap(err, "cannot load counter")
	}
	return cnt, nil
}

func availableSupply(max, minted uint64, count uint32) error {
	if minted >= max {
		return errors.Wrapf(ErrSupplyExhausted, "all %d tokens minted", max)
	}
	if left := max - minted; left < uint64(count) {
		return errors.Wrapf(ErrSupplyExhausted, "only %d tokens left", left)
	}
	return nil
}

// RegisterQuery registers the token and supply buckets for queries.
func RegisterQuery(qr weave.QueryRouter) {
	NewTokenBucket().Register("tokens", qr)
	NewCounterBucket().Register("supply", qr)
}
