package collection

import (
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func newTestStore(t testing.TB, maxSupply uint64) weave.CacheableKVStore {
	t.Helper()
	db := store.MemStore()
	migration.MustInitPkg(db, "collection")
	err := gconf.Save(db, "collection", &Configuration{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     weavetest.NewCondition().Address(),
		MaxSupply: maxSupply,
	})
	if err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db
}

func TestMintAssignsDenseIDs(t *testing.T) {
	db := newTestStore(t, 10)
	c := NewController()
	alice := weavetest.NewCondition().Address()
	now := weave.AsUnixTime(time.Now())

	keys, err := c.Mint(db, alice, 3, now)
	assert.Nil(t, err)
	assert.Equal(t, 3, len(keys))
	assert.Equal(t, weavetest.SequenceID(1), keys[0])
	assert.Equal(t, weavetest.SequenceID(2), keys[1])
	assert.Equal(t, weavetest.SequenceID(3), keys[2])

	total, err := c.TotalMinted(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), total)

	owner, err := c.OwnerOf(db, 2)
	assert.Nil(t, err)
	assert.Equal(t, alice, owner)

	// IDs continue where the previous mint stopped.
	keys, err = c.Mint(db, alice, 1, now)
	assert.Nil(t, err)
	assert.Equal(t, weavetest.SequenceID(4), keys[0])
}

func TestMintRespectsSupplyCap(t *testing.T) {
	db := newTestStore(t, 5)
	c := NewController()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	now := weave.AsUnixTime(time.Now())

	if _, err := c.Mint(db, alice, 3, now); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if _, err := c.Mint(db, bob, 3, now); !ErrSupplyExhausted.Is(err) {
		t.Fatalf("want supply exhausted, got %+v", err)
	}
	// A failed mint must not create any token.
	total, err := c.TotalMinted(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), total)
	if _, err := c.OwnerOf(db, 4); !ErrNoSuchToken.Is(err) {
		t.Fatalf("want no such token, got %+v", err)
	}

	// The last two tokens can still be minted.
	if _, err := c.Mint(db, bob, 2, now); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if _, err := c.Mint(db, bob, 1, now); !ErrSupplyExhausted.Is(err) {
		t.Fatalf("want supply exhausted, got %+v", err)
	}

	balance, err := c.BalanceOf(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), balance)
}

func TestMintZeroAmount(t *testing.T) {
	db := newTestStore(t, 5)
	c := NewController()
	now := weave.AsUnixTime(time.Now())

	_, err := c.Mint(db, weavetest.NewCondition().Address(), 0, now)
	if !errors.ErrAmount.Is(err) {
		t.Fatalf("want amount error, got %+v", err)
	}
}

func TestAvailable(t *testing.T) {
	db := newTestStore(t, 5)
	c := NewController()
	now := weave.AsUnixTime(time.Now())

	assert.Nil(t, c.Available(db, 5))
	if err := c.Available(db, 6); !ErrSupplyExhausted.Is(err) {
		t.Fatalf("want supply exhausted, got %+v", err)
	}

	if _, err := c.Mint(db, weavetest.NewCondition().Address(), 5, now); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if err := c.Available(db, 1); !ErrSupplyExhausted.Is(err) {
		t.Fatalf("want supply exhausted, got %+v", err)
	}
}

func TestBalanceOfIsPerOwner(t *testing.T) {
	db := newTestStore(t, 10)
	c := NewController()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()
	now := weave.AsUnixTime(time.Now())

	if _, err := c.Mint(db, alice, 4, now); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}
	if _, err := c.Mint(db, bob, 1, now); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	balance, err := c.BalanceOf(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(4), balance)

	balance, err = c.BalanceOf(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), balance)

	balance, err = c.BalanceOf(db, weavetest.NewCondition().Address())
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), balance)
}
