package sale

import (
	"bytes"

	"github.com/iov-one/mintdrop/x/collection"
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
	NewParticipantBucket().Register("minters", qr)
}

// RegisterRoutes will instantiate and register all handlers in this package.
// Payments collected by the mint handlers are moved to the revenue account.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, cashctrl cash.Controller, registry collection.Controller, revenue weave.Address) {
	r = migration.SchemaMigratingRegistry("sale", r)

	participants := NewParticipantBucket()
	guard := &mintGuard{}

	r.Handle(&OgMintMsg{}, &ogMintHandler{
		auth:         auth,
		participants: participants,
		registry:     registry,
		cashctrl:     cashctrl,
		revenue:      revenue,
		guard:        guard,
	})
	r.Handle(&WlMintMsg{}, &wlMintHandler{
		auth:         auth,
		participants: participants,
		registry:     registry,
		cashctrl:     cashctrl,
		revenue:      revenue,
		guard:        guard,
	})
	r.Handle(&PublicMintMsg{}, &publicMintHandler{
		auth:         auth,
		participants: participants,
		registry:     registry,
		cashctrl:     cashctrl,
		revenue:      revenue,
		guard:        guard,
	})
	r.Handle(&OperatorMintMsg{}, &operatorMintHandler{
		auth:     auth,
		registry: registry,
		guard:    guard,
	})
	r.Handle(&UpdateConfigurationMsg{}, &updateConfigurationHandler{
		auth: auth,
	})
}

// mintGuard serializes the mint operations of a single application
// instance. A mint modifies the supply counter, the token bucket and a
// participant record and no second mint may start until all writes of the
// first one are done. The flag is released when the handler returns, also
// on failure.
type mintGuard struct {
	busy bool
}

func (g *mintGuard) enter() error {
	if g.busy {
		return errors.Wrap(ErrReentrancy, "mint in progress")
	}
	g.busy = true
	return nil
}

func (g *mintGuard) exit() {
	g.busy = false
}

type ogMintHandler struct {
	auth         x.Authenticator
	participants orm.ModelBucket
	registry     collection.Controller
	cashctrl     cash.Controller
	revenue      weave.Address
	guard        *mintGuard
}

func (h *ogMintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *ogMintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if !msg.Payment.IsZero() {
		if err := cash.MoveCoins(db, h.cashctrl, msg.Minter, h.revenue, []*coin.Coin{&msg.Payment}); err != nil {
			return nil, errors.Wrap(err, "payment")
		}
	}
	keys, err := h.registry.Mint(db, msg.Minter, msg.Amount, weave.AsUnixTime(now))
	if err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	p.OgMinted += msg.Amount
	p.OgClaimed = true
	if _, err := h.participants.Put(db, msg.Minter, p); err != nil {
		return nil, errors.Wrap(err, "store participant")
	}
	return &weave.DeliverResult{Data: bytes.Join(keys, nil)}, nil
}

func (h *ogMintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OgMintMsg, error) {
	var msg OgMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature missing")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	switch stage := CurrentStage(&conf, weave.AsUnixTime(now)); stage {
	case StagePresaleOg, StagePresaleWl:
		// OG members can mint during the whole presale.
	default:
		return nil, errors.Wrapf(ErrWrongStage, "sale is %s", stage)
	}
	// The raw amount must be compared to the limit before it is summed
	// with any counter. The comparison must never be done on a sum that
	// could have wrapped around.
	if msg.Amount > conf.PresaleMaxPerOg {
		return nil, errors.Wrapf(ErrAmountCap, "OG presale allows %d tokens per mint", conf.PresaleMaxPerOg)
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	if conf.ClaimOnce {
		if p.OgClaimed {
			return nil, errors.Wrap(ErrAlreadyClaimed, "OG mint already claimed")
		}
	} else if uint64(p.OgMinted)+uint64(msg.Amount) > uint64(conf.PresaleMaxPerOg) {
		return nil, errors.Wrapf(ErrAmountCap, "OG presale allows %d tokens in total", conf.PresaleMaxPerOg)
	}
	if err := h.registry.Available(db, msg.Amount); err != nil {
		return nil, err
	}
	total, err := conf.PresalePriceOg.Multiply(int64(msg.Amount))
	if err != nil {
		return nil, errors.Wrap(err, "total price")
	}
	if !total.IsZero() && !msg.Payment.IsGTE(total) {
		return nil, errors.Wrapf(ErrInsufficientPayment, "%d tokens cost %s", msg.Amount, total)
	}
	if !verifyProof(conf.OgRoot, msg.Minter, msg.Proof) {
		return nil, errors.Wrap(ErrInvalidProof, "not an OG allowlist member")
	}
	return &msg, nil
}

type wlMintHandler struct {
	auth         x.Authenticator
	participants orm.ModelBucket
	registry     collection.Controller
	cashctrl     cash.Controller
	revenue      weave.Address
	guard        *mintGuard
}

func (h *wlMintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *wlMintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if !msg.Payment.IsZero() {
		if err := cash.MoveCoins(db, h.cashctrl, msg.Minter, h.revenue, []*coin.Coin{&msg.Payment}); err != nil {
			return nil, errors.Wrap(err, "payment")
		}
	}
	keys, err := h.registry.Mint(db, msg.Minter, msg.Amount, weave.AsUnixTime(now))
	if err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	p.WlMinted += msg.Amount
	p.WlClaimed = true
	if _, err := h.participants.Put(db, msg.Minter, p); err != nil {
		return nil, errors.Wrap(err, "store participant")
	}
	return &weave.DeliverResult{Data: bytes.Join(keys, nil)}, nil
}

func (h *wlMintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*WlMintMsg, error) {
	var msg WlMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature missing")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if stage := CurrentStage(&conf, weave.AsUnixTime(now)); stage != StagePresaleWl {
		return nil, errors.Wrapf(ErrWrongStage, "sale is %s", stage)
	}
	if msg.Amount > conf.PresaleMaxPerWl {
		return nil, errors.Wrapf(ErrAmountCap, "WL presale allows %d tokens per mint", conf.PresaleMaxPerWl)
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	if conf.ClaimOnce {
		if p.WlClaimed {
			return nil, errors.Wrap(ErrAlreadyClaimed, "WL mint already claimed")
		}
	} else if uint64(p.WlMinted)+uint64(msg.Amount) > uint64(conf.PresaleMaxPerWl) {
		return nil, errors.Wrapf(ErrAmountCap, "WL presale allows %d tokens in total", conf.PresaleMaxPerWl)
	}
	if err := h.registry.Available(db, msg.Amount); err != nil {
		return nil, err
	}
	total, err := conf.PresalePriceWl.Multiply(int64(msg.Amount))
	if err != nil {
		return nil, errors.Wrap(err, "total price")
	}
	if !total.IsZero() && !msg.Payment.IsGTE(total) {
		return nil, errors.Wrapf(ErrInsufficientPayment, "%d tokens cost %s", msg.Amount, total)
	}
	if !verifyProof(conf.WlRoot, msg.Minter, msg.Proof) {
		return nil, errors.Wrap(ErrInvalidProof, "not a WL allowlist member")
	}
	return &msg, nil
}

type publicMintHandler struct {
	auth         x.Authenticator
	participants orm.ModelBucket
	registry     collection.Controller
	cashctrl     cash.Controller
	revenue      weave.Address
	guard        *mintGuard
}

func (h *publicMintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *publicMintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if !msg.Payment.IsZero() {
		if err := cash.MoveCoins(db, h.cashctrl, msg.Minter, h.revenue, []*coin.Coin{&msg.Payment}); err != nil {
			return nil, errors.Wrap(err, "payment")
		}
	}
	keys, err := h.registry.Mint(db, msg.Minter, msg.Amount, weave.AsUnixTime(now))
	if err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	p.PublicMinted += msg.Amount
	if _, err := h.participants.Put(db, msg.Minter, p); err != nil {
		return nil, errors.Wrap(err, "store participant")
	}
	return &weave.DeliverResult{Data: bytes.Join(keys, nil)}, nil
}

func (h *publicMintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*PublicMintMsg, error) {
	var msg PublicMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature missing")
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	if stage := CurrentStage(&conf, weave.AsUnixTime(now)); stage != StagePublicSale {
		return nil, errors.Wrapf(ErrWrongStage, "sale is %s", stage)
	}
	if conf.MaxMintPerTx != 0 && msg.Amount > conf.MaxMintPerTx {
		return nil, errors.Wrapf(ErrAmountCap, "at most %d tokens per mint", conf.MaxMintPerTx)
	}
	if msg.Amount > conf.MaxTokenPerWallet {
		return nil, errors.Wrapf(ErrAmountCap, "at most %d tokens per wallet", conf.MaxTokenPerWallet)
	}
	p, err := getParticipant(h.participants, db, msg.Minter)
	if err != nil {
		return nil, err
	}
	if uint64(p.PublicMinted)+uint64(msg.Amount) > uint64(conf.MaxTokenPerWallet) {
		return nil, errors.Wrapf(ErrAmountCap, "at most %d tokens per wallet", conf.MaxTokenPerWallet)
	}
	if err := h.registry.Available(db, msg.Amount); err != nil {
		return nil, err
	}
	total, err := conf.Price.Multiply(int64(msg.Amount))
	if err != nil {
		return nil, errors.Wrap(err, "total price")
	}
	if !total.IsZero() && !msg.Payment.IsGTE(total) {
		return nil, errors.Wrapf(ErrInsufficientPayment, "%d tokens cost %s", msg.Amount, total)
	}
	return &msg, nil
}

type operatorMintHandler struct {
	auth     x.Authenticator
	registry collection.Controller
	guard    *mintGuard
}

func (h *operatorMintHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *operatorMintHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.guard.enter(); err != nil {
		return nil, err
	}
	defer h.guard.exit()

	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	// Operator mints are outside of the sale accounting. They do not count
	// against any wallet limit, only against the supply cap.
	keys, err := h.registry.Mint(db, msg.Recipient, msg.Amount, weave.AsUnixTime(now))
	if err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	return &weave.DeliverResult{Data: bytes.Join(keys, nil)}, nil
}

func (h *operatorMintHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*OperatorMintMsg, error) {
	var msg OperatorMintMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature missing")
	}
	if err := h.registry.Available(db, msg.Amount); err != nil {
		return nil, err
	}
	return &msg, nil
}

type updateConfigurationHandler struct {
	auth x.Authenticator
}

func (h *updateConfigurationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if err := h.applyTx(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{}, nil
}

func (h *updateConfigurationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	if err := h.applyTx(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{}, nil
}

// applyTx patches the sale configuration. It differs from the generic gconf
// update handler in one point. Once the sale has left the idle stage, the
// parameters that decide the outcome of a mint are frozen and only the
// owner, the reveal time and the metadata base URI can still be changed.
func (h *updateConfigurationHandler) applyTx(ctx weave.Context, db weave.KVStore, tx weave.Tx) error {
	var msg UpdateConfigurationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return errors.Wrap(err, "load msg")
	}

	var conf Configuration
	switch err := gconf.Load(db, "sale", &conf); {
	case err == nil:
		if conf.Owner == nil {
			return errors.Wrap(errors.ErrUnauthorized, "owner signature required")
		}
		if !h.auth.HasAddress(ctx, conf.Owner) {
			return errors.Wrap(errors.ErrUnauthorized, "owner did not sign transaction")
		}
		now, err := weave.BlockTime(ctx)
		if err != nil {
			return errors.Wrap(err, "block time")
		}
		if stage := CurrentStage(&conf, weave.AsUnixTime(now)); stage != StageIdle && patchTouchesFrozen(msg.Patch) {
			return errors.Wrapf(ErrWrongStage, "sale parameters are frozen, sale is %s", stage)
		}
	case errors.ErrNotFound.Is(err):
		// Configuration was not created during the genesis. Allow the
		// schema migration admin to bootstrap it.
		admin, err := migration.CurrentAdmin(db)
		if err != nil {
			return errors.Wrap(err, "get init admin")
		}
		if !h.auth.HasAddress(ctx, admin) {
			return errors.Wrap(errors.ErrUnauthorized, "initialization admin signature required")
		}
	default:
		return errors.Wrap(err, "load current configuration")
	}

	applyPatch(&conf, msg.Patch)

	if err := gconf.Save(db, "sale", &conf); err != nil {
		return errors.Wrap(err, "cannot save updated config")
	}
	return nil
}

// patchTouchesFrozen returns true if the patch modifies any field that
// cannot be changed once the sale has started. The owner, the reveal time
// and the metadata base URI are always changeable. The base URI must stay
// changeable because the artwork is usually revealed only after the mint
// is over.
func patchTouchesFrozen(p *Configuration) bool {
	switch {
	case p.Price != (coin.Coin{}),
		p.PresalePriceOg != (coin.Coin{}),
		p.PresalePriceWl != (coin.Coin{}),
		p.MaxTokenPerWallet != 0,
		p.MaxMintPerTx != 0,
		p.PresaleMaxPerOg != 0,
		p.PresaleMaxPerWl != 0,
		p.ClaimOnce,
		p.PresaleStart != 0,
		p.PublicSaleStart != 0,
		len(p.OgRoot) != 0,
		len(p.WlRoot) != 0:
		return true
	}
	return false
}

// applyPatch copies all non zero fields of the patch onto the
// configuration. A bool field set to false does not overwrite, which is the
// same limitation that the generic gconf patching has.
func applyPatch(conf *Configuration, patch *Configuration) {
	if patch.Metadata != nil {
		conf.Metadata = patch.Metadata
	}
	if patch.Owner != nil {
		conf.Owner = patch.Owner
	}
	if patch.Price != (coin.Coin{}) {
		conf.Price = patch.Price
	}
	if patch.PresalePriceOg != (coin.Coin{}) {
		conf.PresalePriceOg = patch.PresalePriceOg
	}
	if patch.PresalePriceWl != (coin.Coin{}) {
		conf.PresalePriceWl = patch.PresalePriceWl
	}
	if patch.MaxTokenPerWallet != 0 {
		conf.MaxTokenPerWallet = patch.MaxTokenPerWallet
	}
	if patch.MaxMintPerTx != 0 {
		conf.MaxMintPerTx = patch.MaxMintPerTx
	}
	if patch.PresaleMaxPerOg != 0 {
		conf.PresaleMaxPerOg = patch.PresaleMaxPerOg
	}
	if patch.PresaleMaxPerWl != 0 {
		conf.PresaleMaxPerWl = patch.PresaleMaxPerWl
	}
	if patch.ClaimOnce {
		conf.ClaimOnce = true
	}
	if patch.PresaleStart != 0 {
		conf.PresaleStart = patch.PresaleStart
	}
	if patch.PublicSaleStart != 0 {
		conf.PublicSaleStart = patch.PublicSaleStart
	}
	if patch.RevealAt != 0 {
		conf.RevealAt = patch.RevealAt
	}
	if len(patch.OgRoot) != 0 {
		conf.OgRoot = patch.OgRoot
	}
	if len(patch.WlRoot) != 0 {
		conf.WlRoot = patch.WlRoot
	}
	if patch.BaseUri != "" {
		conf.BaseUri = patch.BaseUri
	}
}

// getParticipant returns the mint record of the given address. A zero value
// record is returned for an address that did not mint yet.
func getParticipant(b orm.ModelBucket, db weave.KVStore, addr weave.Address) (*Participant, error) {
	var p Participant
	switch err := b.One(db, addr, &p); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		p = Participant{
			Metadata: &weave.Metadata{Schema: 1},
			Address:  addr,
		}
	default:
		return nil, errors.Wrap(err, "cannot load participant")
	}
	return &p, nil
}
