package sale

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrAmountCap is returned when a mint request asks for more tokens
	// than the limits of the current stage allow.
	ErrAmountCap = errors.Register(2000, "amount exceeds cap")

	// ErrInsufficientPayment is returned when the attached payment does
	// not cover the price of the requested tokens.
	ErrInsufficientPayment = errors.Register(2001, "insufficient payment")

	// ErrInvalidProof is returned when the merkle proof does not place
	// the minter on the allowlist.
	ErrInvalidProof = errors.Register(2002, "invalid allowlist proof")

	// ErrWrongStage is returned when an operation is not available during
	// the current stage of the sale.
	ErrWrongStage = errors.Register(2003, "wrong sale stage")

	// ErrAlreadyClaimed is returned when an allowlist member tries to
	// mint a second time while only a single claim is allowed.
	ErrAlreadyClaimed = errors.Register(2004, "already claimed")

	// ErrReentrancy is returned when a mint operation is started while
	// another one is still being processed.
	ErrReentrancy = errors.Register(2005, "reentrant call")
)
