package collection

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrSupplyExhausted is returned when a mint operation would push the
	// number of existing tokens over the collection supply cap.
	ErrSupplyExhausted = errors.Register(2030, "supply exhausted")

	// ErrNoSuchToken is returned when referencing a token that was never
	// minted.
	ErrNoSuchToken = errors.Register(2031, "no such token")
)
