package treasury

import (
	"github.com/iov-one/weave/errors"
)

var (
	// ErrAlreadyConfirmed is returned when an approver confirms the same
	// withdrawal a second time.
	ErrAlreadyConfirmed = errors.Register(2050, "already confirmed")

	// ErrNotConfirmed is returned when revoking a confirmation that was
	// never given.
	ErrNotConfirmed = errors.Register(2051, "not confirmed")

	// ErrQuorumNotMet is returned when executing a withdrawal that did
	// not collect enough confirmations.
	ErrQuorumNotMet = errors.Register(2052, "quorum not met")

	// ErrAlreadyExecuted is returned when operating on a withdrawal that
	// was already paid out.
	ErrAlreadyExecuted = errors.Register(2053, "already executed")

	// ErrReentrancy is returned when a withdrawal execution is started
	// while another one is still being processed.
	ErrReentrancy = errors.Register(2054, "reentrant call")
)
