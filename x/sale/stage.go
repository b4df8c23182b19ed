package sale

import (
	"math"

	weave "github.com/iov-one/weave"
)

// Stage is the phase of the sale at a given moment. It is derived from the
// configuration and the block time and never persisted.
type Stage uint8

const (
	// StageIdle is the period before any sale. No public minting is
	// possible.
	StageIdle Stage = iota
	// StagePresaleOg is the first presale period, exclusive to the OG
	// allowlist.
	StagePresaleOg
	// StagePresaleWl is the second presale period. Both OG and WL
	// allowlist members can mint.
	StagePresaleWl
	// StagePublicSale is the final stage. Anyone can mint. Once entered
	// this stage is never left.
	StagePublicSale
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StagePresaleOg:
		return "presale_og"
	case StagePresaleWl:
		return "presale_wl"
	case StagePublicSale:
		return "public_sale"
	default:
		return "invalid"
	}
}

// presaleInterval is the length of the OG exclusive period in seconds. The
// WL presale opens this long after the presale start.
const presaleInterval = 900

// CurrentStage returns the stage of the sale at the given time. The public
// sale start takes priority, so a configuration where the periods overlap
// resolves in favour of the later stage. A zero start time means the period
// is not scheduled.
func CurrentStage(conf *Configuration, now weave.UnixTime) Stage {
	if conf.PublicSaleStart != 0 && now >= conf.PublicSaleStart {
		return StagePublicSale
	}
	if conf.PresaleStart != 0 && now >= conf.PresaleStart {
		if now >= saturatedAdd(conf.PresaleStart, presaleInterval) {
			return StagePresaleWl
		}
		return StagePresaleOg
	}
	return StageIdle
}

// saturatedAdd clamps at the maximum time value instead of overflowing.
func saturatedAdd(t weave.UnixTime, seconds int64) weave.UnixTime {
	if int64(t) > math.MaxInt64-seconds {
		return weave.UnixTime(math.MaxInt64)
	}
	return t + weave.UnixTime(seconds)
}
