package sale

import (
	"math"
	"testing"

	weave "github.com/iov-one/weave"
)

func TestCurrentStage(t *testing.T) {
	const (
		presaleStart = weave.UnixTime(1600000000)
		publicStart  = presaleStart + 3600
	)
	conf := Configuration{
		PresaleStart:    presaleStart,
		PublicSaleStart: publicStart,
	}

	cases := map[string]struct {
		Conf Configuration
		Now  weave.UnixTime
		Want Stage
	}{
		"before the presale": {
			Conf: conf,
			Now:  presaleStart - 1,
			Want: StageIdle,
		},
		"first second of the presale": {
			Conf: conf,
			Now:  presaleStart,
			Want: StagePresaleOg,
		},
		"last second of the og exclusivity": {
			Conf: conf,
			Now:  presaleStart + presaleInterval - 1,
			Want: StagePresaleOg,
		},
		"wl presale opens after the og interval": {
			Conf: conf,
			Now:  presaleStart + presaleInterval,
			Want: StagePresaleWl,
		},
		"last second of the presale": {
			Conf: conf,
			Now:  publicStart - 1,
			Want: StagePresaleWl,
		},
		"public sale start": {
			Conf: conf,
			Now:  publicStart,
			Want: StagePublicSale,
		},
		"public sale never ends": {
			Conf: conf,
			Now:  publicStart + 10*365*24*3600,
			Want: StagePublicSale,
		},
		"public sale start cuts the presale short": {
			Conf: Configuration{
				PresaleStart:    presaleStart,
				PublicSaleStart: presaleStart + 300,
			},
			Now:  presaleStart + 300,
			Want: StagePublicSale,
		},
		"nothing scheduled": {
			Conf: Configuration{},
			Now:  presaleStart,
			Want: StageIdle,
		},
		"presale without a public sale runs forever": {
			Conf: Configuration{PresaleStart: presaleStart},
			Now:  presaleStart + 10000000,
			Want: StagePresaleWl,
		},
		"og interval saturates instead of wrapping around": {
			// Without saturation the og period end would overflow into
			// the far past and the wl stage would open right away.
			Conf: Configuration{PresaleStart: weave.UnixTime(math.MaxInt64 - 100)},
			Now:  weave.UnixTime(math.MaxInt64 - 1),
			Want: StagePresaleOg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if s := CurrentStage(&tc.Conf, tc.Now); s != tc.Want {
				t.Fatalf("want %s stage, got %s", tc.Want, s)
			}
		})
	}
}

func TestStageNeverRegresses(t *testing.T) {
	conf := Configuration{
		PresaleStart:    1600000000,
		PublicSaleStart: 1600002000,
	}
	prev := StageIdle
	for now := conf.PresaleStart - 10; now <= conf.PublicSaleStart+10; now++ {
		s := CurrentStage(&conf, now)
		if s < prev {
			t.Fatalf("stage regressed from %s to %s at %d", prev, s, now)
		}
		prev = s
	}
	if prev != StagePublicSale {
		t.Fatalf("want the walk to end in the public sale, got %s", prev)
	}
}
