package trench

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/runner"
)

// bannerTicks is how long a banner stays up at 60 ticks per second.
const bannerTicks = 90

type banner struct {
	text  string
	color core.Color
	ttl   int
}

// banners keeps the most recent messages, newest last.
type banners struct {
	items []banner
}

func (b *banners) add(text string, color core.Color) {
	b.items = append(b.items, banner{text: text, color: color, ttl: bannerTicks})
	if len(b.items) > 3 {
		b.items = b.items[len(b.items)-3:]
	}
}

func (b *banners) tick() {
	kept := b.items[:0]
	for _, it := range b.items {
		it.ttl--
		if it.ttl > 0 {
			kept = append(kept, it)
		}
	}
	b.items = kept
}

// push converts a simulation event into a banner, if it deserves one.
func (b *banners) push(ev runner.Event) {
	switch e := ev.(type) {
	case runner.BoostCharged:
		if e.Ready {
			b.add(fmt.Sprintf("%s READY", strings.ToUpper(e.Boost.String())), core.ColorBoost)
		}
	case runner.BoostActivated:
		b.add(fmt.Sprintf("%s ON", strings.ToUpper(e.Boost.String())), core.ColorBoost)
	case runner.Save:
		b.add(fmt.Sprintf("SAVED BY %s", strings.ToUpper(e.Kind.String())), core.ColorAlert)
	case runner.ExtraLifeGranted:
		b.add("EXTRA LIFE", core.ColorWhale)
	case runner.WhaleUnlocked:
		b.add("A WHALE IS WATCHING", core.ColorWhale)
	case runner.ManipulationStarted:
		b.add("THE WHALE IS MANIPULATING", core.ColorAlert)
	case runner.TrailStarted:
		b.add("FOLLOW THE WHALE", core.ColorWhale)
	case runner.TrailEnded:
		if e.Success {
			b.add("WHALE CAUGHT", core.ColorWhale)
		} else {
			b.add("TRAIL LOST: "+strings.ToUpper(e.Reason), core.ColorAlert)
		}
	case runner.WhaleToken:
		b.add(fmt.Sprintf("+%d WHALE TOKEN", e.Points), core.ColorGold)
	case runner.ComboLost:
		if e.Count >= 3 {
			b.add(fmt.Sprintf("COMBO x%d LOST", e.Count), core.ColorDim)
		}
	}
}
