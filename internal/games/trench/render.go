package trench

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/trench-runner/internal/core"
	"github.com/vovakirdan/trench-runner/internal/runner"
)

// Visual characters for rendering
const (
	RailChar     = '·'
	HorizonChar  = '─'
	BlockChar    = '█'
	PitChar      = '░'
	BubbleChar   = '○'
	TokenChar    = '◎'
	PlayerChar   = '▲'
	SlideChar    = '▬'
	ShieldChar   = '◇'
	WhaleGlyph   = "<W>"
	ChargeFull   = '●'
	ChargeEmpty  = '○'
	ComboFull    = '■'
	ComboPartial = '□'
)

// hudRows are reserved at the top for score, combo and boosts.
const hudRows = 3

// view maps track coordinates onto the screen.
type view struct {
	track    runner.Track
	horizonY int
	playerY  int
	centerX  int
	laneW    float64 // Columns between lane centres at the player
	horizon  float64 // Perspective scale at the far depth
}

func newView(dst *core.Screen, track runner.Track) view {
	h := dst.Height()
	return view{
		track:    track,
		horizonY: hudRows + 1,
		playerY:  h - 3,
		centerX:  dst.Width() / 2,
		laneW:    float64(dst.Width()) / float64(track.Lanes+1),
		horizon:  track.HorizonScale(),
	}
}

// rowFor returns the screen row for a perspective scale.
func (v view) rowFor(scale float64) int {
	t := (scale - v.horizon) / (1 - v.horizon)
	return v.horizonY + int(math.Round(t*float64(v.playerY-v.horizonY)))
}

// scaleAt inverts rowFor.
func (v view) scaleAt(y int) float64 {
	span := float64(v.playerY - v.horizonY)
	if span <= 0 {
		return 1
	}
	t := float64(y-v.horizonY) / span
	return v.horizon + t*(1-v.horizon)
}

// place projects a lane/depth pair to a screen cell.
func (v view) place(lane, depth float64) (x, y int) {
	p := v.track.Project(lane, depth)
	x = v.centerX + int(math.Round(p.X*v.laneW*p.Scale))
	y = v.rowFor(p.Scale)
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < hudRows+6 {
		msg := "window too small"
		if len(msg) > dst.Width() {
			msg = "too small"
		}
		dst.DrawText(0, 0, msg)
		return
	}

	v := newView(dst, g.sim.Track())
	g.drawTrack(dst, v)
	g.drawEntities(dst, v)
	g.drawWhale(dst, v)
	g.drawPlayer(dst, v)
	g.drawHUD(dst)
	g.drawBanners(dst, v)

	if g.sim.Paused() {
		drawCenteredBox(dst, []string{"PAUSED", "", "P to resume"})
	}
	if g.sim.Phase() == runner.PhaseGameOver {
		g.drawGameOver(dst)
	}
}

func (g *Game) drawTrack(dst *core.Screen, v view) {
	prev := dst.Pen(core.ColorTrack)
	defer dst.Pen(prev)

	dst.DrawHLine(0, v.horizonY, dst.Width(), HorizonChar)
	lanes := v.track.Lanes
	for y := v.horizonY + 1; y < dst.Height(); y++ {
		scale := v.scaleAt(y)
		// Rails animate toward the player by skipping alternate rows.
		if (y+g.frame/4)%2 == 0 {
			continue
		}
		for k := 0; k <= lanes; k++ {
			offset := float64(k) - 0.5 - v.track.Center()
			x := v.centerX + int(math.Round(offset*v.laneW*scale))
			dst.Set(x, y, RailChar)
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, v view) {
	ents := g.sim.Arena().Entities()
	// Far entities first so nearer ones overwrite them.
	for i := 1; i < len(ents); i++ {
		for j := i; j > 0 && ents[j].Depth > ents[j-1].Depth; j-- {
			ents[j], ents[j-1] = ents[j-1], ents[j]
		}
	}

	for _, e := range ents {
		if e.Depth > v.track.Far || e.Depth < v.track.Behind {
			continue
		}
		x, y := v.place(e.Lane, e.Depth)
		if y >= dst.Height() || y <= v.horizonY {
			continue
		}
		glyph, color := entityGlyph(e)
		width := 1
		if e.Kind == runner.KindObstacle {
			width = core.Max(1, int(v.laneW*v.track.Project(e.Lane, e.Depth).Scale*0.6))
		}
		prev := dst.Pen(color)
		dst.DrawHLine(x-width/2, y, width, glyph)
		dst.Pen(prev)
	}
}

func entityGlyph(e runner.Entity) (rune, core.Color) {
	switch e.Kind {
	case runner.KindObstacle:
		if e.IsPit() {
			return PitChar, core.ColorHazard
		}
		return BlockChar, core.ColorHazard
	case runner.KindCollectible:
		if e.Item == "" {
			return '$', core.ColorCoin
		}
		return []rune(strings.ToUpper(e.Item))[0], core.ColorCoin
	case runner.KindBoost:
		return e.Boost.Glyph(), core.ColorBoost
	case runner.KindTrailBubble:
		return BubbleChar, core.ColorWhale
	case runner.KindWhaleToken:
		return TokenChar, core.ColorGold
	default:
		return '?', core.ColorDefault
	}
}

func (g *Game) drawWhale(dst *core.Screen, v view) {
	w := g.sim.Whale()
	if !w.TrailActive {
		return
	}
	x, y := v.place(w.LeaderLane, w.LeaderDepth)
	prev := dst.Pen(core.ColorWhale)
	dst.DrawText(x-1, core.Max(y-1, v.horizonY+1), WhaleGlyph)
	dst.Pen(prev)
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.sim.Player()
	recovering := g.sim.Recovering()
	if recovering && g.frame%8 < 4 {
		return
	}

	x, y := v.place(float64(p.Lane), 0)
	y -= int(p.Height / 40)

	prev := dst.Pen(g.sim.Tint())
	defer dst.Pen(prev)

	glyph := PlayerChar
	if p.Sliding {
		glyph = SlideChar
	}
	dst.Set(x, y, glyph)
	if g.sim.Boosts().HasShield {
		dst.Pen(core.ColorBoost)
		dst.Set(x-1, y, ShieldChar)
		dst.Set(x+1, y, ShieldChar)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	run := g.sim.Run()
	prev := dst.Pen(core.ColorDefault)
	defer dst.Pen(prev)

	left := fmt.Sprintf(" SCORE %d  x%.1f  %dm", g.sim.Score(), run.Multiplier, int(run.Distance))
	dst.DrawText(0, 0, left)
	right := fmt.Sprintf("BEST %d ", core.Max(g.sim.Best(), g.sim.Score()))
	if label := g.tier.Label(); label != "" {
		right = label + "  " + right
	}
	dst.Pen(g.sim.Tint())
	dst.DrawText(dst.Width()-len([]rune(right)), 0, right)

	dst.Pen(core.ColorDim)
	dst.DrawText(1, 1, comboBar(g.sim.Combo(), g.sim.Config().Combo.ChargesNeeded))

	inv := g.sim.Boosts()
	x := 1
	for i, b := range runner.BoostTypes {
		slot := inv.Slot(b)
		text := fmt.Sprintf("[%d]%c %s %d", i+1, b.Glyph(), chargeBar(slot.Charge, inv.ChargesNeeded()), slot.Available)
		if t := activeTimer(inv, b); t > 0 {
			text += fmt.Sprintf(" %.0fs", math.Ceil(t))
			dst.Pen(core.ColorBoost)
		} else {
			dst.Pen(core.ColorDim)
		}
		dst.DrawText(x, 2, text)
		x += len([]rune(text)) + 3
	}
	if run.ExtraLife {
		dst.Pen(core.ColorWhale)
		dst.DrawText(x, 2, "+1UP")
	}
}

func comboBar(c runner.ComboState, need int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "COMBO x%d ", c.Count)
	for i := 0; i < need; i++ {
		if i < c.Progress {
			sb.WriteRune(ComboFull)
		} else {
			sb.WriteRune(ComboPartial)
		}
	}
	return sb.String()
}

func chargeBar(charge, need int) string {
	out := make([]rune, need)
	for i := range out {
		out[i] = ChargeEmpty
		if i < charge {
			out[i] = ChargeFull
		}
	}
	return string(out)
}

func activeTimer(inv runner.Inventory, b runner.BoostType) float64 {
	switch b {
	case runner.BoostDouble:
		if inv.Double() {
			return inv.BoostTimer
		}
	case runner.BoostShield:
		if inv.HasShield {
			return inv.ShieldTimer
		}
	case runner.BoostMagnet:
		if inv.HasMagnet {
			return inv.MagnetTimer
		}
	}
	return 0
}

func (g *Game) drawBanners(dst *core.Screen, v view) {
	y := v.horizonY + 1
	w := g.sim.Whale()

	if w.ControlsReversed {
		prev := dst.Pen(core.ColorAlert)
		if g.frame%20 < 14 {
			dst.DrawTextCentered(y, fmt.Sprintf("!! CONTROLS REVERSED %.1fs !!", w.AlertTimer))
		}
		dst.Pen(prev)
		y++
	}
	if w.TrailActive {
		prev := dst.Pen(core.ColorWhale)
		dst.DrawTextCentered(y, fmt.Sprintf("CATCH THE WHALE %d/%d", w.TrailProgress, len(w.TrailPath)))
		dst.Pen(prev)
		y++
	}

	for _, b := range g.banners.items {
		prev := dst.Pen(b.color)
		dst.DrawTextCentered(y, b.text)
		dst.Pen(prev)
		y++
	}
}

func (g *Game) drawGameOver(dst *core.Screen) {
	b := g.sim.Final()
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Score        %8d", b.Score),
		fmt.Sprintf("Distance     %7dm", b.Distance),
		fmt.Sprintf("Multiplier   %8.1f", b.Multiplier),
		fmt.Sprintf("Coins        %8d", b.Tokens),
		fmt.Sprintf("  distance   %8d", b.DistanceScore),
		fmt.Sprintf("  coins      %8d", b.CoinScore),
		fmt.Sprintf("  whale      %8d", b.WhaleScore),
		fmt.Sprintf("Max combo    %8d", b.MaxCombo),
		fmt.Sprintf("Boosts used  %8d", b.BoostsUsed),
		fmt.Sprintf("Whale tokens %8d", b.WhaleTokens),
		fmt.Sprintf("Best         %8d", b.Best),
		"",
	}
	if g.newBest {
		lines = append(lines, "NEW BEST!", "")
	}
	lines = append(lines, "R restart  L scores  Q quit")
	drawCenteredBox(dst, lines)
}

// drawCenteredBox draws a message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, lines []string) {
	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, boxH)

	prev := dst.Pen(core.ColorDefault)
	defer dst.Pen(prev)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l)
	}
}
