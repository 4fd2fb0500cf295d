package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/formation"
)

// Visual characters for rendering
const (
	GlyphA     = '▓'
	GlyphB     = '█'
	GlyphC     = '▒'
	FloorChar  = '─'
	hudHeight  = 1
	minCellsWH = 1
)

// invaderStyle picks the glyph and color for a formation row, cycling
// through three invader types from the bottom row up.
func invaderStyle(row int) (rune, core.Color) {
	switch row % 3 {
	case 0:
		return GlyphA, core.ColorRed
	case 1:
		return GlyphB, core.ColorGreen
	default:
		return GlyphC, core.ColorBlue
	}
}

// viewport maps playfield units to screen cells below the HUD.
// The playfield y axis points up, the screen's points down.
type viewport struct {
	sx, sy  float64
	height  float64
	originY int
}

func newViewport(dst *core.Screen, width, height float64) viewport {
	rows := dst.Height() - hudHeight
	return viewport{
		sx:      float64(dst.Width()) / width,
		sy:      float64(rows) / height,
		height:  height,
		originY: hudHeight,
	}
}

// cellRect returns the screen cells covered by a playfield box.
func (v viewport) cellRect(pos formation.Vec, size formation.Size) core.Rect {
	x0 := int(pos.X * v.sx)
	x1 := int((pos.X + size.W) * v.sx)
	y0 := v.originY + int((v.height-pos.Y-size.H)*v.sy)
	y1 := v.originY + int((v.height-pos.Y)*v.sy)
	return core.NewRect(x0, y0, max(x1-x0, minCellsWH), max(y1-y0, minCellsWH))
}

func (v viewport) row(y float64) int {
	return v.originY + int((v.height-y)*v.sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.ctrl == nil {
		msg := "No formation"
		if g.setupErr != nil {
			msg = g.setupErr.Error()
		}
		g.drawCenteredMessage(dst, "CONFIG ERROR", msg)
		return
	}

	width, height := g.ctrl.Bounds()
	vp := newViewport(dst, width, height)

	floorRow := vp.row(g.cfg.Playfield.Floor)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, floorRow, FloorChar, core.ColorGray)
	}

	size := g.ctrl.InvaderSize()
	for _, inv := range g.ctrl.Invaders() {
		if !inv.Alive {
			continue
		}
		glyph, color := invaderStyle(inv.Row)
		r := vp.cellRect(inv.Pos, size)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "THEY LANDED",
			fmt.Sprintf("Wave %d  |  %d steps  |  Press R to restart", g.wave, g.steps))
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Wave: %d  Alive: %d/%d  Dir: %s ",
		g.wave, g.ctrl.Alive(), g.ctrl.Len(), g.ctrl.Direction())
	dst.DrawTextColored(1, 0, left, core.ColorWhite)

	if g.difficulty.IsEnabled() {
		killedFraction := float64(g.waveKilled) / float64(g.ctrl.Len())
		right := fmt.Sprintf(" Spd: x%.1f ", g.difficulty.Speed(g.wave, killedFraction))
		dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
