package punchman

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-punchman/internal/core"
	"github.com/vovakirdan/tui-punchman/internal/games/punchman/world"
)

// World pixels covered by one terminal character. Terminal cells are about
// twice as tall as they are wide.
const (
	pxPerCol = 8
	pxPerRow = 16
	hudRows  = 1
)

// Visual characters for rendering
const (
	GroundChar    = '▓'
	PlatformChar  = '═'
	SpikeChar     = '▲'
	CoinChar      = 'o'
	GemChar       = '◆'
	PortalChar    = '░'
	SwitchOnChar  = '▣'
	SwitchOffChar = '□'
	EnemyChar     = '▆'
	EnemyEye      = '•'
	PlayerChar    = '█'
	PlayerStride  = '▚'
	FistRight     = '»'
	FistLeft      = '«'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.world.Snapshot()
	g.draw(dst, &snap)
}

// draw renders a snapshot: the level and its entities below a one-line HUD,
// plus the overlay for the current status.
func (g *Game) draw(dst *core.Screen, s *world.Snapshot) {
	area := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	if area.Empty() {
		return
	}
	v := viewport{area: area, cam: cameraFor(s, area)}

	v.drawTiles(dst, s.Grid)
	if !s.Portal.Hidden {
		dst.DrawRect(v.project(s.Portal), PortalChar, core.ColorMagenta)
	}
	if s.SwitchOn {
		dst.DrawRect(v.project(s.Switch), SwitchOnChar, core.ColorGreen)
	} else {
		dst.DrawRect(v.project(s.Switch), SwitchOffChar, core.ColorGray)
	}
	for _, e := range s.Enemies {
		if !e.Dead {
			v.drawEnemy(dst, e)
		}
	}
	v.drawPlayer(dst, s)

	if s.Debug {
		v.drawDebug(dst, s)
	}

	g.drawHUD(dst, s)
	drawHint(dst, s, area)
	drawOverlay(dst, s)
}

// viewport maps world pixels to screen cells through a camera expressed in
// level characters.
type viewport struct {
	area core.Rect
	cam  core.Rect
}

// cameraFor centers the camera on the player, clamped to the level.
func cameraFor(s *world.Snapshot, area core.Rect) core.Rect {
	levelW := ceilDiv(s.Grid.PixelWidth(), pxPerCol)
	levelH := ceilDiv(s.Grid.PixelHeight(), pxPerRow)
	p := s.Player
	cx := int((p.X + p.W/2) / pxPerCol)
	cy := int((p.Y + p.H/2) / pxPerRow)
	return core.Follow(cx, cy, area.W, area.H, levelW, levelH)
}

// rect converts a pixel rectangle into screen cells without clipping.
// Anything with a size covers at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x / pxPerCol))
	y0 := int(math.Floor(y / pxPerRow))
	x1 := core.Max(int(math.Ceil((x+w)/pxPerCol)), x0+1)
	y1 := core.Max(int(math.Ceil((y+h)/pxPerRow)), y0+1)
	return core.NewRect(
		x0-v.cam.X+v.area.X,
		y0-v.cam.Y+v.area.Y,
		x1-x0,
		y1-y0,
	)
}

// project converts an entity to screen cells clipped to the play area.
func (v viewport) project(e world.EntityView) core.Rect {
	return v.rect(e.X, e.Y, e.W, e.H).Clip(v.area)
}

func (v viewport) set(dst *core.Screen, x, y int, r rune, c core.Color) {
	if v.area.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// drawTiles draws the visible part of the grid.
func (v viewport) drawTiles(dst *core.Screen, grid *world.Grid) {
	cw, ch := grid.CellWidth(), grid.CellHeight()
	firstCol := v.cam.X * pxPerCol / cw
	firstRow := v.cam.Y * pxPerRow / ch
	lastCol := (v.cam.X+v.area.W)*pxPerCol/cw + 1
	lastRow := (v.cam.Y+v.area.H)*pxPerRow/ch + 1

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			t, ok := grid.Cell(col, row)
			if !ok || t.Code.IsAir() {
				continue
			}
			r := v.rect(t.X, t.Y, float64(cw), float64(ch))

			switch t.Code {
			case world.TileCoin:
				v.set(dst, r.X+r.W/2, r.Bottom()-1, CoinChar, core.ColorBrightYellow)
			case world.TileGem:
				v.set(dst, r.X+r.W/2, r.Bottom()-1, GemChar, core.ColorBrightCyan)
			case world.TileSpikes:
				dst.DrawRect(core.NewRect(r.X, r.Bottom()-1, r.W, 1).Clip(v.area), SpikeChar, core.ColorRed)
			case world.TilePlatform:
				dst.DrawRect(r.Clip(v.area), PlatformChar, core.ColorYellow)
			default:
				dst.DrawRect(r.Clip(v.area), GroundChar, core.ColorBrown)
			}
		}
	}
}

func (v viewport) drawEnemy(dst *core.Screen, e world.EntityView) {
	r := v.rect(e.X, e.Y, e.W, e.H)
	dst.DrawRect(r.Clip(v.area), EnemyChar, core.ColorRed)

	eyeX := r.Right() - 1
	if e.Facing < 0 {
		eyeX = r.X
	}
	v.set(dst, eyeX, r.Y, EnemyEye, core.ColorBrightWhite)
}

func (v viewport) drawPlayer(dst *core.Screen, s *world.Snapshot) {
	p := s.Player
	r := v.rect(p.X, p.Y, p.W, p.H)

	color := core.ColorBrightBlue
	switch {
	case s.Motion == world.MotionAttacking:
		color = core.ColorBrightYellow
	case s.Hits == 1:
		color = core.ColorBrightRed
	}
	dst.DrawRect(r.Clip(v.area), PlayerChar, color)

	// Alternate the legs while walking
	if s.Motion == world.MotionMoving && s.Frame%2 == 1 {
		for x := r.X; x < r.Right(); x++ {
			v.set(dst, x, r.Bottom()-1, PlayerStride, color)
		}
	}

	if s.Motion == world.MotionAttacking {
		if p.Facing < 0 {
			v.set(dst, r.X-1, r.Y, FistLeft, core.ColorBrightYellow)
		} else {
			v.set(dst, r.Right(), r.Y, FistRight, core.ColorBrightYellow)
		}
	}
}

// drawDebug outlines every collision body and marks its center.
func (v viewport) drawDebug(dst *core.Screen, s *world.Snapshot) {
	bodies := []world.EntityView{s.Player, s.Switch}
	if !s.Portal.Hidden {
		bodies = append(bodies, s.Portal)
	}
	for _, e := range s.Enemies {
		if !e.Dead {
			bodies = append(bodies, e)
		}
	}

	for _, b := range bodies {
		r := v.rect(b.X, b.Y, b.W, b.H)
		dst.DrawBox(r.Clip(v.area), core.ColorBrightGreen)
		cx := int((b.X + b.W/2) / pxPerCol)
		cy := int((b.Y + b.H/2) / pxPerRow)
		v.set(dst, cx-v.cam.X+v.area.X, cy-v.cam.Y+v.area.Y, '+', core.ColorBrightGreen)
	}
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen, s *world.Snapshot) {
	hud := fmt.Sprintf(" L%d %s │ Lives %s │ Hits %s │ Gems %d/%d │ Coins %d │ Score %d ",
		s.Level+1, s.LevelName,
		strings.Repeat("♥", s.Lives),
		strings.Repeat("■", s.Hits),
		s.Gems, g.cfg.GemThreshold,
		s.Coins,
		s.Total+s.Coins,
	)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)

	var flags []string
	if s.Debug {
		flags = append(flags, fmt.Sprintf("DEBUG t=%d", s.Tick))
	}
	if s.Muted {
		flags = append(flags, "MUTED")
	}
	if len(flags) > 0 {
		text := "[" + strings.Join(flags, "] [") + "] "
		dst.DrawText(dst.Width()-len([]rune(text)), 0, text, core.ColorGray)
	}
}

// drawHint tells the player what interact would do right now.
func drawHint(dst *core.Screen, s *world.Snapshot, area core.Rect) {
	if s.Status != world.StatusPlaying {
		return
	}
	var hint string
	switch {
	case s.InPortal && !s.Portal.Hidden:
		hint = "E: enter portal"
	case s.InSwitch:
		hint = "E: flip switch"
	default:
		return
	}
	dst.DrawTextCentered(area.Bottom()-1, hint, core.ColorBrightWhite)
}

// drawOverlay draws the message box for menu, pause and end screens.
func drawOverlay(dst *core.Screen, s *world.Snapshot) {
	switch s.Status {
	case world.StatusMenu:
		drawCenteredMessage(dst, "PUNCH MAN", "Enter: play  |  1/2: pick level  |  Q: quit")
	case world.StatusPaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case world.StatusGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Enter to retry", s.Total+s.Coins))
	case world.StatusWin:
		drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Total score: %d  |  Enter to play again", s.Total))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle, core.ColorDefault)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
