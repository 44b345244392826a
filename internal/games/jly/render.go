package jly

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/sim"
)

// Visual characters for rendering
const (
	ShipChar   = '▲'
	RunnerChar = '☻'
	StarChar   = '·'
	ShotChar   = '•'
	BurstChar  = '✶'
	CrateChar  = '▆'
	AimChar    = '·'
	GroundChar = '▔'
	HeartFull  = "♥"
	HeartEmpty = "♡"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// texts are the fixed strings of one variant.
type texts struct {
	score  string
	lives  string
	level  string
	over   string
	retry  string
	paused string
	resume string
	meters bool // show distance instead of ramp level
}

func textsFor(variant string) texts {
	if variant == config.VariantShooter {
		return texts{
			score:  "Pont",
			lives:  "Élet",
			level:  "Tempó",
			over:   "JÁTÉK VÉGE",
			retry:  "Space / R: új játék",
			paused: "SZÜNET",
			resume: "P: folytatás",
		}
	}
	return texts{
		score:  "Score",
		lives:  "Shields",
		over:   "GAME OVER",
		retry:  "Press Space to Retry",
		paused: "PAUSED",
		resume: "Press P to resume",
		meters: true,
	}
}

// viewport maps world units onto the screen cells below the HUD.
type viewport struct {
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, pf config.Playfield) viewport {
	w, h := dst.Width(), dst.Height()-hudRows
	return viewport{
		sx: float64(w) / pf.Width,
		sy: float64(h) / pf.Height,
		w:  w,
		h:  h,
	}
}

// cell converts a world position to screen coordinates.
func (v viewport) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), hudRows + int(math.Floor(p.Y*v.sy))
}

// drawCentered writes text centered on a world position.
func (v viewport) drawCentered(dst *core.Screen, p core.Vec, text string, c core.Color) {
	x, y := v.cell(p)
	if y < hudRows {
		return
	}
	dst.DrawTextColor(x-utf8.RuneCountInString(text)/2, y, text, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Height() <= hudRows || dst.Width() == 0 {
		return
	}
	vp := newViewport(dst, g.cfg.Playfield)

	g.drawBackground(dst, vp)
	g.drawAim(dst, vp)
	g.drawObstacles(dst, vp)
	g.drawShots(dst, vp)
	g.drawEffects(dst, vp)
	g.drawPlayer(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, g.text.paused, g.text.resume)
	}
	if g.state.GameOver() {
		drawCenteredMessage(dst, g.text.over, fmt.Sprintf("%s: %d  |  %s", g.text.score, g.state.Score(), g.text.retry))
	}
}

// drawBackground draws stars or clouds and, for the runner, the ground.
func (g *Game) drawBackground(dst *core.Screen, vp viewport) {
	g.sprites.Each(sim.KindStar, func(sp Sprite) {
		x, y := vp.cell(sp.Pos)
		c := core.ColorGray
		if sp.Alpha < 0.5 {
			c = core.ColorDim
		}
		dst.SetColor(x, y, StarChar, c)
	})
	g.sprites.Each(sim.KindCloud, func(sp Sprite) {
		vp.drawCentered(dst, sp.Pos, "≈≈≈", core.ColorWhite)
	})

	if g.cfg.Spawn.Direction == config.DirectionLeft {
		// Ground sits just below the crates
		groundY := g.cfg.Spawn.Y.Max + g.cfg.Spawn.Width/2
		_, y := vp.cell(core.V(0, groundY))
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGray)
	}
}

// drawAim draws a dotted line from the ship to the locked target.
func (g *Game) drawAim(dst *core.Screen, vp viewport) {
	if g.cfg.Shot.Mode != config.ShotProjectile {
		return
	}
	id, ok := g.state.Lock()
	if !ok {
		return
	}
	target, ok := g.state.Obstacle(id)
	if !ok {
		return
	}

	from := g.state.Player().Add(core.V(0, -g.cfg.Rules.CollisionOffset))
	fx, fy := vp.cell(from)
	tx, ty := vp.cell(target.Pos)
	steps := max(abs(tx-fx), abs(ty-fy))
	for i := 2; i < steps; i += 2 {
		t := float64(i) / float64(steps)
		dst.SetColor(fx+int(math.Round(float64(tx-fx)*t)), fy+int(math.Round(float64(ty-fy)*t)), AimChar, core.ColorBlue)
	}
}

// drawObstacles draws word bubbles (shooter) or crates with labels (runner).
func (g *Game) drawObstacles(dst *core.Screen, vp viewport) {
	runner := g.cfg.Spawn.Direction == config.DirectionLeft
	g.sprites.Each(sim.KindObstacle, func(sp Sprite) {
		color := core.ColorCyan
		if sp.Tint {
			color = core.ColorBrightYellow
		} else if sp.Alpha < 0.6 {
			color = core.ColorGray
		}

		if runner {
			x, y := vp.cell(sp.Pos)
			crate := core.ColorOrange
			if sp.Tint {
				crate = core.ColorBrightYellow
			}
			dst.DrawTextColor(x-1, y, strings.Repeat(string(CrateChar), 2), crate)
			vp.drawCentered(dst, sp.Pos.Add(core.V(0, g.cfg.Shot.AimOffsetY)), sp.Label, color)
			return
		}

		vp.drawCentered(dst, sp.Pos, bubble(sp), color)
	})
}

// bubble frames a shooter label; closer bubbles get wider frames.
func bubble(sp Sprite) string {
	open, closing := "(", ")"
	switch {
	case sp.Tint:
		open, closing = "»", "«"
	case sp.Scale >= 1.3:
		open, closing = "((", "))"
	case sp.Scale < 0.9:
		open, closing = "·", "·"
	}
	return open + sp.Label + closing
}

// drawShots draws projectiles as dots and tween shots as their labels.
func (g *Game) drawShots(dst *core.Screen, vp viewport) {
	tween := g.cfg.Shot.Mode == config.ShotTween
	g.sprites.Each(sim.KindShot, func(sp Sprite) {
		c := core.ColorBrightCyan
		if sp.Label == "LY" {
			c = core.ColorBrightYellow
		}
		if tween {
			vp.drawCentered(dst, sp.Pos, sp.Label, c)
			return
		}
		x, y := vp.cell(sp.Pos)
		if y >= hudRows {
			dst.SetColor(x, y, ShotChar, c)
		}
	})
}

// drawEffects draws hit flashes, bursts and feedback text.
func (g *Game) drawEffects(dst *core.Screen, vp viewport) {
	g.sprites.Each(sim.KindBurst, func(sp Sprite) {
		mark := string(BurstChar)
		if sp.Scale > 1.5 {
			mark = "· " + mark + " ·"
		}
		vp.drawCentered(dst, sp.Pos, mark, core.ColorBrightCyan)
	})
	g.sprites.Each(sim.KindFlash, func(sp Sprite) {
		vp.drawCentered(dst, sp.Pos, sp.Label, core.ColorBrightGreen)
	})
	g.sprites.Each(sim.KindFeedback, func(sp Sprite) {
		c := core.ColorBrightRed
		if sp.Alpha < 0.4 {
			c = core.ColorRed
		}
		vp.drawCentered(dst, sp.Pos, sp.Label, c)
	})
}

// drawPlayer draws the ship or the runner.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	x, y := vp.cell(g.state.Player())
	color := core.ColorBrightBlue
	if g.state.GameOver() {
		color = core.ColorBrightRed
	}
	if g.cfg.Spawn.Direction == config.DirectionLeft {
		dst.SetColor(x, y, RunnerChar, color)
		return
	}
	dst.SetColor(x, y, ShipChar, color)
	dst.SetColor(x-1, y+1, '◢', color)
	dst.SetColor(x+1, y+1, '◣', color)
}

// drawHUD draws score, lives, last choice and progress on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	lives := strings.Repeat(HeartFull, g.state.Lives()) +
		strings.Repeat(HeartEmpty, g.state.MaxLives()-g.state.Lives())
	left := fmt.Sprintf(" %s: %d  %s: %s ", g.text.score, g.state.Score(), g.text.lives, lives)
	dst.DrawTextColor(0, 0, left, core.ColorWhite)

	if last := g.state.LastChoice().Label(); last != "" {
		dst.DrawTextCentered(0, "["+last+"]", core.ColorYellow)
	} else {
		dst.DrawTextCentered(0, g.title, core.ColorGray)
	}

	var right string
	if g.text.meters {
		right = fmt.Sprintf(" %d m ", int(g.state.Stats().Distance))
	} else {
		right = fmt.Sprintf(" %s: %d%% ", g.text.level, core.Clamp(int(g.state.Level()*100), 0, 100))
	}
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()
	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	// Calculate box dimensions
	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
