package runner

import (
	"fmt"
	"math"

	"github.com/servetkarckay/neon-runner-sub001/internal/core"
	"github.com/servetkarckay/neon-runner-sub001/internal/sim"
)

// Visual characters for rendering
const (
	PlayerBody  = '█'
	PlayerHead  = '◆'
	GroundChar  = '═'
	BlockChar   = '▓'
	SpikeChar   = '▲'
	AerialChar  = '◆'
	PlatChar    = '▬'
	HazardChar  = '░'
	DropChar    = '●'
	LaserHub    = '◉'
	LaserBeam   = '·'
	GridChar    = '║'
	SlantUp     = '╱'
	SlantDown   = '╲'
	PickupChars = "◈×◔◎" // shield, multiplier, timeWarp, magnet
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	groundRow := g.projectY(g.cfg.World.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.sim.Obstacles() {
		g.drawObstacle(dst, o)
	}
	for _, p := range g.sim.PowerUps() {
		g.drawPowerUp(dst, p)
	}
	g.drawPlayer(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if !g.sim.Alive() {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.sim.Score()))
	}
}

// projectX maps a world x-coordinate onto a screen column.
func (g *Game) projectX(x float64) int {
	return int(x / g.cfg.World.Width * float64(g.runtime.ScreenW))
}

// projectY maps a world y-coordinate onto a screen row. Row 0 is
// reserved for the HUD.
func (g *Game) projectY(y float64) int {
	rows := g.runtime.ScreenH - 1
	return 1 + int(y/g.cfg.World.Height*float64(rows))
}

// projectRect maps a world rect onto cells, always at least one cell.
func (g *Game) projectRect(r sim.Rect) core.Rect {
	x := g.projectX(r.X)
	y := g.projectY(r.Y)
	w := max(1, g.projectX(r.Right())-x)
	h := max(1, g.projectY(r.Bottom())-y)
	return core.NewRect(x, y, w, h)
}

func (g *Game) drawObstacle(dst *core.Screen, o *sim.Obstacle) {
	cell := g.projectRect(o.Bounds())

	switch o.Kind {
	case sim.KindGround:
		dst.DrawRect(cell, BlockChar, core.ColorGreen)

	case sim.KindSpike:
		// Narrowing rows suggest the triangle shape.
		for row := 0; row < cell.H; row++ {
			shrink := (cell.H - 1 - row) * cell.W / (2 * max(1, cell.H))
			dst.DrawHLine(cell.X+shrink, cell.Y+row, cell.W-2*shrink, SpikeChar, core.ColorBrightRed)
		}

	case sim.KindAerial, sim.KindMovingAerial:
		dst.DrawRect(cell, AerialChar, core.ColorBrightRed)

	case sim.KindPlatform, sim.KindMovingPlatform:
		dst.DrawRect(cell, PlatChar, core.ColorCyan)

	case sim.KindHazardZone:
		dst.DrawRect(cell, HazardChar, core.ColorMagenta)

	case sim.KindFallingDrop:
		dst.DrawRect(cell, DropChar, core.ColorBrightBlue)

	case sim.KindRotatingLaser:
		g.drawBeam(dst, o)
		cx, cy := cell.Center()
		dst.SetColored(cx, cy, LaserHub, core.ColorBrightMagenta)

	case sim.KindLaserGrid:
		g.drawGrid(dst, o, cell)

	case sim.KindSlantedSurface:
		g.drawSlant(dst, o)
	}
}

// drawBeam samples the rotating beam segment at cell granularity.
func (g *Game) drawBeam(dst *core.Screen, o *sim.Obstacle) {
	b := o.Bounds()
	cx, cy := b.CenterX(), b.CenterY()
	steps := max(2, g.projectX(o.BeamLength))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps) * o.BeamLength
		x := cx + math.Cos(o.Angle)*t
		y := cy + math.Sin(o.Angle)*t
		dst.SetColored(g.projectX(x), g.projectY(y), LaserBeam, core.ColorBrightMagenta)
	}
}

// drawGrid draws the full-height laser column with its gap cleared.
func (g *Game) drawGrid(dst *core.Screen, o *sim.Obstacle, cell core.Rect) {
	gapTop := g.projectY(o.GapY - o.GapHeight/2)
	gapBottom := g.projectY(o.GapY + o.GapHeight/2)
	for y := cell.Y; y < cell.Bottom(); y++ {
		if y >= gapTop && y <= gapBottom {
			continue
		}
		dst.DrawHLine(cell.X, y, cell.W, GridChar, core.ColorBrightRed)
	}
}

// drawSlant traces the stored diagonal edge.
func (g *Game) drawSlant(dst *core.Screen, o *sim.Obstacle) {
	glyph := SlantDown
	if o.LineY1 > o.LineY2 {
		glyph = SlantUp
	}
	x1 := g.projectX(o.X + o.LineX1)
	y1 := g.projectY(o.Y + o.LineY1)
	x2 := g.projectX(o.X + o.LineX2)
	y2 := g.projectY(o.Y + o.LineY2)
	steps := max(core.Abs(x2-x1), core.Abs(y2-y1))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		x := x1 + (x2-x1)*i/steps
		y := y1 + (y2-y1)*i/steps
		dst.SetColored(x, y, glyph, core.ColorYellow)
	}
}

func (g *Game) drawPowerUp(dst *core.Screen, p *sim.PowerUp) {
	if !p.Active {
		return
	}
	glyphs := []rune(PickupChars)
	colors := []core.Color{
		core.ColorBrightCyan,
		core.ColorBrightYellow,
		core.ColorBrightBlue,
		core.ColorBrightMagenta,
	}
	idx := int(p.Kind)
	if idx >= len(glyphs) {
		idx = 0
	}
	b := p.Bounds()
	dst.SetColored(g.projectX(b.CenterX()), g.projectY(b.CenterY()), glyphs[idx], colors[idx])
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.sim.Player()
	cell := g.projectRect(sim.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H})

	color := core.ColorBrightGreen
	switch {
	case p.InvincibleTimer > 0 && g.sim.Frame()%4 < 2:
		color = core.ColorWhite // blink through the grace window
	case p.HasShield:
		color = core.ColorBrightCyan
	case p.IsGrazing:
		color = core.ColorBrightYellow
	}

	dst.DrawRect(cell, PlayerBody, color)
	dst.SetColored(cell.Right()-1, cell.Y, PlayerHead, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.sim.Player()

	scoreText := fmt.Sprintf(" Score: %d ", g.sim.Score())
	dst.DrawText(2, 0, scoreText)

	speedText := fmt.Sprintf(" Spd: %.1f ", g.sim.Speed())
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	// Active effect badges, right after the score.
	x := 2 + len(scoreText) + 1
	badge := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len(text) + 1
	}
	if p.HasShield {
		badge("[SHLD]", core.ColorBrightCyan)
	}
	if p.MultiplierTimer > 0 {
		badge(fmt.Sprintf("[x%.0f]", p.ScoreMultiplier), core.ColorBrightYellow)
	}
	if p.TimeWarpTimer > 0 {
		badge("[WARP]", core.ColorBrightBlue)
	}
	if p.HasMagnet {
		badge("[MAG]", core.ColorBrightMagenta)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
