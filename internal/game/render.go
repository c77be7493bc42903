package game

import (
	"fmt"
	"math"

	"github.com/desk-pro/dino-qube/internal/core"
)

// Renderer palette. Entity colors are blended toward the sky for alpha
// effects, so only base tones live here.
var (
	earthColor    = core.NewColor(0x3a, 0x32, 0x28)
	groundColor   = core.NewColor(0xc2, 0xb2, 0x80)
	cactusColor   = core.NewColor(0x2e, 0x8b, 0x57)
	cactusDark    = core.NewColor(0x1f, 0x6e, 0x43)
	rockColor     = core.NewColor(0x8a, 0x82, 0x76)
	pteroColor    = core.NewColor(0x6e, 0x5f, 0x85)
	landmarkColor = core.NewColor(0x55, 0x50, 0x4c)
	playerColor   = core.NewColor(0xd4, 0xd4, 0xcc)
	playerDark    = core.NewColor(0x9a, 0x9a, 0x92)
	cloudColor    = core.NewColor(0xf2, 0xf2, 0xf2)
	starColor     = core.NewColor(0xff, 0xfd, 0xe0)
)

// cx projects a logical x-coordinate onto the screen column.
func cx(dst *core.Screen, x float64) int {
	return int(x / FieldW * float64(dst.Width()))
}

// cy projects a logical y-coordinate onto the screen row.
func cy(dst *core.Screen, y float64) int {
	return int(y / FieldH * float64(dst.Height()))
}

// Render draws the current world state back to front: sky, stars, clouds,
// ground, obstacles, particles, player, HUD, overlays. It reads state only
// and performs no mutation, so the frozen GAME_OVER frame keeps repainting
// unchanged.
func (g *Game) Render(dst *core.Screen) {
	if dst == nil {
		return // No surface this tick; try again next frame.
	}
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 10 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	phase := g.Phase()
	sky := SkyColor(phase)
	groundRow := cy(dst, GroundY)

	dst.FillBg(0, 0, dst.Width(), groundRow, sky)
	dst.FillBg(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, earthColor)

	g.drawStars(dst, sky, phase)
	g.drawClouds(dst, sky)
	g.drawGround(dst, groundRow)
	for i := range g.world.Obstacles {
		g.drawObstacle(dst, &g.world.Obstacles[i])
	}
	g.drawParticles(dst, sky)
	g.drawPlayer(dst)
	g.drawHUD(dst, sky)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.world.Status == StatusStart:
		g.drawCenteredMessage(dst, "DINO QUBE", "Press Space to run")
	case g.world.Status == StatusGameOver:
		sub := fmt.Sprintf("Score: %d  |  Space to run again", g.lastFinal)
		if g.newRecord {
			sub = fmt.Sprintf("NEW RECORD: %d  |  Space to run again", g.lastFinal)
		}
		g.drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawStars paints the fixed star field, modulated by the night window and
// a per-star twinkle.
func (g *Game) drawStars(dst *core.Screen, sky core.Color, phase float64) {
	alpha := StarAlpha(phase)
	if alpha <= 0 {
		return
	}
	for i := range g.world.Stars {
		s := &g.world.Stars[i]
		twinkle := 0.75 + 0.25*math.Sin(g.world.FrameCount*0.05+s.Phase)
		fg := sky.Lerp(starColor, alpha*twinkle)
		r := '·'
		if s.Size > 1 {
			r = '✦'
		}
		dst.SetFg(cx(dst, s.X), cy(dst, s.Y), r, fg)
	}
}

// drawClouds paints each cloud as a soft band scaled by its size factor.
func (g *Game) drawClouds(dst *core.Screen, sky core.Color) {
	fg := sky.Lerp(cloudColor, 0.7)
	for i := range g.world.Clouds {
		c := &g.world.Clouds[i]
		x := cx(dst, c.X)
		y := cy(dst, c.Y)
		w := int(4*c.Scale) + 2
		dst.SetFg(x, y, '░', fg)
		for dx := 1; dx < w-1; dx++ {
			dst.SetFg(x+dx, y, '▒', fg)
		}
		dst.SetFg(x+w-1, y, '░', fg)
		if c.Scale > 1.1 {
			for dx := 1; dx < w-2; dx++ {
				dst.SetFg(x+dx, y-1, '░', fg)
			}
		}
	}
}

// drawGround paints the ground line and a static speckle texture below it.
func (g *Game) drawGround(dst *core.Screen, groundRow int) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetFg(x, groundRow, '═', groundColor)
	}
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x*7+y*13)%17 == 0 {
				dst.SetFg(x, y, '·', groundColor)
			}
		}
	}
}

// drawObstacle dispatches on the variant. Every shape is parameterized by
// the obstacle's geometry so randomized scales render correctly.
func (g *Game) drawObstacle(dst *core.Screen, o *Obstacle) {
	x0 := cx(dst, o.X)
	x1 := core.Max(x0+1, cx(dst, o.X+o.W))
	y0 := cy(dst, o.Y)
	y1 := core.Max(y0+1, cy(dst, o.Y+o.H))

	switch o.Variant {
	case VariantCactusSmall:
		dst.FillRect(x0, y0, x1-x0, y1-y0, '▓', cactusColor)

	case VariantCactusLarge:
		dst.FillRect(x0, y0, x1-x0, y1-y0, '▓', cactusDark)
		// Arms start a third of the way down on wide enough cacti.
		if x1-x0 >= 3 {
			armY := y0 + (y1-y0)/3
			dst.SetFg(x0, armY, '▙', cactusDark)
			dst.SetFg(x1-1, armY, '▟', cactusDark)
		}

	case VariantRock:
		for x := x0; x < x1; x++ {
			dst.SetFg(x, y0, '▄', rockColor)
		}
		dst.FillRect(x0, y0+1, x1-x0, y1-y0-1, '█', rockColor)

	case VariantPteroLow, VariantPteroHigh:
		body := y1 - 1
		for x := x0; x < x1; x++ {
			dst.SetFg(x, body, '▀', pteroColor)
		}
		dst.SetFg(x0, body, '◄', pteroColor)
		// Wing flaps on the world clock.
		mid := (x0 + x1) / 2
		if math.Sin(g.world.FrameCount*0.4) > 0 {
			dst.SetFg(mid, y0, '▴', pteroColor)
		} else {
			dst.SetFg(mid, body, '▾', pteroColor)
		}

	case VariantLandmark:
		dst.FillRect(x0, y0, x1-x0, y1-y0, '█', landmarkColor)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if (x+y)%3 == 0 {
					dst.SetFg(x, y, '░', landmarkColor)
				}
			}
		}
		for x := x0; x < x1; x++ {
			dst.SetFg(x, y0, '▲', landmarkColor)
		}
	}
}

// drawParticles paints live pool slots; alpha is the remaining life, faked
// in cells by blending the particle color toward the sky.
func (g *Game) drawParticles(dst *core.Screen, sky core.Color) {
	for i := range g.world.Particles {
		p := &g.world.Particles[i]
		if !p.Active {
			continue
		}
		alpha := core.ClampF(p.Life, 0, 1)
		fg := sky.Lerp(p.Color, alpha)
		r := '·'
		if p.Size >= 2 {
			r = '∘'
		}
		dst.SetFg(cx(dst, p.X), cy(dst, p.Y), r, fg)
	}
}

// drawPlayer paints the dino. Limbs are posed by a continuous sine swing of
// the animation counter rather than a two-frame cycle, so leg travel stays
// smooth at any tick rate.
func (g *Game) drawPlayer(dst *core.Screen) {
	p := &g.world.Player
	x0 := cx(dst, p.X)
	x1 := core.Max(x0+3, cx(dst, p.X+p.W))
	y0 := cy(dst, p.Y)
	y1 := core.Max(y0+3, cy(dst, p.Y+p.H))
	cols := x1 - x0

	headBottom := y0 + core.Max(1, (y1-y0)/4)

	// Head sits on the right; eye in its top corner.
	for y := y0; y < headBottom; y++ {
		for x := x0 + cols/3; x < x1; x++ {
			dst.SetFg(x, y, '█', playerColor)
		}
	}
	dst.SetFg(x1-1, y0, '▒', playerDark)

	// Torso with the tail nub on the left.
	for y := headBottom; y < y1-1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetFg(x, y, '█', playerColor)
		}
	}
	dst.SetFg(x0, headBottom, '▙', playerColor)

	// Legs: swing in [-1, 1] shifts foot placement through three positions.
	swing := math.Sin(p.Frame * 0.6)
	if p.Jumping {
		dst.SetFg(x0+1, y1-1, '▔', playerColor)
		dst.SetFg(x1-2, y1-1, '▔', playerColor)
		return
	}
	off := int(math.Round(swing))
	dst.SetFg(x0+1+off, y1-1, '╱', playerColor)
	dst.SetFg(x1-2-off, y1-1, '╲', playerColor)
}

// drawHUD shows the high score and current score, dark on a bright sky and
// light on a dark one.
func (g *Game) drawHUD(dst *core.Screen, sky core.Color) {
	state := g.State()
	text := fmt.Sprintf("HI %05d  %05d", state.HighScore, state.Score)

	fg := core.ColorWhite
	if luminance(sky) > 128 {
		fg = core.NewColor(0x33, 0x33, 0x33)
	}
	dst.DrawTextFg(dst.Width()-len(text)-2, 0, text, fg)
}

// luminance approximates perceived brightness of a color.
func luminance(c core.Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorWhite)
	dst.FillBg(boxX, boxY, boxW, boxH, core.ColorBlack)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
