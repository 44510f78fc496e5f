package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chroma/camera"
	"github.com/pthm-cable/chroma/chamber"
	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/effects"
	"github.com/pthm-cable/chroma/ui"
)

// essenceColors maps essence color tags to display colors.
var essenceColors = [...]rl.Color{
	{R: 255, G: 60, B: 60, A: 255},   // RED
	{R: 255, G: 150, B: 40, A: 255},  // ORANGE
	{R: 60, G: 100, B: 255, A: 255},  // BLUE
	{R: 60, G: 220, B: 255, A: 255},  // CYAN
	{R: 60, G: 200, B: 80, A: 255},   // GREEN
	{R: 150, G: 100, B: 50, A: 255},  // BROWN
	{R: 240, G: 240, B: 240, A: 255}, // WHITE
	{R: 255, G: 230, B: 60, A: 255},  // YELLOW
}

// powerUpColors maps power-up kinds to display colors.
var powerUpColors = [...]rl.Color{
	{R: 80, G: 220, B: 120, A: 255},  // Speed Boost
	{R: 120, G: 140, B: 230, A: 255}, // Shield
	{R: 220, G: 80, B: 220, A: 255},  // Magnet
	{R: 230, G: 160, B: 60, A: 255},  // Multi-Absorb
	{R: 250, G: 210, B: 70, A: 255},  // Score x2
	{R: 90, G: 210, B: 210, A: 255},  // Range Boost
}

// Draw renders the current frame for the active session state.
func (g *Game) Draw() {
	cfg := config.Cfg()
	if g.renderer == nil {
		g.renderer = ui.NewRenderer()
		g.cam = camera.New(
			cfg.Derived.ScreenW, cfg.Derived.ScreenH,
			float32(cfg.Derived.ArenaW), float32(cfg.Derived.ArenaH),
		)
		g.fx = effects.NewSystem()
	}
	screenW := int32(cfg.Screen.Width)
	screenH := int32(cfg.Screen.Height)

	if g.state == StatePlaying {
		g.cam.Follow(float32(g.player.X), float32(g.player.Y), rl.GetFrameTime())
		if g.player.Dashing() {
			g.fx.DashStreak(g.player.X, g.player.Y, ui.ParseHex(g.player.Element().Hex()))
		}
		g.fx.Update()
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 8, B: 16, A: 255})

	switch g.state {
	case StateMenu:
		g.renderer.DrawMenu(screenW, screenH)
	case StatePlaying:
		g.drawWorld()
		g.renderer.DrawHUD(g.hudSnapshot())
	case StatePaused:
		g.drawWorld()
		g.renderer.DrawHUD(g.hudSnapshot())
		g.renderer.DrawPauseOverlay(screenW, screenH)
	case StateGameOver:
		g.drawWorld()
		g.renderer.DrawGameOver(screenW, screenH, g.player.Score, g.levelIndex+1)
	case StateVictory:
		g.renderer.DrawVictory(screenW, screenH, g.player.Score, g.gameTime)
	}

	rl.EndDrawing()
}

func (g *Game) drawWorld() {
	rl.BeginMode2D(rl.Camera2D{
		Offset: rl.Vector2{X: g.cam.ViewportW / 2, Y: g.cam.ViewportH / 2},
		Target: rl.Vector2{X: g.cam.X, Y: g.cam.Y},
		Zoom:   g.cam.Zoom,
	})

	g.level.Root.Walk(g.drawChamber)

	for _, h := range g.level.Root.Hazards() {
		if g.cam.IsVisible(float32(h.X), float32(h.Y), float32(h.VisualW()+h.VisualH())) {
			drawHazard(h)
		}
	}
	for _, e := range g.level.Root.Essences() {
		if g.cam.IsVisible(float32(e.X), float32(e.Y), float32(e.VisualRadius())*2) {
			drawEssence(e)
		}
	}
	for _, pu := range g.level.Root.PowerUps() {
		if g.cam.IsVisible(float32(pu.X), float32(pu.Y), float32(pu.VisualRadius())*2) {
			drawPowerUp(pu)
		}
	}

	g.fx.Draw()
	g.drawPlayer()

	rl.EndMode2D()
}

func (g *Game) drawChamber(c *chamber.Chamber) {
	b := c.Bounds()
	x, y := int32(b.X), int32(b.Y)
	w, h := int32(b.W), int32(b.H)
	rl.DrawRectangle(x, y, w, h, ui.ParseHex(c.Style().Background))
	rl.DrawRectangleLines(x, y, w, h, ui.ParseHex(c.Style().Border))
	rl.DrawText(c.Name(), x+6, y+4, 10, rl.Color{R: 140, G: 140, B: 170, A: 255})
}

func drawEssence(e *chamber.Essence) {
	if e.Collected {
		return
	}
	color := essenceColors[e.Color]
	radius := float32(e.VisualRadius())
	pos := rl.Vector2{X: float32(e.X), Y: float32(e.FloatY())}

	// Soft glow behind the particle.
	glow := color
	glow.A = 60
	rl.DrawCircleV(pos, radius*1.8, glow)
	rl.DrawCircleV(pos, radius, color)
}

func drawHazard(h *chamber.Hazard) {
	w := float32(h.VisualW())
	ht := float32(h.VisualH())
	danger := rl.Color{R: 200, G: 60, B: 60, A: 200}

	if h.Kind == chamber.HazardRotating {
		// Rotate around the hazard center.
		rec := rl.Rectangle{
			X:      float32(h.X) + w/2,
			Y:      float32(h.Y) + ht/2,
			Width:  w,
			Height: ht,
		}
		rl.DrawRectanglePro(rec, rl.Vector2{X: w / 2, Y: ht / 2}, float32(h.Rotation), danger)
		return
	}
	rl.DrawRectangle(int32(h.X), int32(h.Y), int32(w), int32(ht), danger)
	rl.DrawRectangleLines(int32(h.X), int32(h.Y), int32(w), int32(ht), rl.Red)
}

func drawPowerUp(pu *chamber.PowerUp) {
	if pu.Collected {
		return
	}
	color := powerUpColors[pu.Kind]
	cx := float32(pu.X)
	cy := float32(pu.FloatY())
	r := float32(pu.VisualRadius())

	// Spinning diamond.
	angle := pu.Rotation * math.Pi / 180
	points := make([]rl.Vector2, 4)
	for i := 0; i < 4; i++ {
		a := angle + float64(i)*math.Pi/2
		points[i] = rl.Vector2{
			X: cx + r*float32(math.Cos(a)),
			Y: cy + r*float32(math.Sin(a)),
		}
	}
	rl.DrawTriangle(points[0], points[1], points[2], color)
	rl.DrawTriangle(points[0], points[2], points[3], color)
	rl.DrawCircleLines(int32(cx), int32(cy), r+3, color)
}

func (g *Game) drawPlayer() {
	p := g.player
	pos := rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
	radius := float32(p.Radius)
	color := ui.ParseHex(p.Element().Hex())

	// Invincibility flickers, phasing goes translucent.
	if p.Invincible() && g.tick%8 < 4 {
		color.A = 90
	}
	if p.Phasing() {
		color.A = 120
	}

	rl.DrawCircleV(pos, radius, color)
	rl.DrawCircleLines(int32(p.X), int32(p.Y), radius, rl.White)

	if p.Shielded() {
		rl.DrawCircleLines(int32(p.X), int32(p.Y), radius+6, rl.Color{R: 120, G: 200, B: 120, A: 255})
	}
	if p.Dashing() {
		trail := color
		trail.A = 50
		rl.DrawCircleV(pos, radius*1.5, trail)
	}

	// Absorption range hint.
	rangeColor := color
	rangeColor.A = 30
	rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(p.Abilities().AbsorptionRange), rangeColor)
}

// hudSnapshot flattens the session state for the HUD.
func (g *Game) hudSnapshot() ui.Snapshot {
	p := g.player
	s := ui.Snapshot{
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Score:       p.Score,
		Collected:   p.Collected,
		Level:       g.levelIndex + 1,
		Levels:      len(g.levels),
		LevelName:   g.level.Name,
		Completion:  g.level.Root.CompletionPercent(),
		Element:     p.Element().String(),
		ElementHex:  p.Element().Hex(),
		Cooldown:    p.Cooldown(),
		CooldownMax: p.Element().CooldownMax(),
		Layers:      p.AbilityStack().LayerNames(),
		Phasing:     p.Phasing(),
		Shielded:    p.Shielded(),
		Invincible:  p.Invincible(),
	}
	for _, r := range g.level.Recipes {
		s.Recipes = append(s.Recipes, ui.RecipeLine{
			Name:      r.Name,
			Completed: r.Completed,
			Required:  r.TotalRequired(),
		})
	}
	return s
}
