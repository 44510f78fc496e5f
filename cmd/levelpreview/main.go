// Level layout preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/levelpreview
package main

import (
	"fmt"
	"math"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chroma/chamber"
	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/game"
	"github.com/pthm-cable/chroma/ui"
)

const (
	windowWidth   = 1280
	windowHeight  = 720
	panelWidth    = 280
	previewWidth  = windowWidth - panelWidth - 30
	previewHeight = windowHeight - 20
)

var essencePreviewColors = [...]rl.Color{
	{R: 255, G: 60, B: 60, A: 255},
	{R: 255, G: 150, B: 40, A: 255},
	{R: 60, G: 100, B: 255, A: 255},
	{R: 60, G: 220, B: 255, A: 255},
	{R: 60, G: 200, B: 80, A: 255},
	{R: 150, G: 100, B: 50, A: 255},
	{R: 240, G: 240, B: 240, A: 255},
	{R: 255, G: 230, B: 60, A: 255},
}

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Level Layout Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	seed := float32(7)
	difficulty := float32(cfg.Levels.Difficulty)
	levelIndex := 0
	animating := false
	simTime := float64(0)

	levels := regenerate(int64(seed), int(difficulty))
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			levels = regenerate(int64(seed), int(difficulty))
			if levelIndex >= len(levels) {
				levelIndex = len(levels) - 1
			}
			simTime = 0
			needsRegen = false
		}

		level := levels[levelIndex]
		if animating {
			dt := float64(rl.GetFrameTime())
			level.Update(dt)
			simTime += dt
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 8, G: 8, B: 16, A: 255})

		// Preview area, scaled from arena coordinates.
		scaleX := float32(previewWidth) / float32(cfg.Derived.ArenaW)
		scaleY := float32(previewHeight) / float32(cfg.Derived.ArenaH)
		scale := scaleX
		if scaleY < scale {
			scale = scaleY
		}
		drawLevel(level, float64(scale))
		rl.DrawRectangleLines(10, 10, previewWidth, previewHeight, rl.DarkGray)

		// Control panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Level Layout Preview", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		rl.DrawText(fmt.Sprintf("Level %d: %s", level.Number, level.Name), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newIndex := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"1", fmt.Sprintf("%d", len(levels)),
			float32(levelIndex+1), 1, float32(len(levels)),
		)
		rl.DrawText(fmt.Sprintf("%d", levelIndex+1), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if idx := int(math.Round(float64(newIndex))) - 1; idx != levelIndex {
			levelIndex = idx
			simTime = 0
		}
		panelY += 35

		rl.DrawText("Difficulty (density scaling)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDifficulty := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"1", "5",
			difficulty, 1, 5,
		)
		rl.DrawText(fmt.Sprintf("%.0f", difficulty), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if math.Round(float64(newDifficulty)) != math.Round(float64(difficulty)) {
			difficulty = newDifficulty
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Seed (essence scatter)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth - 80, Height: 20},
			"1", "9999",
			seed, 1, 9999,
		)
		rl.DrawText(fmt.Sprintf("%.0f", seed), int32(panelX+panelWidth-70), int32(panelY+2), 16, rl.RayWhite)
		if math.Round(float64(newSeed)) != math.Round(float64(seed)) {
			seed = newSeed
			needsRegen = true
		}
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = float32(rand.Intn(9999) + 1)
			needsRegen = true
		}
		panelY += 40

		// Level stats
		root := level.Root
		rl.DrawText(fmt.Sprintf("Essences: %d", root.TotalEssences()), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText(fmt.Sprintf("Hazards: %d", len(root.Hazards())), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText(fmt.Sprintf("Power-ups: %d", len(root.PowerUps())), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText(fmt.Sprintf("Recipes: %d", len(level.Recipes)), int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawText(fmt.Sprintf("Sim time: %.1fs", simTime), int32(panelX), int32(panelY), 14, rl.Gray)

		rl.EndDrawing()
	}
}

func regenerate(seed int64, difficulty int) []*game.Level {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(seed))
	return game.GenerateLevels(cfg.Derived.ArenaW, cfg.Derived.ArenaH, difficulty, rng)
}

func drawLevel(level *game.Level, scale float64) {
	level.Root.Walk(func(c *chamber.Chamber) {
		b := c.Bounds()
		x := int32(10 + b.X*scale)
		y := int32(10 + b.Y*scale)
		w := int32(b.W * scale)
		h := int32(b.H * scale)
		rl.DrawRectangle(x, y, w, h, ui.ParseHex(c.Style().Background))
		rl.DrawRectangleLines(x, y, w, h, ui.ParseHex(c.Style().Border))
		rl.DrawText(c.Name(), x+4, y+3, 10, rl.Gray)
	})

	for _, h := range level.Root.Hazards() {
		rl.DrawRectangle(
			int32(10+h.X*scale), int32(10+h.Y*scale),
			int32(h.VisualW()*scale), int32(h.VisualH()*scale),
			rl.Color{R: 200, G: 60, B: 60, A: 200},
		)
	}
	for _, e := range level.Root.Essences() {
		rl.DrawCircle(
			int32(10+e.X*scale), int32(10+e.FloatY()*scale),
			float32(e.VisualRadius()*scale),
			essencePreviewColors[e.Color],
		)
	}
	for _, pu := range level.Root.PowerUps() {
		rl.DrawCircleLines(
			int32(10+pu.X*scale), int32(10+pu.FloatY()*scale),
			float32(pu.VisualRadius()*scale),
			rl.Gold,
		)
	}

	// Spawn marker
	rl.DrawCircleLines(int32(10+level.SpawnX*scale), int32(10+level.SpawnY*scale), 8, rl.SkyBlue)
}

func toggleText(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
