package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RecipeLine is one objective row in the HUD.
type RecipeLine struct {
	Name      string
	Completed bool
	Required  int
}

// Snapshot is the per-frame HUD state. The game fills one each frame so
// this package never touches simulation types.
type Snapshot struct {
	Health    float64
	MaxHealth float64
	Score     int
	Collected int

	Level      int
	Levels     int
	LevelName  string
	Completion float64

	Element     string
	ElementHex  string
	Cooldown    float64
	CooldownMax float64
	Layers      []string

	Phasing    bool
	Shielded   bool
	Invincible bool

	Recipes []RecipeLine
}

const hudWidth = 300

// DrawHUD draws the status panel in the top-left corner.
func (r *Renderer) DrawHUD(s Snapshot) {
	t := r.Theme
	x := t.Padding
	y := t.Padding

	lines := int32(8 + len(s.Layers) + len(s.Recipes))
	r.DrawPanel(x, y, hudWidth, lines*t.LineHeight+t.Padding*2)

	x += t.Padding
	y += t.Padding

	y = r.DrawLabelValue(x, y, "Level", fmt.Sprintf("%d/%d  %s", s.Level, s.Levels, s.LevelName))
	y = r.DrawHealthBar(x, y, "Health", s.Health, s.MaxHealth, hudWidth-t.Padding)
	y = r.DrawLabelValue(x, y, "Score", fmt.Sprintf("%d", s.Score))
	y = r.DrawLabelValue(x, y, "Essences", fmt.Sprintf("%d  (%.0f%%)", s.Collected, s.Completion))

	elementColor := ParseHex(s.ElementHex)
	rl.DrawText("Element:", x, y, t.FontSize, t.LabelColor)
	rl.DrawText(s.Element, x+t.LabelWidth, y, t.FontSize, elementColor)
	y += t.LineHeight

	y = r.DrawCooldownBar(x, y, "Special", s.Cooldown, s.CooldownMax, hudWidth-t.Padding)

	if s.Phasing || s.Shielded || s.Invincible {
		status := ""
		if s.Phasing {
			status += "PHASING "
		}
		if s.Shielded {
			status += "SHIELDED "
		}
		if s.Invincible {
			status += "INVINCIBLE"
		}
		rl.DrawText(status, x, y, t.FontSize, rl.SkyBlue)
	}
	y += t.LineHeight

	if len(s.Layers) > 0 {
		y = r.DrawSectionHeader(x, y, "Active Effects")
		for _, name := range s.Layers {
			rl.DrawText("  "+name, x, y, t.FontSize, t.ValueColor)
			y += t.LineHeight
		}
	}

	if len(s.Recipes) > 0 {
		y = r.DrawSectionHeader(x, y, "Recipes")
		for _, line := range s.Recipes {
			mark := "[ ]"
			color := t.LabelColor
			if line.Completed {
				mark = "[x]"
				color = t.BarFillHigh
			}
			rl.DrawText(fmt.Sprintf("  %s %s (%d)", mark, line.Name, line.Required), x, y, t.FontSize, color)
			y += t.LineHeight
		}
	}
}

// DrawMenu draws the start screen.
func (r *Renderer) DrawMenu(screenW, screenH int32) {
	r.DrawCenteredText("CHROMA", screenW, screenH/2-80, r.Theme.TitleFontSize, rl.Gold)
	r.DrawCenteredText("Absorb essences matching your element. Clear every chamber.",
		screenW, screenH/2-20, r.Theme.HeaderFontSize, r.Theme.ValueColor)
	r.DrawCenteredText("WASD move | 1-4 transmute | SPACE special | P pause",
		screenW, screenH/2+10, r.Theme.FontSize, r.Theme.LabelColor)
	r.DrawCenteredText("Press ENTER to begin", screenW, screenH/2+60, r.Theme.HeaderFontSize, rl.SkyBlue)
}

// DrawPauseOverlay dims the scene and shows the pause banner.
func (r *Renderer) DrawPauseOverlay(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.OverlayDim)
	r.DrawCenteredText("PAUSED", screenW, screenH/2-20, r.Theme.TitleFontSize, rl.White)
	r.DrawCenteredText("Press P to resume", screenW, screenH/2+30, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawGameOver shows the defeat screen with the final score.
func (r *Renderer) DrawGameOver(screenW, screenH int32, score, level int) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.OverlayDim)
	r.DrawCenteredText("GAME OVER", screenW, screenH/2-60, r.Theme.TitleFontSize, rl.Red)
	r.DrawCenteredText(fmt.Sprintf("Score %d  |  Level %d", score, level),
		screenW, screenH/2, r.Theme.HeaderFontSize, r.Theme.ValueColor)
	r.DrawCenteredText("Press ENTER to try again", screenW, screenH/2+40, r.Theme.FontSize, rl.SkyBlue)
}

// DrawVictory shows the win screen.
func (r *Renderer) DrawVictory(screenW, screenH int32, score int, timeSec float64) {
	rl.DrawRectangle(0, 0, screenW, screenH, r.Theme.OverlayDim)
	r.DrawCenteredText("TRANSMUTATION COMPLETE", screenW, screenH/2-60, r.Theme.TitleFontSize, rl.Gold)
	r.DrawCenteredText(fmt.Sprintf("Score %d  |  %.1fs", score, timeSec),
		screenW, screenH/2, r.Theme.HeaderFontSize, r.Theme.ValueColor)
	r.DrawCenteredText("Press ENTER to play again", screenW, screenH/2+40, r.Theme.FontSize, rl.SkyBlue)
}
