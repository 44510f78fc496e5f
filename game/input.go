package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/player"
)

// Intent is one tick's worth of abstract commands. The graphical frontend
// fills it from the keyboard; headless drivers construct it directly.
type Intent struct {
	Up, Down, Left, Right bool

	Transmute    player.Element
	HasTransmute bool

	Special bool
}

// Apply feeds an intent into the session for the next step.
func (g *Game) Apply(in Intent) {
	if g.state != StatePlaying {
		return
	}
	g.player.SetMove(in.Up, in.Down, in.Left, in.Right)
	if in.HasTransmute {
		g.TransmuteTo(in.Transmute)
	}
	if in.Special {
		g.UseSpecial()
	}
}

// handleInput translates raylib keyboard state into session commands.
func (g *Game) handleInput() {
	switch g.state {
	case StateMenu:
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.Start()
		}
		return
	case StateGameOver, StateVictory:
		if rl.IsKeyPressed(rl.KeyEnter) {
			g.Restart()
		}
		return
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.TogglePause()
	}
	if g.state != StatePlaying {
		return
	}

	in := Intent{
		Up:    rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
	}

	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		in.Transmute, in.HasTransmute = player.Fire, true
	case rl.IsKeyPressed(rl.KeyTwo):
		in.Transmute, in.HasTransmute = player.Water, true
	case rl.IsKeyPressed(rl.KeyThree):
		in.Transmute, in.HasTransmute = player.Earth, true
	case rl.IsKeyPressed(rl.KeyFour):
		in.Transmute, in.HasTransmute = player.Air, true
	}

	in.Special = rl.IsKeyPressed(rl.KeySpace)

	g.Apply(in)
}

// Update runs one graphical frame: input, then as many fixed steps as the
// frame time requires.
func (g *Game) Update() {
	g.handleInput()
	g.Advance(float64(rl.GetFrameTime()))
}

// UpdateHeadless runs exactly one fixed step with the current intent.
func (g *Game) UpdateHeadless() {
	g.Step(config.Cfg().Physics.DT)
}
