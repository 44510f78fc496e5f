// Package game ties the simulation together: the session state machine,
// level progression, the fixed-timestep driver, and the per-tick pipeline
// over the player and the chamber tree.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/chroma/camera"
	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/effects"
	"github.com/pthm-cable/chroma/events"
	"github.com/pthm-cable/chroma/player"
	"github.com/pthm-cable/chroma/telemetry"
	"github.com/pthm-cable/chroma/ui"
)

// State is the session state.
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
)

var stateNames = [...]string{"MENU", "PLAYING", "PAUSED", "GAME_OVER", "VICTORY"}

func (s State) String() string { return stateNames[s] }

// Game holds one play session: the player, the generated levels, the
// session clock, and the event bus everything publishes to. All methods
// run on the simulation goroutine.
type Game struct {
	bus *events.Bus
	rng *rand.Rand

	state  State
	player *player.Player

	levels     []*Level
	levelIndex int
	level      *Level

	recipesDone int

	gameTime  float64
	levelTime float64
	tick      uint64

	// Fixed-timestep accumulator state.
	accumulator float64

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	renderer *ui.Renderer
	cam      *camera.Camera
	fx       *effects.System
}

// New creates a session in the menu state. The bus must outlive the game.
func New(bus *events.Bus, seed int64) *Game {
	if seed == 0 {
		seed = rand.Int63()
	}
	return &Game{
		bus: bus,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *Game) State() State           { return g.state }
func (g *Game) Bus() *events.Bus       { return g.bus }
func (g *Game) Player() *player.Player { return g.player }
func (g *Game) Level() *Level          { return g.level }
func (g *Game) LevelIndex() int        { return g.levelIndex }
func (g *Game) TotalLevels() int       { return len(g.levels) }
func (g *Game) GameTime() float64      { return g.gameTime }
func (g *Game) LevelTime() float64     { return g.levelTime }
func (g *Game) Tick() uint64           { return g.tick }
func (g *Game) RecipesCompleted() int  { return g.recipesDone }

// Start begins a fresh session from the menu or a finished game.
func (g *Game) Start() {
	cfg := config.Cfg()

	g.player = player.New(cfg.Derived.ArenaW/2, cfg.Derived.ArenaH/2)
	g.levels = GenerateLevels(cfg.Derived.ArenaW, cfg.Derived.ArenaH, cfg.Levels.Difficulty, g.rng)
	g.gameTime = 0
	g.tick = 0
	g.recipesDone = 0
	g.accumulator = 0

	g.loadLevel(0)
	g.setState(StatePlaying)

	slog.Info("session_start",
		"levels", len(g.levels),
		"difficulty", cfg.Levels.Difficulty,
	)
}

// Pause suspends the simulation; only valid while playing.
func (g *Game) Pause() {
	if g.state == StatePlaying {
		g.setState(StatePaused)
	}
}

// Resume continues a paused session.
func (g *Game) Resume() {
	if g.state == StatePaused {
		g.setState(StatePlaying)
	}
}

// TogglePause flips between playing and paused.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

// Restart abandons the current session and starts a new one.
func (g *Game) Restart() {
	g.Start()
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	prev := g.state
	g.state = s
	g.bus.Publish(events.SessionStateChange, map[string]any{
		"from": prev.String(),
		"to":   s.String(),
	})
}

func (g *Game) loadLevel(index int) {
	g.levelIndex = index
	g.level = g.levels[index]
	g.levelTime = 0

	g.player.X = g.level.SpawnX
	g.player.Y = g.level.SpawnY

	g.bus.Publish(events.LevelStarted, map[string]any{
		"level": index + 1,
		"name":  g.level.Name,
	})
}

func (g *Game) gameOver() {
	g.setState(StateGameOver)
	g.bus.Publish(events.PlayerDied, map[string]any{
		"score": g.player.Score,
		"level": g.levelIndex + 1,
		"time":  g.gameTime,
	})
}

func (g *Game) victory() {
	g.setState(StateVictory)
	g.bus.Publish(events.LevelCompleted, map[string]any{
		"level":   len(g.levels),
		"score":   g.player.Score,
		"time":    g.gameTime,
		"victory": true,
	})
}

// Advance runs the fixed-timestep accumulator: elapsed wall-clock time is
// capped, accumulated, and consumed in whole simulation steps. Returns the
// number of steps executed.
func (g *Game) Advance(elapsed float64) int {
	cfg := config.Cfg()
	if elapsed > cfg.Physics.MaxElapsed {
		elapsed = cfg.Physics.MaxElapsed
	}
	g.accumulator += elapsed

	steps := 0
	for g.accumulator >= cfg.Physics.DT {
		g.Step(cfg.Physics.DT)
		g.accumulator -= cfg.Physics.DT
		steps++
	}
	return steps
}
