package player

import (
	"math"

	"github.com/pthm-cable/chroma/chamber"
	"github.com/pthm-cable/chroma/config"
)

// Player is the orb actor. It owns the elemental state, the ability stack,
// movement intent, health, score, and the independent timers for temporary
// effects. All mutation happens on the simulation thread.
type Player struct {
	ID     string
	X, Y   float64
	Radius float64

	Health    float64
	MaxHealth float64
	Score     int
	Collected int

	element  Element
	previous string
	cooldown float64
	stack    *Stack

	// Movement intent, set by the input layer once per tick.
	moveUp, moveDown, moveLeft, moveRight bool

	// Independent temporary-effect timers. Zero means inactive.
	tempSpeedMult  float64
	tempSpeedTime  float64
	phaseTime      float64
	shieldTime     float64
	invincibleTime float64

	// Dash state. A dash overrides normal movement until the remaining
	// distance is consumed.
	dashDX, dashDY float64
	dashRemaining  float64
}

// New creates a player at the given spawn point in the Fire state.
func New(x, y float64) *Player {
	cfg := config.Cfg()
	return &Player{
		ID:            "player-1",
		X:             x,
		Y:             y,
		Radius:        cfg.Player.Radius,
		Health:        cfg.Player.MaxHealth,
		MaxHealth:     cfg.Player.MaxHealth,
		element:       Fire,
		stack:         NewStack(BaseAbilities()),
		tempSpeedMult: 1,
	}
}

func (p *Player) Element() Element        { return p.element }
func (p *Player) PreviousElement() string { return p.previous }
func (p *Player) Cooldown() float64       { return p.cooldown }
func (p *Player) Abilities() Abilities    { return p.stack.Current() }
func (p *Player) AbilityStack() *Stack    { return p.stack }
func (p *Player) Phasing() bool           { return p.phaseTime > 0 }
func (p *Player) Shielded() bool          { return p.shieldTime > 0 }
func (p *Player) Invincible() bool        { return p.invincibleTime > 0 }
func (p *Player) Dashing() bool           { return p.dashRemaining > 0 }
func (p *Player) Alive() bool             { return p.Health > 0 }
func (p *Player) SpeedBurstMult() float64 { return p.tempSpeedMult }

// SetMove records the directional intent for the next update.
func (p *Player) SetMove(up, down, left, right bool) {
	p.moveUp, p.moveDown, p.moveLeft, p.moveRight = up, down, left, right
}

// SwitchElement replaces the active elemental state. Switching to the
// already-active element is a no-op and reports false; otherwise the new
// state's cooldown is reset, the outgoing state's name is recorded, and
// true is returned so the caller can emit a transmute event.
func (p *Player) SwitchElement(e Element) bool {
	if e == p.element {
		return false
	}
	p.previous = p.element.String()
	p.element = e
	p.cooldown = 0
	return true
}

// UseSpecial triggers the active element's special ability. Reports false
// while the ability is still on cooldown; that is a not-ready signal for
// the caller to surface, not an error.
func (p *Player) UseSpecial() bool {
	if p.cooldown > 0 {
		return false
	}
	switch p.element {
	case Fire:
		p.tempSpeedMult = fireBurstMult
		p.tempSpeedTime = fireBurstDuration
	case Water:
		p.phaseTime = waterPhaseTime
	case Earth:
		p.shieldTime = earthShieldTime
	case Air:
		// Dash follows this tick's movement intent, +X when stationary.
		dx, dy := p.moveDir()
		if dx == 0 && dy == 0 {
			dx = 1
		}
		p.dashDX = dx
		p.dashDY = dy
		p.dashRemaining = airDashDistance
	}
	p.cooldown = p.element.CooldownMax()
	return true
}

// Update advances the cooldown, the temporary-effect timers, the ability
// layers, and movement. Position clamping to the arena happens in the
// simulation step, not here.
func (p *Player) Update(dt float64) []LayerKind {
	if p.cooldown > 0 {
		p.cooldown -= dt
	}

	if p.tempSpeedTime > 0 {
		p.tempSpeedTime -= dt
		if p.tempSpeedTime <= 0 {
			p.tempSpeedMult = 1
		}
	}
	if p.phaseTime > 0 {
		p.phaseTime -= dt
	}
	if p.shieldTime > 0 {
		p.shieldTime -= dt
	}
	if p.invincibleTime > 0 {
		p.invincibleTime -= dt
	}

	expired := p.stack.Tick(dt)

	if p.dashRemaining > 0 {
		p.advanceDash(dt)
	} else {
		p.advanceMovement(dt)
	}
	return expired
}

func (p *Player) advanceDash(dt float64) {
	step := config.Cfg().Player.DashSpeed * dt
	if step > p.dashRemaining {
		step = p.dashRemaining
	}
	p.X += p.dashDX * step
	p.Y += p.dashDY * step
	p.dashRemaining -= step
}

func (p *Player) advanceMovement(dt float64) {
	dx, dy := p.moveDir()
	if dx == 0 && dy == 0 {
		return
	}

	speed := p.stack.Current().Speed * p.element.SpeedMultiplier() * p.tempSpeedMult
	p.X += dx * speed * dt
	p.Y += dy * speed * dt
}

// moveDir returns the normalized movement intent, or (0, 0) when no
// direction is held. Normalized so diagonals are not faster.
func (p *Player) moveDir() (dx, dy float64) {
	if p.moveUp {
		dy -= 1
	}
	if p.moveDown {
		dy += 1
	}
	if p.moveLeft {
		dx -= 1
	}
	if p.moveRight {
		dx += 1
	}
	if dx == 0 && dy == 0 {
		return 0, 0
	}
	mag := math.Sqrt(dx*dx + dy*dy)
	return dx / mag, dy / mag
}

// Clamp constrains the position so the whole orb stays inside the bounds.
func (p *Player) Clamp(bounds chamber.Rect) {
	p.X = clamp(p.X, bounds.X+p.Radius, bounds.X+bounds.W-p.Radius)
	p.Y = clamp(p.Y, bounds.Y+p.Radius, bounds.Y+bounds.H-p.Radius)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TakeDamage applies hazard damage through the mitigation and protection
// rules: a timer-based shield or invincibility window blocks everything;
// otherwise the ability stack's mitigation percentage reduces the amount,
// health floors at zero, and a fresh invincibility window starts. Reports
// whether this hit killed the player.
func (p *Player) TakeDamage(amount float64) bool {
	if p.invincibleTime > 0 || p.shieldTime > 0 {
		return false
	}
	effective := amount * (1 - p.stack.Current().Mitigation/100)
	p.Health -= effective
	if p.Health < 0 {
		p.Health = 0
	}
	p.invincibleTime = config.Cfg().Player.InvincibilityTime
	return p.Health == 0
}

// Heal restores health up to the maximum.
func (p *Player) Heal(amount float64) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddScore applies the stack's score multiplier, floors to an integer, and
// returns the awarded amount.
func (p *Player) AddScore(points int) int {
	awarded := int(float64(points) * p.stack.Current().ScoreMultiplier)
	p.Score += awarded
	return awarded
}

// Absorb records a collected essence and awards its points.
func (p *Player) Absorb(e *chamber.Essence) int {
	p.Collected++
	return p.AddScore(e.PointValue)
}

// ApplyPowerUp pushes the ability layer matching a power-up kind with the
// pickup's duration.
func (p *Player) ApplyPowerUp(kind chamber.PowerUpKind, duration float64) LayerKind {
	layer := layerForPowerUp(kind)
	p.stack.Push(layer, duration)
	return layer
}

func layerForPowerUp(kind chamber.PowerUpKind) LayerKind {
	switch kind {
	case chamber.PowerSpeedBoost:
		return LayerSpeedBoost
	case chamber.PowerShield:
		return LayerShield
	case chamber.PowerMagnet:
		return LayerMagnet
	case chamber.PowerMultiAbsorb:
		return LayerMultiAbsorb
	case chamber.PowerScoreMultiplier:
		return LayerScoreMultiplier
	default:
		return LayerRangeBoost
	}
}
