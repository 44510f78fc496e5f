package chamber

import (
	"math"
	"math/rand"
)

// PowerUpKind identifies which ability layer a power-up grants.
type PowerUpKind uint8

const (
	PowerSpeedBoost PowerUpKind = iota
	PowerShield
	PowerMagnet
	PowerMultiAbsorb
	PowerScoreMultiplier
	PowerRangeBoost
)

var powerUpNames = [...]string{"Speed Boost", "Shield", "Magnet", "Multi-Absorb", "Score x2", "Range Boost"}

func (k PowerUpKind) String() string {
	if int(k) < len(powerUpNames) {
		return powerUpNames[k]
	}
	return "Unknown"
}

const (
	powerUpRadius    = 18.0
	powerUpSpinRate  = 60.0 // degrees per second
	powerUpPulseRate = 4.0
	powerUpPulseAmp  = 4.0
	powerUpFloatRate = 2.0
	powerUpFloatAmp  = 8.0
)

// PowerUp is a consumable pickup. Collecting it pushes the corresponding
// ability layer onto the player's stack with the pickup's duration.
type PowerUp struct {
	ID        string
	Kind      PowerUpKind
	X, Y      float64
	Radius    float64
	Duration  float64 // Seconds granted to the ability layer
	Collected bool

	Rotation   float64
	pulsePhase float64
	floatPhase float64
}

// NewPowerUp creates a power-up pickup at the given position.
func NewPowerUp(kind PowerUpKind, x, y, duration float64) *PowerUp {
	return &PowerUp{
		ID:         newID("powerup"),
		Kind:       kind,
		X:          x,
		Y:          y,
		Radius:     powerUpRadius,
		Duration:   duration,
		pulsePhase: rand.Float64() * 2 * math.Pi,
		floatPhase: rand.Float64() * 2 * math.Pi,
	}
}

// Update advances the spin, pulse, and float animations.
func (p *PowerUp) Update(dt float64) {
	p.Rotation += dt * powerUpSpinRate
	if p.Rotation >= 360 {
		p.Rotation -= 360
	}
	p.pulsePhase += dt * powerUpPulseRate
	p.floatPhase += dt * powerUpFloatRate
}

// VisualRadius returns the radius with the pulse effect applied.
func (p *PowerUp) VisualRadius() float64 {
	return p.Radius + math.Sin(p.pulsePhase)*powerUpPulseAmp
}

// FloatY returns the Y position with the floating animation offset.
func (p *PowerUp) FloatY() float64 {
	return p.Y + math.Sin(p.floatPhase)*powerUpFloatAmp
}

// InRange reports whether a point is within pickup range. Power-ups are
// collected by physical contact, not absorption range.
func (p *PowerUp) InRange(px, py, rng float64) bool {
	return dist(p.X, p.Y, px, py) <= rng+p.Radius
}
