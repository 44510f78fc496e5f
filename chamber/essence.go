// Package chamber implements the spatial level structure: a tree of
// chambers holding essences, hazards, and power-ups.
package chamber

import (
	"fmt"
	"math"
	"math/rand"
	"sync/atomic"
)

// nextID is the process-wide object ID counter.
var nextID atomic.Uint64

// newID returns a unique object identifier with the given prefix.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%04d", prefix, nextID.Add(1))
}

// Color identifies an essence color tag. Each elemental state can absorb
// exactly two of the eight colors.
type Color uint8

const (
	Red Color = iota
	Orange
	Blue
	Cyan
	Green
	Brown
	White
	Yellow
)

var colorNames = [...]string{"RED", "ORANGE", "BLUE", "CYAN", "GREEN", "BROWN", "WHITE", "YELLOW"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "UNKNOWN"
}

// Animation rates shared by all essences.
const (
	essenceRadius    = 12.0
	essencePulseRate = 3.0
	essenceFloatRate = 2.0
	essencePulseAmp  = 3.0
	essenceFloatAmp  = 5.0
)

// Essence is a collectible particle. Its color determines which elemental
// state can absorb it. Position is mutable (magnet pull); everything else
// is fixed at creation except the collected flag.
type Essence struct {
	ID         string
	Color      Color
	X, Y       float64
	Radius     float64
	PointValue int
	Collected  bool

	pulsePhase float64
	floatPhase float64
}

// NewEssence creates an essence particle at the given position.
func NewEssence(color Color, x, y float64, pointValue int) *Essence {
	return &Essence{
		ID:         newID("essence"),
		Color:      color,
		X:          x,
		Y:          y,
		Radius:     essenceRadius,
		PointValue: pointValue,
		pulsePhase: rand.Float64() * 2 * math.Pi,
		floatPhase: rand.Float64() * 2 * math.Pi,
	}
}

// Update advances the pulse and float animation phases.
func (e *Essence) Update(dt float64) {
	e.pulsePhase += dt * essencePulseRate
	e.floatPhase += dt * essenceFloatRate
}

// VisualRadius returns the radius with the pulse effect applied.
func (e *Essence) VisualRadius() float64 {
	return e.Radius + math.Sin(e.pulsePhase)*essencePulseAmp
}

// FloatY returns the Y position with the floating animation offset.
func (e *Essence) FloatY() float64 {
	return e.Y + math.Sin(e.floatPhase)*essenceFloatAmp
}

// InRange reports whether a point is within collection range. The essence's
// own radius extends the range.
func (e *Essence) InRange(px, py, rng float64) bool {
	return dist(e.X, e.Y, px, py) <= rng+e.Radius
}

// PullToward moves the essence toward a point at the given speed (magnet
// effect). A collected essence is never pulled.
func (e *Essence) PullToward(tx, ty, speed, dt float64) {
	dx := tx - e.X
	dy := ty - e.Y
	d := math.Sqrt(dx*dx + dy*dy)
	if d > 0 {
		e.X += (dx / d) * speed * dt
		e.Y += (dy / d) * speed * dt
	}
}
