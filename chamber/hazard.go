package chamber

import "math"

// HazardKind identifies a hazard behavior.
type HazardKind uint8

const (
	HazardStatic HazardKind = iota
	HazardPatrol
	HazardRotating
	HazardPulsing
)

// hazardInfo holds the per-kind display name and contact damage.
var hazardInfo = [...]struct {
	name   string
	damage int
}{
	{"Static Barrier", 10},
	{"Patrolling Hazard", 15},
	{"Rotating Spike", 20},
	{"Pulsing Field", 12},
}

func (k HazardKind) String() string { return hazardInfo[k].name }

// Damage returns the contact damage for this hazard kind.
func (k HazardKind) Damage() int { return hazardInfo[k].damage }

const (
	hazardDefaultPatrolSpeed   = 100.0
	hazardDefaultRotationSpeed = 90.0 // degrees per second
	hazardPulseRate            = 2.0
	hazardPulseAmp             = 0.3
)

// Hazard is a damaging obstacle. The shape is fixed at creation; position
// and animation state mutate per kind (patrol motion, rotation, pulse).
type Hazard struct {
	ID   string
	Kind HazardKind
	X, Y float64
	W, H float64

	// Patrol state
	startX, startY float64
	endX, endY     float64
	patrolSpeed    float64
	movingToEnd    bool

	// Rotation state
	Rotation      float64
	rotationSpeed float64

	// Pulse state
	pulsePhase float64
}

// NewHazard creates a hazard of the given kind.
func NewHazard(kind HazardKind, x, y, w, h float64) *Hazard {
	return &Hazard{
		ID:            newID("hazard"),
		Kind:          kind,
		X:             x,
		Y:             y,
		W:             w,
		H:             h,
		startX:        x,
		startY:        y,
		endX:          x,
		endY:          y,
		patrolSpeed:   hazardDefaultPatrolSpeed,
		movingToEnd:   true,
		rotationSpeed: hazardDefaultRotationSpeed,
	}
}

// SetPatrolPath configures the endpoint and speed for a patrolling hazard.
// The current position becomes the patrol start.
func (h *Hazard) SetPatrolPath(endX, endY, speed float64) {
	h.startX = h.X
	h.startY = h.Y
	h.endX = endX
	h.endY = endY
	h.patrolSpeed = speed
}

// SetRotationSpeed sets the spin rate in degrees per second.
func (h *Hazard) SetRotationSpeed(speed float64) {
	h.rotationSpeed = speed
}

// Damage returns the contact damage dealt by this hazard.
func (h *Hazard) Damage() int { return h.Kind.Damage() }

// Name returns the display name of the hazard kind.
func (h *Hazard) Name() string { return h.Kind.String() }

// Update advances the hazard's kind-specific animation.
func (h *Hazard) Update(dt float64) {
	switch h.Kind {
	case HazardPatrol:
		h.updatePatrol(dt)
	case HazardRotating:
		h.Rotation += h.rotationSpeed * dt
		if h.Rotation >= 360 {
			h.Rotation -= 360
		}
	case HazardPulsing:
		h.pulsePhase += dt * hazardPulseRate
	default:
		// Static hazards do not animate.
	}
}

func (h *Hazard) updatePatrol(dt float64) {
	tx, ty := h.endX, h.endY
	if !h.movingToEnd {
		tx, ty = h.startX, h.startY
	}

	dx := tx - h.X
	dy := ty - h.Y
	d := math.Sqrt(dx*dx + dy*dy)

	if d < h.patrolSpeed*dt {
		// Snap to the endpoint and turn around.
		h.X = tx
		h.Y = ty
		h.movingToEnd = !h.movingToEnd
		return
	}
	h.X += (dx / d) * h.patrolSpeed * dt
	h.Y += (dy / d) * h.patrolSpeed * dt
}

// VisualW returns the width with the pulse effect applied (pulsing kind only).
func (h *Hazard) VisualW() float64 {
	if h.Kind == HazardPulsing {
		return h.W * (1 + math.Sin(h.pulsePhase)*hazardPulseAmp)
	}
	return h.W
}

// VisualH returns the height with the pulse effect applied (pulsing kind only).
func (h *Hazard) VisualH() float64 {
	if h.Kind == HazardPulsing {
		return h.H * (1 + math.Sin(h.pulsePhase)*hazardPulseAmp)
	}
	return h.H
}

// OverlapsCircle reports whether the hazard's current visual extent
// overlaps a circle. Collision uses the pulsed size so a pulsing field
// grows and shrinks its dangerous area.
func (h *Hazard) OverlapsCircle(cx, cy, radius float64) bool {
	r := Rect{X: h.X, Y: h.Y, W: h.VisualW(), H: h.VisualH()}
	return r.OverlapsCircle(cx, cy, radius)
}
