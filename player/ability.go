// Package player implements the orb actor: its ability stack, elemental
// state machine, movement, health, and temporary effects.
package player

import "github.com/pthm-cable/chroma/config"

// LayerKind identifies an ability layer granted by a power-up.
type LayerKind uint8

const (
	LayerSpeedBoost LayerKind = iota
	LayerShield
	LayerMagnet
	LayerMultiAbsorb
	LayerScoreMultiplier
	LayerRangeBoost
)

var layerNames = [...]string{
	"Speed Boost",
	"Shield",
	"Magnet",
	"Multi-Absorb",
	"Score x2",
	"Range Boost",
}

func (k LayerKind) String() string {
	if int(k) < len(layerNames) {
		return layerNames[k]
	}
	return "Unknown"
}

// Abilities is the scalar capability set the rest of the simulation reads.
// Values are produced by folding the active layers over the base set.
type Abilities struct {
	Speed           float64
	AbsorptionRange float64
	Mitigation      float64 // damage reduction percent, 0..90
	ScoreMultiplier float64
	MagnetStrength  float64
	MultiAbsorb     bool
}

// BaseAbilities returns the unmodified capability set from configuration.
func BaseAbilities() Abilities {
	cfg := config.Cfg()
	return Abilities{
		Speed:           cfg.Abilities.Speed,
		AbsorptionRange: cfg.Abilities.AbsorptionRange,
		Mitigation:      cfg.Abilities.Mitigation,
		ScoreMultiplier: cfg.Abilities.ScoreMultiplier,
		MagnetStrength:  cfg.Abilities.MagnetStrength,
	}
}

// Layer is one timed modifier in the ability stack. Remaining < 0 means
// the layer is permanent.
type Layer struct {
	Kind      LayerKind
	Remaining float64
}

// Tick subtracts dt from the layer's remaining duration and reports
// whether the layer has expired. Permanent layers never expire.
func (l *Layer) Tick(dt float64) bool {
	if l.Remaining < 0 {
		return false
	}
	l.Remaining -= dt
	return l.Remaining <= 0
}

// apply folds a single layer's contribution into the capability set.
// The per-field rules are fixed; stacking the same kind twice compounds
// multiplicative fields and re-adds additive ones.
func (k LayerKind) apply(a Abilities) Abilities {
	switch k {
	case LayerSpeedBoost:
		a.Speed *= 1.5
	case LayerShield:
		a.Mitigation += 50
		if a.Mitigation > 90 {
			a.Mitigation = 90
		}
	case LayerMagnet:
		a.MagnetStrength += 150
		a.AbsorptionRange *= 1.5
	case LayerMultiAbsorb:
		a.MultiAbsorb = true
	case LayerScoreMultiplier:
		a.ScoreMultiplier *= 2.0
	case LayerRangeBoost:
		a.AbsorptionRange *= 2.0
	}
	return a
}

// Stack is the actor's runtime-composable ability set: an immutable base
// plus ordered layers. The effective capability set is recomputed by
// folding the layers oldest-first whenever the layer list changes, so
// removing an expired layer yields exactly the set it never touched.
type Stack struct {
	base    Abilities
	layers  []*Layer
	current Abilities
}

// NewStack creates a stack with no active layers.
func NewStack(base Abilities) *Stack {
	return &Stack{base: base, current: base}
}

// Current returns the effective capability set.
func (s *Stack) Current() Abilities { return s.current }

// Base returns the immutable base capability set.
func (s *Stack) Base() Abilities { return s.base }

// Push appends a layer with the given duration and recomputes the
// effective set. Duration < 0 makes the layer permanent.
func (s *Stack) Push(kind LayerKind, duration float64) {
	s.layers = append(s.layers, &Layer{Kind: kind, Remaining: duration})
	s.current = kind.apply(s.current)
}

// Tick advances every layer's timer and prunes the expired ones, rebuilding
// the fold from the base when anything was removed. Returns the kinds that
// expired this tick, in stack order.
func (s *Stack) Tick(dt float64) []LayerKind {
	var expired []LayerKind
	kept := s.layers[:0]
	for _, l := range s.layers {
		if l.Tick(dt) {
			expired = append(expired, l.Kind)
			continue
		}
		kept = append(kept, l)
	}
	if len(expired) > 0 {
		s.layers = kept
		s.rebuild()
	}
	return expired
}

func (s *Stack) rebuild() {
	a := s.base
	for _, l := range s.layers {
		a = l.Kind.apply(a)
	}
	s.current = a
}

// LayerNames returns the active layer names oldest-first, for the HUD.
func (s *Stack) LayerNames() []string {
	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Kind.String()
	}
	return names
}

// Layers returns the active layers oldest-first. The slice is the stack's
// own; callers must not modify it.
func (s *Stack) Layers() []*Layer { return s.layers }
