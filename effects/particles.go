// Package effects runs the visual feedback particles: absorption bursts,
// hazard sparks, and pickup glints. Purely cosmetic, so the simulation
// calls into it nil-safely and headless runs skip it entirely.
package effects

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleAbsorb ParticleType = iota
	ParticleHit
	ParticlePickup
	ParticleDash
)

// Particle represents a visual feedback particle.
type Particle struct {
	X, Y       float32
	VelX, VelY float32
	Life       int32
	MaxLife    int32
	Type       ParticleType
	Size       float32
	Color      rl.Color
}

// System manages effect particles for visual feedback.
type System struct {
	Particles    []Particle
	maxParticles int
}

// NewSystem creates a new particle system.
func NewSystem() *System {
	return &System{
		Particles:    make([]Particle, 0, 500),
		maxParticles: 500,
	}
}

// Update processes all particles. Runs once per rendered frame.
func (s *System) Update() {
	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life--
		if p.Life <= 0 {
			continue
		}

		// Apply physics based on type
		switch p.Type {
		case ParticleAbsorb:
			// Drift toward where the orb was
			p.VelY -= 0.01
		case ParticleHit:
			// Sparks fall
			p.VelY += 0.03
		case ParticlePickup:
			// Float upward
			p.VelY -= 0.02
		}

		// Drag
		p.VelX *= 0.95
		p.VelY *= 0.95

		// Update position
		p.X += p.VelX
		p.Y += p.VelY

		// Keep particle
		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// AbsorbBurst emits a ring of particles in the essence's color.
func (s *System) AbsorbBurst(x, y float64, color rl.Color) {
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		s.emit(Particle{
			X:       float32(x),
			Y:       float32(y),
			VelX:    float32(math.Cos(angle)) * (1 + rand.Float32()),
			VelY:    float32(math.Sin(angle)) * (1 + rand.Float32()),
			Life:    40,
			MaxLife: 40,
			Type:    ParticleAbsorb,
			Size:    3 + rand.Float32()*2,
			Color:   color,
		})
	}
}

// HitSparks emits red sparks where the orb touched a hazard.
func (s *System) HitSparks(x, y float64) {
	for i := 0; i < 12; i++ {
		s.emit(Particle{
			X:       float32(x),
			Y:       float32(y),
			VelX:    (rand.Float32() - 0.5) * 6,
			VelY:    -rand.Float32() * 4,
			Life:    30,
			MaxLife: 30,
			Type:    ParticleHit,
			Size:    2 + rand.Float32()*2,
			Color:   rl.Color{R: 255, G: 80, B: 60, A: 255},
		})
	}
}

// PickupGlint emits gold motes for a collected power-up.
func (s *System) PickupGlint(x, y float64) {
	for i := 0; i < 6; i++ {
		s.emit(Particle{
			X:       float32(x) + (rand.Float32()-0.5)*20,
			Y:       float32(y),
			VelX:    (rand.Float32() - 0.5) * 2,
			VelY:    -1 - rand.Float32(),
			Life:    50,
			MaxLife: 50,
			Type:    ParticlePickup,
			Size:    2 + rand.Float32()*2,
			Color:   rl.Gold,
		})
	}
}

// DashStreak emits a short trail particle behind a dashing orb.
func (s *System) DashStreak(x, y float64, color rl.Color) {
	s.emit(Particle{
		X:       float32(x),
		Y:       float32(y),
		Life:    20,
		MaxLife: 20,
		Type:    ParticleDash,
		Size:    5,
		Color:   color,
	})
}

func (s *System) emit(p Particle) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	s.Particles = append(s.Particles, p)
}

// Draw renders all particles with a life-ratio fade.
func (s *System) Draw() {
	for i := range s.Particles {
		p := &s.Particles[i]

		lifeRatio := float32(p.Life) / float32(p.MaxLife)

		color := p.Color
		color.A = uint8(lifeRatio * 200)

		size := p.Size * lifeRatio
		if size < 0.5 {
			size = 0.5
		}
		rl.DrawCircle(int32(p.X), int32(p.Y), size, color)
	}
}
