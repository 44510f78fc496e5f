package game

import (
	"github.com/pthm-cable/chroma/chamber"
	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/events"
	"github.com/pthm-cable/chroma/player"
)

// Step runs one fixed simulation tick. The phase order is load-bearing for
// determinism: actor, tree, collisions, objectives, completion, death.
func (g *Game) Step(dt float64) {
	if g.state != StatePlaying {
		return
	}

	g.tick++
	g.gameTime += dt
	g.levelTime += dt

	cfg := config.Cfg()

	expired := g.player.Update(dt)
	for _, kind := range expired {
		g.bus.Publish(events.PowerUpExpired, map[string]any{"layer": kind.String()})
	}
	g.player.Clamp(chamber.Rect{W: cfg.Derived.ArenaW, H: cfg.Derived.ArenaH})

	g.level.Update(dt)

	g.processCollisions(dt)
	g.checkRecipes()
	g.checkLevelCompletion()

	if g.collector != nil {
		g.recordTick()
	}

	if !g.player.Alive() && g.state == StatePlaying {
		g.gameOver()
	}
}

// processCollisions resolves the three object kinds against the player in
// a fixed order: essences (magnet pull plus absorption scan), hazards,
// then power-ups.
func (g *Game) processCollisions(dt float64) {
	p := g.player
	abilities := p.Abilities()
	root := g.level.Root

	// Essence pass. The scan visits the tree pre-order; without
	// multi-absorb it stops at the first compatible essence in range, so
	// later essences are neither pulled nor absorbed that tick.
	pullRadius := config.Cfg().Magnet.PullRadius
	var marked []*chamber.Essence
	for _, e := range root.Essences() {
		if e.Collected {
			continue
		}
		if abilities.MagnetStrength > 0 {
			dx := p.X - e.X
			dy := p.Y - e.Y
			if dx*dx+dy*dy < pullRadius*pullRadius {
				e.PullToward(p.X, p.Y, abilities.MagnetStrength, dt)
			}
		}
		if e.InRange(p.X, p.Y, abilities.AbsorptionRange) && p.Element().CanAbsorb(e.Color) {
			marked = append(marked, e)
			if !abilities.MultiAbsorb {
				break
			}
		}
	}
	for _, e := range marked {
		g.absorb(e)
	}

	// Hazard pass. Phasing skips it entirely; otherwise every overlapping
	// hazard registers a hit this tick.
	if !p.Phasing() {
		for _, h := range root.Hazards() {
			if h.OverlapsCircle(p.X, p.Y, p.Radius) {
				g.hitHazard(h)
			}
		}
	}

	// Power-up pass uses the physical radius, not absorption range.
	for _, pu := range root.PowerUps() {
		if pu.Collected {
			continue
		}
		if pu.InRange(p.X, p.Y, p.Radius) {
			g.collectPowerUp(pu)
		}
	}
}

func (g *Game) absorb(e *chamber.Essence) {
	e.Collected = true
	awarded := g.player.Absorb(e)
	if g.fx != nil {
		g.fx.AbsorbBurst(e.X, e.Y, essenceColors[e.Color])
	}
	g.bus.Publish(events.EssenceAbsorbed, map[string]any{
		"color":  e.Color.String(),
		"points": awarded,
		"id":     e.ID,
	})
}

func (g *Game) hitHazard(h *chamber.Hazard) {
	blocked := g.player.Invincible() || g.player.Shielded()
	g.player.TakeDamage(float64(h.Damage()))
	if g.fx != nil && !blocked {
		g.fx.HitSparks(g.player.X, g.player.Y)
	}
	g.bus.Publish(events.HazardHit, map[string]any{
		"hazard":  h.Name(),
		"damage":  h.Damage(),
		"blocked": blocked,
	})
}

func (g *Game) collectPowerUp(pu *chamber.PowerUp) {
	pu.Collected = true
	layer := g.player.ApplyPowerUp(pu.Kind, pu.Duration)
	if g.fx != nil {
		g.fx.PickupGlint(pu.X, pu.Y)
	}
	g.bus.Publish(events.PowerUpCollected, map[string]any{
		"powerup":  pu.Kind.String(),
		"layer":    layer.String(),
		"duration": pu.Duration,
	})
}

// TransmuteTo switches the player's element and publishes the transition.
func (g *Game) TransmuteTo(e player.Element) {
	if g.state != StatePlaying {
		return
	}
	prev := g.player.Element().String()
	if g.player.SwitchElement(e) {
		g.bus.Publish(events.ElementTransmuted, map[string]any{
			"from": prev,
			"to":   e.String(),
		})
	}
}

// UseSpecial fires the active element's special ability if off cooldown.
func (g *Game) UseSpecial() {
	if g.state != StatePlaying {
		return
	}
	if g.player.UseSpecial() {
		g.bus.Publish(events.SpecialUsed, map[string]any{
			"element": g.player.Element().String(),
		})
	}
}

func (g *Game) checkRecipes() {
	for _, r := range g.level.Recipes {
		if r.Completed || !r.Satisfied(g.player.Collected) {
			continue
		}
		r.Completed = true
		g.recipesDone++
		g.player.AddScore(r.Bonus)
		g.bus.Publish(events.RecipeCompleted, map[string]any{
			"recipe": r.Name,
			"bonus":  r.Bonus,
		})
	}
}

func (g *Game) checkLevelCompletion() {
	if !g.level.Completed() {
		return
	}
	g.bus.Publish(events.ChamberCleared, map[string]any{
		"level": g.levelIndex + 1,
		"name":  g.level.Name,
		"score": g.player.Score,
		"time":  g.levelTime,
	})
	if g.levelIndex < len(g.levels)-1 {
		g.loadLevel(g.levelIndex + 1)
	} else {
		g.victory()
	}
}
