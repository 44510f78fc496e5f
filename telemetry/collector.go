// Package telemetry tracks gameplay statistics over fixed windows and
// writes them to structured output for offline analysis.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/chroma/events"
)

// TickSample is the per-tick snapshot the simulation feeds the collector.
type TickSample struct {
	Tick       uint64
	SimTime    float64
	Level      int
	Score      int
	Collected  int
	Health     float64
	Completion float64
}

// Collector accumulates event counts and per-tick samples within a window
// and produces WindowStats. It listens on the event bus for the gameplay
// counters and receives tick samples directly from the simulation step.
type Collector struct {
	windowTicks uint64

	windowStart uint64
	last        TickSample
	startScore  int

	healthSamples []float64

	absorbed   int
	hazardHits int
	powerUps   int
	transmutes int
	specials   int
	recipes    int
}

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: uint64(windowTicks)}
}

// Attach subscribes the collector's event counters to a bus.
func (c *Collector) Attach(bus *events.Bus) {
	bus.Subscribe(events.EssenceAbsorbed, func(events.Event) { c.absorbed++ })
	bus.Subscribe(events.HazardHit, func(events.Event) { c.hazardHits++ })
	bus.Subscribe(events.PowerUpCollected, func(events.Event) { c.powerUps++ })
	bus.Subscribe(events.ElementTransmuted, func(events.Event) { c.transmutes++ })
	bus.Subscribe(events.SpecialUsed, func(events.Event) { c.specials++ })
	bus.Subscribe(events.RecipeCompleted, func(events.Event) { c.recipes++ })
}

// RecordTick stores one simulation tick's sample.
func (c *Collector) RecordTick(s TickSample) {
	if len(c.healthSamples) == 0 {
		c.windowStart = s.Tick
		c.startScore = s.Score
	}
	c.last = s
	c.healthSamples = append(c.healthSamples, s.Health)
}

// ShouldFlush reports whether the current window is full.
func (c *Collector) ShouldFlush() bool {
	return uint64(len(c.healthSamples)) >= c.windowTicks
}

// Flush produces the window's stats, logs them, and resets for the next
// window. Call after ShouldFlush, or at session end for a partial window.
func (c *Collector) Flush() WindowStats {
	mean, std, min := computeHealthStats(c.healthSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStart,
		WindowEndTick:   c.last.Tick,
		SimTimeSec:      c.last.SimTime,
		Level:           c.last.Level,
		Score:           c.last.Score,
		Collected:       c.last.Collected,
		Completion:      c.last.Completion,
		HealthMean:      mean,
		HealthStd:       std,
		HealthMin:       min,
		Absorbed:        c.absorbed,
		HazardHits:      c.hazardHits,
		PowerUps:        c.powerUps,
		Transmutes:      c.transmutes,
		Specials:        c.specials,
		Recipes:         c.recipes,
		ScoreDelta:      c.last.Score - c.startScore,
	}
	if n := len(c.healthSamples); n > 0 {
		// Per simulated second at the 60 Hz tick rate, over this window only.
		stats.AbsorbRate = float64(c.absorbed) / float64(n) * 60.0
	}

	slog.Info("stats", "window", stats)

	c.healthSamples = c.healthSamples[:0]
	c.absorbed = 0
	c.hazardHits = 0
	c.powerUps = 0
	c.transmutes = 0
	c.specials = 0
	c.recipes = 0
	return stats
}

// Pending reports whether a partial window holds unsampled data.
func (c *Collector) Pending() bool { return len(c.healthSamples) > 0 }
