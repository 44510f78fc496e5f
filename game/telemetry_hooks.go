package game

import (
	"log/slog"

	"github.com/pthm-cable/chroma/config"
	"github.com/pthm-cable/chroma/events"
	"github.com/pthm-cable/chroma/telemetry"
)

// EnableTelemetry wires a windowed stats collector and, when om is not
// nil, CSV output for stats and the raw event feed.
func (g *Game) EnableTelemetry(om *telemetry.OutputManager) {
	g.collector = telemetry.NewCollector(config.Cfg().Derived.TicksPerWindow)
	g.collector.Attach(g.bus)
	g.output = om

	if om != nil {
		g.bus.SubscribeAll(func(ev events.Event) {
			if err := om.WriteEvent(ev); err != nil {
				slog.Error("failed to write event", "error", err)
			}
		})
	}
}

// recordTick feeds the collector and flushes full windows.
func (g *Game) recordTick() {
	g.collector.RecordTick(telemetry.TickSample{
		Tick:       g.tick,
		SimTime:    g.gameTime,
		Level:      g.levelIndex + 1,
		Score:      g.player.Score,
		Collected:  g.player.Collected,
		Health:     g.player.Health,
		Completion: g.level.Root.CompletionPercent(),
	})
	if !g.collector.ShouldFlush() {
		return
	}
	stats := g.collector.Flush()
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}

// FlushTelemetry writes any partial window at session end.
func (g *Game) FlushTelemetry() {
	if g.collector == nil || !g.collector.Pending() {
		return
	}
	stats := g.collector.Flush()
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
	}
}
