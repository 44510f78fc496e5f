package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated gameplay statistics for one time window.
type WindowStats struct {
	WindowStartTick uint64  `csv:"-"`
	WindowEndTick   uint64  `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Session position at window end
	Level      int     `csv:"level"`
	Score      int     `csv:"score"`
	Collected  int     `csv:"collected"`
	Completion float64 `csv:"completion"`

	// Health over the window, sampled per tick
	HealthMean float64 `csv:"health_mean"`
	HealthStd  float64 `csv:"health_std"`
	HealthMin  float64 `csv:"health_min"`

	// Event counts during the window
	Absorbed   int `csv:"absorbed"`
	HazardHits int `csv:"hazard_hits"`
	PowerUps   int `csv:"powerups"`
	Transmutes int `csv:"transmutes"`
	Specials   int `csv:"specials"`
	Recipes    int `csv:"recipes"`

	// Derived rates per simulated second
	AbsorbRate float64 `csv:"absorb_rate"`
	ScoreDelta int     `csv:"score_delta"`
}

// computeHealthStats summarizes the per-tick health samples of a window.
func computeHealthStats(samples []float64) (mean, std, min float64) {
	if len(samples) == 0 {
		return 0, 0, 0
	}
	mean = stat.Mean(samples, nil)
	if len(samples) > 1 {
		std = stat.StdDev(samples, nil)
	}
	min = samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
	}
	return mean, std, min
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("level", s.Level),
		slog.Int("score", s.Score),
		slog.Int("collected", s.Collected),
		slog.Float64("completion", s.Completion),
		slog.Float64("health_mean", s.HealthMean),
		slog.Int("absorbed", s.Absorbed),
		slog.Int("hazard_hits", s.HazardHits),
		slog.Int("powerups", s.PowerUps),
		slog.Int("recipes", s.Recipes),
	)
}
