// Package telemetry aggregates per-generation training statistics and
// writes them to structured output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats holds aggregated statistics for one training generation.
type GenerationStats struct {
	Generation int    `csv:"generation"`
	Evaluated  int    `csv:"evaluated"`
	Failed     int    `csv:"failed"` // agents whose decider errored
	TicksRun   uint64 `csv:"ticks_run"`

	BestFitness float64 `csv:"best_fitness"`
	MeanFitness float64 `csv:"mean_fitness"`
	P50Fitness  float64 `csv:"p50_fitness"`
	P90Fitness  float64 `csv:"p90_fitness"`

	BestScore int     `csv:"best_score"`
	MeanScore float64 `csv:"mean_score"`
}

// Summarize computes a generation's statistics from per-agent fitness and
// score samples. failed counts agents eliminated by decider errors.
func Summarize(generation int, fitness []float64, scores []int, ticksRun uint64, failed int) GenerationStats {
	gs := GenerationStats{
		Generation: generation,
		Evaluated:  len(fitness),
		Failed:     failed,
		TicksRun:   ticksRun,
	}
	if len(fitness) == 0 {
		return gs
	}

	sorted := make([]float64, len(fitness))
	copy(sorted, fitness)
	sort.Float64s(sorted)

	gs.BestFitness = sorted[len(sorted)-1]
	gs.MeanFitness = stat.Mean(sorted, nil)
	gs.P50Fitness = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	gs.P90Fitness = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	var scoreSum int
	for _, s := range scores {
		if s > gs.BestScore {
			gs.BestScore = s
		}
		scoreSum += s
	}
	if len(scores) > 0 {
		gs.MeanScore = float64(scoreSum) / float64(len(scores))
	}
	return gs
}

// Log emits the stats as a structured log record.
func (gs GenerationStats) Log() {
	slog.Info("generation complete",
		"generation", gs.Generation,
		"evaluated", gs.Evaluated,
		"failed", gs.Failed,
		"ticks_run", gs.TicksRun,
		"best_fitness", gs.BestFitness,
		"mean_fitness", gs.MeanFitness,
		"best_score", gs.BestScore,
		"mean_score", gs.MeanScore,
	)
}
