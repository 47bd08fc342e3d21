package neural

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/yaricom/goNEAT/v4/experiment"
	"github.com/yaricom/goNEAT/v4/neat"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/sim"
	"github.com/pthm-cable/glide/telemetry"
)

// Train runs the full NEAT experiment: builds the simulation and the seed
// genome, hands the evaluator to the optimizer, and saves the best genome
// found to outDir/best.genome. Cancelling the context stops after the
// in-flight generation.
func Train(ctx context.Context, cfg *config.Config, out *telemetry.OutputManager, seed int64) error {
	opts := BuildOptions(cfg)
	rng := rand.New(rand.NewSource(seed))

	start := NewStartGenome(rng, cfg.Derived.NumInputs, cfg.NEAT.InitialConnectionProb)

	s := sim.New(cfg, seed)
	s.AddField(sim.NewObstacleField(cfg, cfg.Obstacles.MaxConcurrent))

	evaluator := NewEvaluator(cfg, s, out, seed)

	if err := out.WriteConfig(cfg); err != nil {
		return fmt.Errorf("saving effective config: %w", err)
	}

	slog.Info("starting training",
		"pop_size", opts.PopSize,
		"generations", opts.NumGenerations,
		"inputs", cfg.Derived.NumInputs,
		"seed", seed,
	)

	expt := experiment.Experiment{
		Id:     0,
		Trials: make(experiment.Trials, 0, opts.NumRuns),
	}
	if err := expt.Execute(neat.NewContext(ctx, opts), start, evaluator, nil); err != nil {
		return fmt.Errorf("running experiment: %w", err)
	}

	best := evaluator.BestGenome()
	if best == nil {
		return fmt.Errorf("training produced no evaluated genome")
	}
	if out.Dir() != "" {
		path := filepath.Join(out.Dir(), "best.genome")
		if err := SaveGenome(path, best); err != nil {
			return fmt.Errorf("saving best genome: %w", err)
		}
		slog.Info("best genome saved", "path", path)
	}

	return nil
}
