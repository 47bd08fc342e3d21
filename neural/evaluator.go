package neural

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/yaricom/goNEAT/v4/experiment"
	"github.com/yaricom/goNEAT/v4/neat/genetics"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/population"
	"github.com/pthm-cable/glide/sim"
	"github.com/pthm-cable/glide/telemetry"
)

// Evaluator scores one NEAT population per generation by running every
// genome's policy through the simulation. It implements
// experiment.GenerationEvaluator, so the optimizer is the caller: it hands
// the population in and reads fitness back, and nothing here reaches into
// optimizer internals beyond genome handles.
type Evaluator struct {
	cfg     *config.Config
	sim     *sim.Simulation
	manager *population.Manager
	output  *telemetry.OutputManager

	baseSeed int64

	bestFitness float64
	bestGenome  *genetics.Genome
}

// NewEvaluator creates an evaluator running against the given simulation.
func NewEvaluator(cfg *config.Config, s *sim.Simulation, out *telemetry.OutputManager, baseSeed int64) *Evaluator {
	return &Evaluator{
		cfg:      cfg,
		sim:      s,
		manager:  population.NewManager(cfg, s),
		output:   out,
		baseSeed: baseSeed,
	}
}

// GenerationEvaluate evaluates all organisms of the population against a
// fresh obstacle sequence and writes fitness back onto each organism.
func (e *Evaluator) GenerationEvaluate(ctx context.Context, pop *genetics.Population, epoch *experiment.Generation) error {
	// Each generation gets its own deterministic obstacle sequence so a
	// run is reproducible from the base seed alone.
	e.sim.Reseed(e.baseSeed + int64(epoch.Id))

	agents := make([]population.Agent, 0, len(pop.Organisms))
	byID := make(map[int]*genetics.Organism, len(pop.Organisms))
	for _, org := range pop.Organisms {
		policy, err := NewPolicy(org.Genotype)
		if err != nil {
			// A malformed genome is fatal to that one candidate only; it
			// takes the standard collision penalty and sits the
			// generation out.
			slog.Warn("genome rejected", "genome", org.Genotype.Id, "error", err)
			org.Fitness = -e.cfg.Fitness.CollisionPenalty
			continue
		}
		id := org.Genotype.Id
		if _, dup := byID[id]; dup {
			return fmt.Errorf("duplicate genome id %d in population", id)
		}
		byID[id] = org
		agents = append(agents, population.Agent{ID: id, Decider: policy})
	}

	results := e.manager.EvaluateGeneration(ctx, agents)

	fitness := make([]float64, 0, len(results))
	scores := make([]int, 0, len(results))
	var ticksRun uint64
	failed := 0
	for id, res := range results {
		org := byID[id]
		org.Fitness = res.Fitness

		fitness = append(fitness, res.Fitness)
		scores = append(scores, res.Score)
		if res.TicksAlive > ticksRun {
			ticksRun = res.TicksAlive
		}
		if res.Err != nil {
			failed++
		}

		if e.bestGenome == nil || res.Fitness > e.bestFitness {
			e.bestFitness = res.Fitness
			e.bestGenome = org.Genotype
		}
	}

	epoch.FillPopulationStatistics(pop)

	stats := telemetry.Summarize(epoch.Id, fitness, scores, ticksRun, failed)
	stats.Log()
	if err := e.output.WriteGeneration(stats); err != nil {
		return fmt.Errorf("recording generation %d: %w", epoch.Id, err)
	}

	if every := e.cfg.NEAT.CheckpointEvery; every > 0 && (epoch.Id+1)%every == 0 {
		if err := e.checkpoint(epoch.Id); err != nil {
			return err
		}
	}

	return nil
}

// BestGenome returns the fittest genome seen across all generations so
// far, or nil before the first evaluation.
func (e *Evaluator) BestGenome() *genetics.Genome {
	return e.bestGenome
}

// checkpoint dumps the best genome so far to the output directory.
func (e *Evaluator) checkpoint(generation int) error {
	if e.bestGenome == nil || e.output.Dir() == "" {
		return nil
	}
	path := filepath.Join(e.output.Dir(), fmt.Sprintf("best_gen_%04d.genome", generation))
	if err := SaveGenome(path, e.bestGenome); err != nil {
		return fmt.Errorf("checkpointing generation %d: %w", generation, err)
	}
	slog.Info("checkpoint written", "generation", generation, "path", path, "best_fitness", e.bestFitness)
	return nil
}
