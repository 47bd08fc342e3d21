// Package neural wraps the NEAT optimizer: policy networks built from
// genomes, start genome construction, genome persistence, and the
// generation evaluator the optimizer drives. The simulation core never
// imports this package; genomes and networks stay opaque to it.
package neural

import (
	"github.com/yaricom/goNEAT/v4/neat"

	"github.com/pthm-cable/glide/config"
)

// BuildOptions assembles the full NEAT option set from the config subset
// we expose via YAML. The remaining rates are fixed at values tuned for
// this task.
func BuildOptions(cfg *config.Config) *neat.Options {
	return &neat.Options{
		// Trait mutation
		TraitParamMutProb:  0.5,
		TraitMutationPower: 1.0,

		// Weight mutation
		WeightMutPower: 2.5,

		// Structural mutation rates
		MutateAddNodeProb:      0.03,
		MutateAddLinkProb:      0.05,
		MutateToggleEnableProb: 0.01,

		// Weight mutation probability
		MutateLinkWeightsProb: 0.8,
		MutateOnlyProb:        0.25,
		MutateRandomTraitProb: 0.1,

		// Mating probabilities
		MateMultipointProb:    0.6,
		MateMultipointAvgProb: 0.4,
		MateSinglepointProb:   0.0,
		MateOnlyProb:          0.2,
		RecurOnlyProb:         0.0,

		// Speciation
		CompatThreshold: cfg.NEAT.CompatThreshold,
		DisjointCoeff:   1.0,
		ExcessCoeff:     1.0,
		MutdiffCoeff:    0.4,

		// Species management
		DropOffAge:      15,
		SurvivalThresh:  0.2,
		AgeSignificance: 1.0,

		// Run shape
		PopSize:        cfg.NEAT.PopSize,
		NumRuns:        1,
		NumGenerations: cfg.NEAT.NumGenerations,
	}
}
