package neural

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/yaricom/goNEAT/v4/neat/genetics"
	neatmath "github.com/yaricom/goNEAT/v4/neat/math"
	"github.com/yaricom/goNEAT/v4/neat/network"
)

// NewStartGenome creates the seed genome all candidates descend from:
// one input per perception component, a single jump output, and sparse
// random input-output connections. Innovation numbers are assigned
// densely so descendants align by innovation during crossover.
func NewStartGenome(rng *rand.Rand, numInputs int, connectionProb float64) *genetics.Genome {
	const numOutputs = 1

	nodes := make([]*network.NNode, 0, numInputs+numOutputs)

	// Input nodes (IDs 1 to numInputs)
	for i := 1; i <= numInputs; i++ {
		node := network.NewNNode(i, network.InputNeuron)
		node.ActivationType = neatmath.LinearActivation
		nodes = append(nodes, node)
	}

	// Output node
	out := network.NewNNode(numInputs+1, network.OutputNeuron)
	out.ActivationType = neatmath.SigmoidSteepenedActivation
	nodes = append(nodes, out)

	genes := make([]*genetics.Gene, 0, numInputs)
	innovNum := int64(1)
	for i := 0; i < numInputs; i++ {
		currentInnov := innovNum
		innovNum++

		if rng.Float64() < connectionProb {
			weight := rng.Float64()*4 - 2 // [-2, 2]
			gene := genetics.NewGeneWithTrait(
				nil,
				weight,
				nodes[i],
				out,
				false,
				currentInnov,
				0,
			)
			genes = append(genes, gene)
		}
	}

	// Ensure at least one connection exists
	if len(genes) == 0 {
		gene := genetics.NewGeneWithTrait(
			nil,
			rng.Float64()*2-1,
			nodes[0],
			out,
			false,
			1,
			0,
		)
		genes = append(genes, gene)
	}

	return genetics.NewGenome(1, nil, nodes, genes)
}

// SaveGenome persists one genome as an opaque blob on disk.
func SaveGenome(path string, g *genetics.Genome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating genome file: %w", err)
	}
	defer f.Close()

	if err := g.Write(f); err != nil {
		return fmt.Errorf("writing genome: %w", err)
	}
	return nil
}

// LoadGenome reads a genome blob previously written by SaveGenome.
func LoadGenome(path string) (*genetics.Genome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening genome file: %w", err)
	}
	defer f.Close()

	g, err := genetics.ReadGenome(f, 1)
	if err != nil {
		return nil, fmt.Errorf("reading genome: %w", err)
	}
	return g, nil
}
