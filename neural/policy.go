package neural

import (
	"fmt"

	"github.com/yaricom/goNEAT/v4/neat/genetics"
	"github.com/yaricom/goNEAT/v4/neat/network"
)

// JumpThreshold is the output activation above which a policy requests a
// jump.
const JumpThreshold = 0.5

// Policy is a controller.Decider backed by a NEAT phenotype network.
type Policy struct {
	genome *genetics.Genome
	net    *network.Network
	depth  int
}

// NewPolicy builds the phenotype network from a genome.
func NewPolicy(genome *genetics.Genome) (*Policy, error) {
	phenotype, err := genome.Genesis(genome.Id)
	if err != nil {
		return nil, fmt.Errorf("building network from genome %d: %w", genome.Id, err)
	}

	// Activate with depth-based steps for proper signal propagation
	depth, err := phenotype.MaxActivationDepth()
	if err != nil || depth < 1 {
		depth = 5 // fallback for simple networks
	}

	return &Policy{
		genome: genome,
		net:    phenotype,
		depth:  depth,
	}, nil
}

// Decide feeds the perception vector through the network and requests a
// jump when the output exceeds JumpThreshold. Network state is flushed
// after each decision so ticks stay independent.
func (p *Policy) Decide(inputs []float64) (bool, error) {
	if err := p.net.LoadSensors(inputs); err != nil {
		return false, fmt.Errorf("loading sensors: %w", err)
	}

	for i := 0; i < p.depth; i++ {
		if _, err := p.net.Activate(); err != nil {
			return false, fmt.Errorf("activating network: %w", err)
		}
	}

	outputs := p.net.ReadOutputs()
	jump := len(outputs) > 0 && outputs[0] > JumpThreshold

	if _, err := p.net.Flush(); err != nil {
		return false, fmt.Errorf("flushing network: %w", err)
	}

	return jump, nil
}

// NodeCount returns the number of nodes in the phenotype network.
func (p *Policy) NodeCount() int {
	return p.net.NodeCount()
}

// LinkCount returns the number of links in the phenotype network.
func (p *Policy) LinkCount() int {
	return p.net.LinkCount()
}
