package neural

import (
	"math/rand"
	"path/filepath"
	"testing"
)

func TestNewStartGenome(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	genome := NewStartGenome(rng, 19, 0.5)

	if genome == nil {
		t.Fatal("NewStartGenome returned nil")
	}

	// One node per input plus the jump output.
	if len(genome.Nodes) != 20 {
		t.Errorf("expected 20 nodes, got %d", len(genome.Nodes))
	}

	if len(genome.Genes) == 0 {
		t.Error("expected at least 1 gene, got 0")
	}

	t.Logf("Created genome with %d nodes and %d genes", len(genome.Nodes), len(genome.Genes))
}

func TestNewStartGenomeConnectionProb(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	full := NewStartGenome(rng, 10, 1.0)
	if len(full.Genes) != 10 {
		t.Errorf("prob 1.0: expected 10 genes, got %d", len(full.Genes))
	}

	// Zero probability still guarantees one connection so the network is
	// never degenerate.
	sparse := NewStartGenome(rng, 10, 0.0)
	if len(sparse.Genes) != 1 {
		t.Errorf("prob 0.0: expected the 1 guaranteed gene, got %d", len(sparse.Genes))
	}
}

func TestGenomeSaveLoad(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	genome := NewStartGenome(rng, 19, 1.0)

	path := filepath.Join(t.TempDir(), "seed.genome")
	if err := SaveGenome(path, genome); err != nil {
		t.Fatalf("SaveGenome failed: %v", err)
	}

	back, err := LoadGenome(path)
	if err != nil {
		t.Fatalf("LoadGenome failed: %v", err)
	}

	if len(back.Nodes) != len(genome.Nodes) {
		t.Errorf("node count changed: %d -> %d", len(genome.Nodes), len(back.Nodes))
	}
	if len(back.Genes) != len(genome.Genes) {
		t.Errorf("gene count changed: %d -> %d", len(genome.Genes), len(back.Genes))
	}

	// The loaded genome must still produce a working network.
	if _, err := NewPolicy(back); err != nil {
		t.Errorf("policy from loaded genome: %v", err)
	}
}
