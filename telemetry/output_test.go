package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestOutputManagerDisabled verifies the nil manager is safe to use: output
// is simply dropped when no directory is configured.
func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") = %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	if err := om.WriteGeneration(GenerationStats{}); err != nil {
		t.Errorf("nil WriteGeneration = %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir = %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}

// TestOutputManagerGenerationsCSV verifies the header is written once and
// each generation appends one row.
func TestOutputManagerGenerationsCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager = %v", err)
	}
	defer om.Close()

	if err := om.WriteGeneration(GenerationStats{Generation: 0, Evaluated: 10}); err != nil {
		t.Fatalf("first WriteGeneration = %v", err)
	}
	if err := om.WriteGeneration(GenerationStats{Generation: 1, Evaluated: 10}); err != nil {
		t.Fatalf("second WriteGeneration = %v", err)
	}
	om.Close()

	data, err := os.ReadFile(filepath.Join(dir, "generations.csv"))
	if err != nil {
		t.Fatalf("reading generations.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv lines = %d, want header + 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "generation,") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.HasPrefix(lines[1], "generation,") || strings.HasPrefix(lines[2], "generation,") {
		t.Error("header repeated in data rows")
	}
}
