package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/game"
	"github.com/pthm-cable/glide/neural"
	"github.com/pthm-cable/glide/telemetry"
)

func main() {
	// CLI flags
	mode := flag.String("mode", "play", "Run mode: play, train, or replay")
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, checkpoints, and config snapshot")
	genomePath := flag.String("genome", "", "Genome file for replay mode")
	generations := flag.Int("generations", 0, "Override number of generations (0 = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *generations > 0 {
		cfg.NEAT.NumGenerations = *generations
	}

	// Seed precedence: flag, then config, then wall clock.
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Evaluation.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	switch *mode {
	case "train":
		runTrain(cfg, *outputDir, rngSeed)
	case "play":
		runInteractive(cfg, game.Options{Seed: rngSeed}, "Glide")
	case "replay":
		if *genomePath == "" {
			slog.Error("replay mode requires -genome")
			os.Exit(1)
		}
		genome, err := neural.LoadGenome(*genomePath)
		if err != nil {
			slog.Error("failed to load genome", "path", *genomePath, "error", err)
			os.Exit(1)
		}
		policy, err := neural.NewPolicy(genome)
		if err != nil {
			slog.Error("failed to build policy", "error", err)
			os.Exit(1)
		}
		slog.Info("replaying genome",
			"path", *genomePath,
			"nodes", policy.NodeCount(),
			"links", policy.LinkCount(),
		)
		runInteractive(cfg, game.Options{Seed: rngSeed, Decider: policy}, "Glide (replay)")
	default:
		slog.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
}

// runTrain runs the headless evolution loop. Ctrl-C stops after the
// in-flight generation.
func runTrain(cfg *config.Config, outputDir string, seed int64) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		slog.Error("failed to set up output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := neural.Train(ctx, cfg, out, seed); err != nil {
		slog.Error("training failed", "error", err)
		os.Exit(1)
	}
}

// runInteractive opens the window and runs the tick/draw loop until the
// window is closed.
func runInteractive(cfg *config.Config, opts game.Options, title string) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(cfg, opts)
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}
