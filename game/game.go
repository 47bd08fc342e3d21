// Package game is the raylib front-end: it owns the interactive loop,
// feeds input to a controller, steps the simulation, and draws the
// world from snapshots. The simulation core never imports this package.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/controller"
	"github.com/pthm-cable/glide/sim"
)

// Options configures an interactive session.
type Options struct {
	Seed int64

	// Decider drives the flyer. Nil means human play: the spacebar is
	// wired to an edge-triggered controller and the obstacle cap is
	// raised to the arcade limit.
	Decider controller.Decider
}

// Game holds one interactive session: a single flyer, its controller,
// and the shared simulation.
type Game struct {
	cfg *config.Config
	sim *sim.Simulation
	enc *controller.Encoder

	flyer   *sim.Flyer
	decider controller.Decider
	human   *controller.Human // non-nil in human play

	session   int
	bestScore int
	gameOver  bool
}

// NewGame builds the session. Human play uses the arcade obstacle cap;
// a policy decider keeps the cap it trained against.
func NewGame(cfg *config.Config, opts Options) *Game {
	g := &Game{
		cfg:     cfg,
		sim:     sim.New(cfg, opts.Seed),
		enc:     controller.NewEncoder(cfg),
		decider: opts.Decider,
	}

	maxLive := cfg.Obstacles.MaxConcurrent
	if g.decider == nil {
		g.human = controller.NewHuman()
		g.decider = g.human
		maxLive = cfg.Obstacles.ArcadeMax
	}
	g.sim.AddField(sim.NewObstacleField(cfg, maxLive))

	g.spawnFlyer()
	return g
}

// spawnFlyer starts a fresh session: clears the fields and attaches a
// new flyer at the spawn point.
func (g *Game) spawnFlyer() {
	if g.flyer != nil {
		g.sim.Detach(g.flyer)
	}
	g.sim.ResetFields()

	g.session++
	g.flyer = sim.NewFlyer(g.session, g.cfg)
	g.sim.Attach(g.flyer)
	g.gameOver = false
}

// Update advances the session by one tick: input, decision, physics,
// scoring, collision.
func (g *Game) Update() {
	if g.gameOver {
		// Human sessions wait for a keypress; policy sessions restart
		// on their own.
		if g.human == nil || rl.IsKeyPressed(rl.KeySpace) {
			g.spawnFlyer()
		}
		return
	}

	if g.human != nil && rl.IsKeyPressed(rl.KeySpace) {
		g.human.RequestJump()
	}

	jump, err := g.decider.Decide(g.enc.Encode(g.flyer, g.sim.Fields()))
	if err != nil {
		slog.Error("controller failed", "session", g.session, "error", err)
		g.endSession()
		return
	}
	if jump {
		g.flyer.Jump()
	}

	g.sim.Tick()
	g.sim.ScoreDelta(g.flyer)

	if g.sim.Collides(g.flyer) {
		g.endSession()
	}
}

func (g *Game) endSession() {
	if g.flyer.Score > g.bestScore {
		g.bestScore = g.flyer.Score
	}
	slog.Info("session over",
		"session", g.session,
		"score", g.flyer.Score,
		"best", g.bestScore,
		"tick", g.sim.CurrentTick(),
	)
	g.gameOver = true
}

// Tick returns the simulation tick counter.
func (g *Game) Tick() uint64 {
	return g.sim.CurrentTick()
}
