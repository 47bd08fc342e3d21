// Package population runs one generation of agents through the simulation
// and accounts fitness per agent. The optimizer is the caller: it hands in
// a batch of deciders and reads back results; nothing here calls into
// optimizer internals.
package population

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/glide/config"
	"github.com/pthm-cable/glide/controller"
	"github.com/pthm-cable/glide/sim"
)

// Agent is one evaluation candidate: an opaque identifier (the optimizer's
// genome id) and its decision source.
type Agent struct {
	ID      int
	Decider controller.Decider
}

// Result is the outcome of one agent's evaluation.
type Result struct {
	Fitness    float64
	Score      int
	TicksAlive uint64

	// Err is set when the decider failed during evaluation. The agent was
	// treated as if it collided on that tick; the rest of the generation
	// was unaffected.
	Err error
}

// Manager maps agents to flyers for the duration of one generation and
// steps the simulation until every agent is eliminated or the tick budget
// runs out. One cycle per optimizer generation: Idle -> Evaluating -> Idle.
type Manager struct {
	cfg *config.Config
	sim *sim.Simulation
	enc *controller.Encoder
}

// NewManager creates a manager evaluating against the given simulation.
// The simulation must already have its obstacle fields registered.
func NewManager(cfg *config.Config, s *sim.Simulation) *Manager {
	return &Manager{
		cfg: cfg,
		sim: s,
		enc: controller.NewEncoder(cfg),
	}
}

// active is one live agent's evaluation state.
type active struct {
	agent  Agent
	flyer  *sim.Flyer
	result Result
}

// EvaluateGeneration instantiates one flyer per agent at the spawn point,
// steps the simulation until the population is empty (or the budget or the
// context ends the run), and returns accumulated fitness per agent id.
//
// Per tick, for each live agent in order: survival bonus, pass bonus when
// the tick's score delta is positive, the controller decision (with the
// no-op jump penalty when a jump changes nothing), then the collision
// check. A collided agent finishes the current tick's effects, takes the
// collision penalty once, and is removed. A decider error is handled the
// same way so one bad genome cannot halt a generation.
//
// Cancellation is checked once per tick boundary; the in-flight tick
// always completes. On exit the obstacle fields are reset for the next
// generation; the boundary is kept.
func (m *Manager) EvaluateGeneration(ctx context.Context, agents []Agent) map[int]Result {
	fit := m.cfg.Fitness
	budget := uint64(m.cfg.Evaluation.MaxTicks)

	results := make(map[int]Result, len(agents))
	live := make([]*active, 0, len(agents))
	for _, a := range agents {
		aa := &active{agent: a, flyer: sim.NewFlyer(a.ID, m.cfg)}
		m.sim.Attach(aa.flyer)
		live = append(live, aa)
	}

	var ticks uint64
	for len(live) > 0 {
		if ctx.Err() != nil {
			break
		}
		if budget > 0 && ticks >= budget {
			break
		}

		m.sim.Tick()
		ticks++

		survivors := live[:0]
		for _, aa := range live {
			aa.result.Fitness += fit.SurvivalBonus
			aa.result.TicksAlive = ticks

			if m.sim.ScoreDelta(aa.flyer) > 0 {
				aa.result.Fitness += fit.PassBonus
			}

			jump, err := aa.agent.Decider.Decide(m.enc.Encode(aa.flyer, m.sim.Fields()))
			if err != nil {
				aa.result.Err = fmt.Errorf("decider for agent %d: %w", aa.agent.ID, err)
				slog.Warn("decider failed, agent eliminated",
					"agent", aa.agent.ID, "tick", ticks, "error", err)
				m.eliminate(aa, results)
				continue
			}
			if jump {
				if aa.flyer.LastJumpY == aa.flyer.Box.Y {
					aa.result.Fitness -= fit.NoopJumpPenalty
				}
				aa.flyer.Jump()
			}

			if m.sim.Collides(aa.flyer) {
				m.eliminate(aa, results)
				continue
			}
			survivors = append(survivors, aa)
		}
		live = survivors
	}

	// Budget exhaustion or cancellation: survivors keep their fitness
	// without the collision penalty.
	for _, aa := range live {
		m.sim.Detach(aa.flyer)
		aa.result.Score = aa.flyer.Score
		results[aa.agent.ID] = aa.result
	}

	m.sim.ResetFields()
	return results
}

// eliminate applies the collision penalty, detaches the flyer, and records
// the final result. No further fitness accrues for this agent.
func (m *Manager) eliminate(aa *active, results map[int]Result) {
	aa.result.Fitness -= m.cfg.Fitness.CollisionPenalty
	aa.result.Score = aa.flyer.Score
	m.sim.Detach(aa.flyer)
	results[aa.agent.ID] = aa.result
}
