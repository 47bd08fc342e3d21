package sim

// Snapshot is the read-only view of the world exposed to renderers after a
// tick. The core performs no drawing itself.
type Snapshot struct {
	Tick      uint64
	ScrollX   float64
	Flyers    []FlyerState
	Obstacles []ObstacleState
}

// FlyerState is one flyer's drawable state.
type FlyerState struct {
	ID       int
	Box      Rect
	Velocity float64
	Score    int
}

// ObstacleState is one obstacle's drawable state.
type ObstacleState struct {
	ID   uint64
	Box  Rect
	Fast bool
}

// Snapshot captures the current positions and scores of all entities.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		ScrollX: s.boundary.Scroll(),
	}
	for _, f := range s.flyers {
		snap.Flyers = append(snap.Flyers, FlyerState{
			ID:       f.ID,
			Box:      f.Box,
			Velocity: f.Velocity,
			Score:    f.Score,
		})
	}
	for _, fld := range s.fields {
		for _, o := range fld.Obstacles() {
			snap.Obstacles = append(snap.Obstacles, ObstacleState{
				ID:   o.ID,
				Box:  o.Box,
				Fast: o.Fast(),
			})
		}
	}
	return snap
}
