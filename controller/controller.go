// Package controller defines the decision boundary between the simulation
// and whatever drives a flyer: a human at the keyboard or a trained policy.
package controller

// Decider is the per-tick decision source for one flyer. Given the current
// perception vector it may request a jump. A returned error is fatal to
// that one agent's evaluation only; callers treat it as an immediate
// collision.
type Decider interface {
	Decide(inputs []float64) (jump bool, err error)
}
