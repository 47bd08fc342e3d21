package controller

// Human is the edge-triggered human input controller. The event loop calls
// RequestJump when a discrete jump input arrives; the next Decide consumes
// it. A held key produces one jump, not a stream.
type Human struct {
	pending bool
}

// NewHuman creates a human controller with no pending input.
func NewHuman() *Human {
	return &Human{}
}

// RequestJump records that a jump input event occurred since the last tick.
func (h *Human) RequestJump() {
	h.pending = true
}

// Decide consumes the pending jump request, if any. The perception vector
// is ignored; the human sees the screen.
func (h *Human) Decide(_ []float64) (bool, error) {
	jump := h.pending
	h.pending = false
	return jump, nil
}
