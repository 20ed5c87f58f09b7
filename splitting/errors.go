package splitting

import "errors"

var (
	// ErrNotCompact mirrors fsm.ErrNotCompact: Build requires a compact model.
	ErrNotCompact = errors.New("splitting: machine is not compact")

	// ErrNotReduced is returned when two states never separate — the
	// machine still has behaviorally-equivalent states and must be
	// minimized first.
	ErrNotReduced = errors.New("splitting: machine is not reduced")
)
