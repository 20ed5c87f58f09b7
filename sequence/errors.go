package sequence

import "errors"

var (
	// ErrNoSequence is returned when a machine provably has no preset
	// distinguishing, homing, or synchronizing sequence (e.g. a reduced
	// machine with more than one output value can never collapse to a
	// single state-independent partition under a preset sequence).
	ErrNoSequence = errors.New("sequence: machine admits no such sequence")

	// ErrSearchExhausted is returned when a bounded search's node budget
	// (MaxClosedNodes) is spent before a result was found.
	ErrSearchExhausted = errors.New("sequence: search exhausted its node budget")

	// ErrInvalidState is returned when a requested state is out of range.
	ErrInvalidState = errors.New("sequence: invalid state")
)
