// Package fsm: sentinel error set. All algorithms MUST return these via
// errors.Is-compatible sentinels rather than ad-hoc strings or panics;
// panics are reserved for programmer errors (e.g. indexing with a
// negative, non-sentinel state id).
package fsm

import "errors"

var (
	// ErrInvalidState is returned when a state id is outside [0, NumStates).
	ErrInvalidState = errors.New("fsm: invalid state id")

	// ErrInvalidInput is returned when an input id is outside [0, NumInputs)
	// and is not the STOUT_INPUT sentinel.
	ErrInvalidInput = errors.New("fsm: invalid input id")

	// ErrInvalidOutput is returned when an output id is outside [0, NumOutputs).
	ErrInvalidOutput = errors.New("fsm: invalid output id")

	// ErrWrongKind is returned when an operation is attempted against a Kind
	// that does not carry the output table the operation needs (e.g. setting
	// a transition output on a Moore machine).
	ErrWrongKind = errors.New("fsm: operation not valid for this machine kind")

	// ErrCapacityExceeded is returned when AddState is called beyond the
	// capacity reserved at Create time.
	ErrCapacityExceeded = errors.New("fsm: state capacity exceeded")

	// ErrNotCompact is returned by algorithms that require state ids to be
	// contiguous 0..NumStates-1 when the receiver is not.
	ErrNotCompact = errors.New("fsm: machine is not compact")

	// ErrNotReduced is returned by algorithms that require minimize(M) == M
	// when the receiver still has behaviorally-equivalent states.
	ErrNotReduced = errors.New("fsm: machine is not reduced")

	// ErrPartialFSM reports that a machine has at least one absent (s,i)
	// transition. No function in this module returns it; the learners
	// and teachers accept partial machines without checking.
	ErrPartialFSM = errors.New("fsm: machine has partial transitions")
)
