package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// BlackBox is an opaque FSM-like object queried one input (or one
// sequence) at a time, optionally resettable to its initial state.
type BlackBox interface {
	// IsResettable reports whether Reset is supported.
	IsResettable() bool
	// ModelType reports the underlying machine kind, if known.
	ModelType() fsm.Kind
	// NumInputs returns the number of possible inputs.
	NumInputs() int
	// NumOutputs returns the number of possible outputs, or
	// fsm.WrongOutput if not known in advance.
	NumOutputs() int
	// QueriedSymbolsCount returns how many input symbols have been
	// applied across the box's lifetime.
	QueriedSymbolsCount() int
	// AppliedResetCount returns how many times Reset has been called.
	AppliedResetCount() int

	// Reset returns the box to its initial state. Panics if the box
	// is not resettable; callers must check IsResettable first.
	Reset()
	// Query applies one input from the current state and returns the
	// response.
	Query(input fsm.Input) fsm.Output
	// QuerySeq applies a sequence of inputs from the current state
	// and returns the response sequence.
	QuerySeq(seq []fsm.Input) []fsm.Output
	// ResetAndQuery resets, then applies one input.
	ResetAndQuery(input fsm.Input) fsm.Output
	// ResetAndQuerySeq resets, then applies a sequence of inputs.
	ResetAndQuerySeq(seq []fsm.Input) []fsm.Output
}

// Teacher adds equivalence queries to a BlackBox. Reset count and
// queried-symbol count are already exposed by the embedded BlackBox
// (AppliedResetCount, QueriedSymbolsCount); OQCount and EQCount are
// the two additional counters a teacher tracks on top of those.
type Teacher interface {
	BlackBox
	// EquivalenceQuery returns nil iff conjecture behaves identically
	// to the black box from their respective initial states, else a
	// counterexample input sequence exposing a discrepancy.
	EquivalenceQuery(conjecture *fsm.DFSM) []fsm.Input
	// OQCount returns how many membership (output) queries have been
	// issued through this teacher.
	OQCount() int
	// EQCount returns how many equivalence queries have been issued.
	EQCount() int
}
