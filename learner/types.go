package learner

import "github.com/katalvlaran/fsmlearn/fsm"

// Inconsistency is the taxonomy of ways an observation-tree learner's
// internal structure can be caught contradicting itself. Exactly one
// of the four concrete types below implements it.
type Inconsistency interface {
	inconsistency()
}

// NewStateRevealed means a node's candidate-state domain became
// empty: no known reference state still fits, so a new state must be
// inserted into the conjecture.
type NewStateRevealed struct {
	Node fsm.State // access-sequence index of the offending node, caller-defined
}

func (NewStateRevealed) inconsistency() {}

// EmptyConvergentDomain means two tree nodes believed to converge on
// the same state turned out, once their domains were intersected, to
// share no candidate at all; a diverging suffix must be queried to
// tell them apart.
type EmptyConvergentDomain struct {
	NodeA, NodeB fsm.State
}

func (EmptyConvergentDomain) inconsistency() {}

// InconsistentDomain means a node's domain no longer contains the
// state it was already assigned; it must be re-split and re-
// identified.
type InconsistentDomain struct {
	Node fsm.State
}

func (InconsistentDomain) inconsistency() {}

// WrongMerge means two convergent nodes were merged optimistically but
// a later query distinguishes them; the merge must be undone.
type WrongMerge struct {
	NodeA, NodeB fsm.State
}

func (WrongMerge) inconsistency() {}

// Cancellation is the signal a caller uses (via a channel, a context,
// or direct polling depending on the learner) to stop learning early.
// Stop carries whatever conjecture the learner has produced so far.
type Cancellation struct {
	Stop  bool
	Model *fsm.DFSM
}

// Continue is the zero Cancellation: keep learning.
var Continue = Cancellation{}

// StopWith builds a Cancellation that halts the learner and returns
// model as its result.
func StopWith(model *fsm.DFSM) Cancellation {
	return Cancellation{Stop: true, Model: model}
}

// Counters mirrors the four counters a blackbox.Teacher tracks, kept
// here too so a learner can report its own view of query cost
// independent of which teacher implementation it was handed.
type Counters struct {
	Resets        int
	QueriedSymbols int
	OQCount       int
	EQCount       int
}
