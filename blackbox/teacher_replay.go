package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// ReplayTeacher is a Teacher whose equivalence queries are answered
// from a fixed, externally supplied queue of counterexamples rather
// than computed, for deterministic regression tests of learners:
// pop the next queued counterexample (or nil, once the queue is
// empty, meaning "accept the conjecture").
type ReplayTeacher struct {
	BlackBox
	queue   [][]fsm.Input
	oqCount int
	eqCount int
}

// NewReplayTeacher wraps box, replaying counterexamples in order.
func NewReplayTeacher(box BlackBox, counterexamples [][]fsm.Input) *ReplayTeacher {
	q := make([][]fsm.Input, len(counterexamples))
	copy(q, counterexamples)
	return &ReplayTeacher{BlackBox: box, queue: q}
}

func (t *ReplayTeacher) QuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.BlackBox.QuerySeq(seq)
}

func (t *ReplayTeacher) ResetAndQuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.BlackBox.ResetAndQuerySeq(seq)
}

func (t *ReplayTeacher) EquivalenceQuery(_ *fsm.DFSM) []fsm.Input {
	t.eqCount++
	if len(t.queue) == 0 {
		return nil
	}
	next := t.queue[0]
	t.queue = t.queue[1:]
	return next
}

func (t *ReplayTeacher) OQCount() int { return t.oqCount }
func (t *ReplayTeacher) EQCount() int { return t.eqCount }
