package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// ModelTeacher is a Teacher wrapping a reference fsm.DFSM directly:
// equivalence queries run an exact BFS over the product of the
// reference and the conjecture, so they always terminate with either
// no counterexample or the shortest one.
type ModelTeacher struct {
	*ModelBacked
	ref     *fsm.DFSM
	oqCount int
	eqCount int
}

// NewModelTeacher wraps ref.
func NewModelTeacher(ref *fsm.DFSM) *ModelTeacher {
	return &ModelTeacher{ModelBacked: NewModelBacked(ref), ref: ref}
}

func (t *ModelTeacher) QuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.ModelBacked.QuerySeq(seq)
}

func (t *ModelTeacher) ResetAndQuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.ModelBacked.ResetAndQuerySeq(seq)
}

func (t *ModelTeacher) EquivalenceQuery(conjecture *fsm.DFSM) []fsm.Input {
	t.eqCount++
	return equivalenceBFS(t.ref, conjecture)
}

func (t *ModelTeacher) OQCount() int { return t.oqCount }
func (t *ModelTeacher) EQCount() int { return t.eqCount }
