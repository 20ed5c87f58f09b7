package blackbox

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/testsuite"
)

// SuiteTeacher is a Teacher wrapping an opaque BlackBox: equivalence
// queries emulate a true equivalence check by generating a W-method
// test suite against the conjecture with an increasing extraStates
// bound, feeding each sequence to the black box, and returning the
// first sequence whose response disagrees with the conjecture. If no
// discrepancy turns up by MaxExtraStates, EquivalenceQuery gives up
// and returns nil (treated as "presumed equivalent").
type SuiteTeacher struct {
	BlackBox
	MaxExtraStates int
	oqCount        int
	eqCount        int
}

// NewSuiteTeacher wraps box, trying extraStates bounds from 0 up to
// maxExtraStates inclusive on every equivalence query.
func NewSuiteTeacher(box BlackBox, maxExtraStates int) *SuiteTeacher {
	return &SuiteTeacher{BlackBox: box, MaxExtraStates: maxExtraStates}
}

func (t *SuiteTeacher) QuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.BlackBox.QuerySeq(seq)
}

func (t *SuiteTeacher) ResetAndQuerySeq(seq []fsm.Input) []fsm.Output {
	t.oqCount++
	return t.BlackBox.ResetAndQuerySeq(seq)
}

func (t *SuiteTeacher) EquivalenceQuery(conjecture *fsm.DFSM) []fsm.Input {
	t.eqCount++
	for k := 0; k <= t.MaxExtraStates; k++ {
		suite, err := testsuite.W(conjecture, testsuite.Options{ExtraStates: k})
		if err != nil {
			continue
		}
		for _, seq := range suite {
			want := conjecture.GetOutputAlongPath(conjecture.InitialState(), seq)
			got := t.BlackBox.ResetAndQuerySeq(seq)
			if !equalOutputs(want, got) {
				return seq
			}
		}
	}
	return nil
}

func (t *SuiteTeacher) OQCount() int { return t.oqCount }
func (t *SuiteTeacher) EQCount() int { return t.eqCount }

func equalOutputs(a, b []fsm.Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
