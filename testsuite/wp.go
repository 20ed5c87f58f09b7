package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// Wp builds a Fujiwara-style two-phase test suite: the transition
// cover gets the full characterizing set appended (like W), while the
// traversal-set extension beyond the transition cover only needs one
// state-identifying fragment per reached state (its HSI row's first
// non-empty entry), since by that point every state has already been
// confirmed reachable by phase one. This keeps W's fault-coverage
// guarantee with a smaller suite.
func Wp(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	w, err := sequence.CharacterizingSet(m, splitting.Options{AllowInvalidInputs: opts.AllowInvalidInputs})
	if err != nil {
		return nil, err
	}
	hsi, err := sequence.HSI(m, splitting.Options{AllowInvalidInputs: opts.AllowInvalidInputs})
	if err != nil {
		return nil, err
	}

	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)

	ps := prefixset.New()
	for _, seq := range buildSuite(m, q, [][]fsm.Input{{}}, func(fsm.State) [][]fsm.Input { return w }) {
		ps.Insert(seq)
	}
	phase2 := buildSuite(m, q, v, func(s fsm.State) [][]fsm.Input {
		for _, z := range hsi[s] {
			if len(z) > 0 {
				return [][]fsm.Input{z}
			}
		}
		return nil
	})
	for _, seq := range phase2 {
		ps.Insert(seq)
	}
	return ps.GetMaximalSequences(), nil
}
