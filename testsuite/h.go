package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// H builds a test suite like HSI but with one fewer traversal level:
// H relies on every state being confirmed by the transition cover
// itself, using the traversal-set extension only to probe extra
// states, so it does not need the same depth cushion HSI uses.
func H(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	hsi, err := sequence.HSI(m, splitting.Options{AllowInvalidInputs: opts.AllowInvalidInputs})
	if err != nil {
		return nil, err
	}
	q := sequence.TransitionCover(m)
	v := sequence.TraversalSet(m, opts.ExtraStates)
	v = append([][]fsm.Input{{}}, v...)
	return buildSuite(m, q, v, func(s fsm.State) [][]fsm.Input {
		var out [][]fsm.Input
		for _, w := range hsi[s] {
			if len(w) > 0 {
				out = append(out, w)
			}
		}
		return out
	}), nil
}
