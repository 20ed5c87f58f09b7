package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// W builds a test suite using the full characterizing set as the
// identifier after every q·v, regardless of which state q·v reaches:
// W distinguishes every pair of states, so applying the whole set
// after each prefix is always sufficient, if not minimal.
func W(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	w, err := sequence.CharacterizingSet(m, splitting.Options{AllowInvalidInputs: opts.AllowInvalidInputs})
	if err != nil {
		return nil, err
	}
	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)
	return buildSuite(m, q, v, func(fsm.State) [][]fsm.Input {
		return w
	}), nil
}
