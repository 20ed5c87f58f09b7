package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// HSI builds a test suite using, for each reached state s, only the
// harmonized identifiers that actually distinguish s from the other
// states — a per-state subset of W rather than the whole set, giving
// a smaller suite than W at the same fault-coverage guarantee.
func HSI(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	hsi, err := sequence.HSI(m, splitting.Options{AllowInvalidInputs: opts.AllowInvalidInputs})
	if err != nil {
		return nil, err
	}
	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)
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
