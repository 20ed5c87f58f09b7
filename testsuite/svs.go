package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
)

// SVS builds a test suite using one state verifying sequence per
// reached state: the identifier for a reached state s only confirms
// that s is indeed s, rather than distinguishing it from every other
// state outright. Returns ErrNoArtifact if some reached state lacks a
// verifying sequence.
func SVS(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	n := m.NumStates()
	svs := make([][]fsm.Input, n)
	for s := 0; s < n; s++ {
		seq, err := sequence.StateVerifyingSequence(m, fsm.State(s))
		if err != nil {
			return nil, ErrNoArtifact
		}
		svs[s] = seq
	}
	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)
	return buildSuite(m, q, v, func(s fsm.State) [][]fsm.Input {
		return [][]fsm.Input{svs[s]}
	}), nil
}
