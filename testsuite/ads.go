package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
)

// ADS builds a test suite using the adaptive distinguishing set: the
// identifier for a reached state s is s's own adaptive sequence, which
// only needs to distinguish s from the other states actually still
// conflated with it at that point in the splitting tree. Returns
// ErrNoArtifact if the machine has no adaptive distinguishing set.
func ADS(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	ads, err := sequence.AdaptiveDistinguishingSet(m)
	if err != nil {
		return nil, ErrNoArtifact
	}
	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)
	return buildSuite(m, q, v, func(s fsm.State) [][]fsm.Input {
		return [][]fsm.Input{ads[s]}
	}), nil
}
