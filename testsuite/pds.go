package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
)

// PDS builds a test suite using a single preset distinguishing
// sequence as the identifier for every reached state: since a PDS
// distinguishes the initial state set regardless of which state it is
// applied to, the same fragment is appended after every q·v. Returns
// ErrNoArtifact if the machine has no PDS.
func PDS(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	pds, err := sequence.PresetDistinguishingSequence(m)
	if err != nil {
		return nil, ErrNoArtifact
	}
	q := sequence.TransitionCover(m)
	v := traversalSetFor(m, opts)
	return buildSuite(m, q, v, func(fsm.State) [][]fsm.Input {
		return [][]fsm.Input{pds}
	}), nil
}
