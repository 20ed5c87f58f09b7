package sequence

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// SeparatingSequences returns the shortest separating input sequence
// for every unordered pair of states, indexed by fsm.PairIndex. It is
// a thin wrapper over splitting.Build, kept here so callers needing
// only pairwise separation (not the full splitting tree) have a
// single, self-describing entry point.
func SeparatingSequences(m *fsm.DFSM, opts splitting.Options) ([][]fsm.Input, error) {
	tree, err := splitting.Build(m, opts)
	if err != nil {
		return nil, err
	}
	return tree.Separator, nil
}

// SeparatingSequencesParallel is SeparatingSequences with the
// embarrassingly-parallel part of separator computation spread across
// workers worker goroutines (workers <= 0 picks GOMAXPROCS). Output is
// bit-identical to SeparatingSequences for the same (m, opts).
func SeparatingSequencesParallel(m *fsm.DFSM, opts splitting.Options, workers int) ([][]fsm.Input, error) {
	tree, err := splitting.BuildParallel(m, opts, workers)
	if err != nil {
		return nil, err
	}
	return tree.Separator, nil
}
