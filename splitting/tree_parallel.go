package splitting

import "github.com/katalvlaran/fsmlearn/fsm"

// BuildParallel is Build with pairwise separator classification's
// independent round-0 phase run across a bounded worker pool (see
// computeSeparatorsParallel). workers <= 0 defaults to GOMAXPROCS.
// The resulting Tree is identical to Build's for the same (m, opts).
func BuildParallel(m *fsm.DFSM, opts Options, workers int) (*Tree, error) {
	if !m.IsCompact() {
		return nil, ErrNotCompact
	}
	sep, err := computeSeparatorsParallel(m, opts, workers)
	if err != nil {
		return nil, err
	}

	n := m.NumStates()
	t := &Tree{
		Machine:            m,
		CurNode:            make([]int, n),
		Distinguished:      make([]int, fsm.NumPairs(n)),
		Separator:          sep,
		AllowInvalidInputs: opts.AllowInvalidInputs,
	}
	for i := range t.Distinguished {
		t.Distinguished[i] = -1
	}

	root := make([]fsm.State, n)
	for s := 0; s < n; s++ {
		root[s] = fsm.State(s)
	}
	t.buildNode(-1, root)
	return t, nil
}
