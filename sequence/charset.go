package sequence

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// CharacterizingSet returns a set of input sequences W such that, for
// every pair of states i != j, at least one sequence in W produces a
// different observation from i than from j. It is built directly from
// splitting.Tree.Separator: every pair's own shortest separator is
// already such a witness, so their deduplicated union is already a
// valid (if not minimal) characterizing set.
func CharacterizingSet(m *fsm.DFSM, opts splitting.Options) ([][]fsm.Input, error) {
	tree, err := splitting.Build(m, opts)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out [][]fsm.Input
	for _, seq := range tree.Separator {
		if len(seq) == 0 {
			continue
		}
		k := seqKey(seq)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, seq)
	}
	return out, nil
}

// HSI returns, for every state, the subset of pairwise separators that
// distinguish it from every other state — a harmonized state
// identifier set. HSI[s][s'] is the separator for the pair (s, s');
// HSI[s][s] is always nil. This is the unreduced construction: every
// pair contributes its own witness rather than searching for a
// smaller shared set.
func HSI(m *fsm.DFSM, opts splitting.Options) ([][][]fsm.Input, error) {
	tree, err := splitting.Build(m, opts)
	if err != nil {
		return nil, err
	}
	n := m.NumStates()
	out := make([][][]fsm.Input, n)
	for i := 0; i < n; i++ {
		out[i] = make([][]fsm.Input, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out[i][j] = tree.Separator[fsm.PairIndex(fsm.State(i), fsm.State(j))]
		}
	}
	return out, nil
}

func seqKey(seq []fsm.Input) string {
	parts := make([]string, len(seq))
	for i, in := range seq {
		parts[i] = strconv.Itoa(int(in))
	}
	return strings.Join(parts, ",")
}
