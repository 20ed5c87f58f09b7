package splitting

import "github.com/katalvlaran/fsmlearn/fsm"

// Options configures Build.
type Options struct {
	// OmitUnnecessaryStoutInputs suppresses the StoutInput marker that
	// would otherwise be inserted between a prepended input and a
	// separator sequence that does not already start with one, on
	// machines that carry state outputs. Default false (markers kept).
	OmitUnnecessaryStoutInputs bool

	// AllowInvalidInputs lets Build leave a pair of states that no
	// sequence separates without a separator instead of returning
	// ErrNotReduced, so a splitting tree can still be produced for a
	// machine that is not fully reduced; a block in which no pair has a
	// separator becomes a leaf with InvalidInputUsed set. Inputs are not
	// scored or penalized. Default false.
	AllowInvalidInputs bool
}

type link struct {
	pair  int
	input fsm.Input
}

// computeSeparators runs a backward breadth-first search over state
// pairs: the frontier is every pair already separated by an observed
// output (state output, if the kind carries one, else the output of
// some input); pairs that are not yet separated record a back-link to
// the pair their own successors form under each input, and are
// resolved as soon as that successor pair resolves.
func computeSeparators(m *fsm.DFSM, opts Options) (sep [][]fsm.Input, err error) {
	n := m.NumStates()
	total := fsm.NumPairs(n)
	sep = make([][]fsm.Input, total)
	separated := make([]bool, total)
	links := make(map[int][]link)

	var queue []int
	hasStateOutput := m.IsOutputState()

	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			p := fsm.PairIndex(fsm.State(i), fsm.State(j))
			if hasStateOutput && m.GetOutput(fsm.State(i), fsm.StoutInput) != m.GetOutput(fsm.State(j), fsm.StoutInput) {
				sep[p] = []fsm.Input{fsm.StoutInput}
				separated[p] = true
				queue = append(queue, p)
				continue
			}
			found := false
			for x := 0; x < m.NumInputs(); x++ {
				oi := m.GetOutput(fsm.State(i), fsm.Input(x))
				oj := m.GetOutput(fsm.State(j), fsm.Input(x))
				if oi != oj {
					sep[p] = []fsm.Input{fsm.Input(x)}
					separated[p] = true
					queue = append(queue, p)
					found = true
					break
				}
			}
			if found {
				continue
			}
			for x := 0; x < m.NumInputs(); x++ {
				ni := m.GetNextState(fsm.State(i), fsm.Input(x))
				nj := m.GetNextState(fsm.State(j), fsm.Input(x))
				if ni == fsm.NullState || nj == fsm.NullState || ni == nj {
					continue
				}
				target := fsm.PairIndex(ni, nj)
				links[target] = append(links[target], link{pair: p, input: fsm.Input(x)})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, lk := range links[p] {
			if separated[lk.pair] {
				continue
			}
			suffix := sep[p]
			needStout := hasStateOutput && !opts.OmitUnnecessaryStoutInputs &&
				(len(suffix) == 0 || suffix[0] != fsm.StoutInput)
			newSeq := make([]fsm.Input, 0, len(suffix)+2)
			newSeq = append(newSeq, lk.input)
			if needStout {
				newSeq = append(newSeq, fsm.StoutInput)
			}
			newSeq = append(newSeq, suffix...)
			sep[lk.pair] = newSeq
			separated[lk.pair] = true
			queue = append(queue, lk.pair)
		}
	}

	for p := 0; p < total; p++ {
		if !separated[p] {
			if opts.AllowInvalidInputs {
				continue
			}
			return nil, ErrNotReduced
		}
	}
	return sep, nil
}
