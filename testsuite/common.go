package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
	"github.com/katalvlaran/fsmlearn/sequence"
)

// identifierFunc returns the state-identification fragments to append
// after reaching state s. Most methods return a single fragment; W,
// HSI-derived and Wp-derived methods may return several (the union of
// which suffices to confirm s's identity).
type identifierFunc func(s fsm.State) [][]fsm.Input

// buildSuite emits q·v·w for every q in transitionCover, every v in
// traversalSet, and every w identifierAt returns for the state reached
// by q·v, then minimizes the result by prefix filtering.
func buildSuite(m *fsm.DFSM, transitionCover, traversalSet [][]fsm.Input, identifierAt identifierFunc) [][]fsm.Input {
	ps := prefixset.New()
	for _, q := range transitionCover {
		qEnd := m.GetEndPathState(m.InitialState(), q)
		for _, v := range traversalSet {
			qv := concat(q, v)
			end := m.GetEndPathState(qEnd, v)
			ws := identifierAt(end)
			if len(ws) == 0 {
				ps.Insert(qv)
				continue
			}
			for _, w := range ws {
				ps.Insert(concat(qv, w))
			}
		}
	}
	return ps.GetMaximalSequences()
}

func concat(a, b []fsm.Input) []fsm.Input {
	out := make([]fsm.Input, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// traversalSetFor is the shared V computation: every method in this
// package uses sequence.TraversalSet at depth opts.ExtraStates, plus
// one extra level so a suite with extraStates = 0 still probes one
// input beyond the transition cover (matching the template's "q·v·w"
// shape when v is allowed to be empty).
func traversalSetFor(m *fsm.DFSM, opts Options) [][]fsm.Input {
	depth := opts.ExtraStates + 1
	v := sequence.TraversalSet(m, depth)
	return append([][]fsm.Input{{}}, v...)
}
