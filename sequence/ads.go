package sequence

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// AdaptiveDistinguishingSet derives, for every state, the adaptive
// distinguishing sequence that identifies it: built by walking the
// splitting tree from that state's leaf (splitting.Tree.CurNode) back
// up to the root, collecting each ancestor's distinguishing input in
// root-to-leaf order. Two states share a prefix for as long as their
// leaves share an ancestor — that shared prefix is exactly what makes
// the set "adaptive": the tester only needs to have committed to the
// next input once prior responses have narrowed the candidates down
// to that ancestor's block.
//
// Returns splitting.ErrNotReduced if m is not fully reduced (an
// adaptive distinguishing sequence requires every state pair to be
// separable).
func AdaptiveDistinguishingSet(m *fsm.DFSM) ([][]fsm.Input, error) {
	tree, err := splitting.Build(m, splitting.Options{})
	if err != nil {
		return nil, err
	}

	out := make([][]fsm.Input, m.NumStates())
	for s := 0; s < m.NumStates(); s++ {
		out[s] = pathToState(tree, fsm.State(s))
	}
	return out, nil
}

// pathToState reconstructs the input sequence from the root of tree to
// the leaf holding state, by walking Parent pointers and, at each
// step, finding which output key in the parent's Children map led to
// the child we came from.
func pathToState(tree *splitting.Tree, state fsm.State) []fsm.Input {
	idx := tree.CurNode[state]
	var rev []fsm.Input
	for idx != 0 {
		node := tree.Nodes[idx]
		parent := tree.Nodes[node.Parent]
		rev = append(rev, parent.DistinguishingInput)
		idx = node.Parent
	}
	out := make([]fsm.Input, len(rev))
	for i, x := range rev {
		out[len(rev)-1-i] = x
	}
	return out
}
