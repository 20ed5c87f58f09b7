package splitting

import (
	"sort"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// Build constructs the splitting tree of m.
//
// A first pass computes a shortest separating sequence for every state
// pair (computeSeparators). A second pass turns that into a tree: at
// each block of size > 1, it picks the pair of still-conflated states
// with the globally shortest known separator, and uses the FIRST
// symbol of that separator as this node's distinguishing input.
// Applying a real (non-STOUT) input transitions the whole block to its
// image under that input, grouped by observed output; a STOUT first
// symbol (the pair differs by state output alone) instead partitions
// the SAME block by state output, with no transition. Children are
// recursed on until every block is a singleton.
//
// Termination is guaranteed: whichever pair (u,v) is chosen either
// separates immediately into different output groups (done), or stays
// together in one child whose corresponding image pair's separator is
// exactly one symbol shorter than the one that chose this node's
// input, so recursion depth is bounded by the longest pairwise
// separator.
func Build(m *fsm.DFSM, opts Options) (*Tree, error) {
	if !m.IsCompact() {
		return nil, ErrNotCompact
	}
	sep, err := computeSeparators(m, opts)
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

func (t *Tree) buildNode(parent int, block []fsm.State) int {
	idx := len(t.Nodes)
	node := &Node{
		Block:               block,
		Parent:              parent,
		DistinguishingInput: fsm.StoutInput,
		Children:            map[fsm.Output]int{},
	}
	t.Nodes = append(t.Nodes, node)
	for _, s := range block {
		t.CurNode[s] = idx
	}
	if len(block) <= 1 {
		return idx
	}

	bestLen := -1
	var bestX fsm.Input
	for i := 0; i < len(block); i++ {
		for j := i + 1; j < len(block); j++ {
			p := fsm.PairIndex(block[i], block[j])
			s := t.Separator[p]
			if len(s) == 0 {
				continue
			}
			if bestLen == -1 || len(s) < bestLen {
				bestLen = len(s)
				bestX = s[0]
			}
		}
	}
	if bestLen == -1 {
		node.InvalidInputUsed = true
		node.UndistinguishedStates = len(block)
		return idx
	}
	node.DistinguishingInput = bestX

	outputOf := make(map[fsm.State]fsm.Output, len(block))
	for _, s := range block {
		outputOf[s] = t.Machine.GetOutput(s, bestX)
	}
	t.markSeparated(block, outputOf, idx)

	groups := groupStatesByOutput(t.Machine, block, bestX)
	outputs := make([]fsm.Output, 0, len(groups))
	for o := range groups {
		outputs = append(outputs, o)
	}
	sort.Slice(outputs, func(i, j int) bool { return outputs[i] < outputs[j] })
	for _, o := range outputs {
		child := t.buildNode(idx, groups[o])
		node.Children[o] = child
	}
	return idx
}

// groupStatesByOutput partitions block by the output observed on input
// x: for x == StoutInput the groups hold the original states (no
// transition happens); otherwise each group holds the sorted, deduped
// image states {GetNextState(s,x) : s in block with that output}.
func groupStatesByOutput(m *fsm.DFSM, block []fsm.State, x fsm.Input) map[fsm.Output][]fsm.State {
	byOutput := map[fsm.Output]map[fsm.State]struct{}{}
	for _, s := range block {
		o := m.GetOutput(s, x)
		var member fsm.State
		if x == fsm.StoutInput {
			member = s
		} else {
			target := m.GetNextState(s, x)
			if target == fsm.NullState {
				continue // absent transition: only reachable with AllowInvalidInputs
			}
			member = target
		}
		if byOutput[o] == nil {
			byOutput[o] = map[fsm.State]struct{}{}
		}
		byOutput[o][member] = struct{}{}
	}
	out := make(map[fsm.Output][]fsm.State, len(byOutput))
	for o, set := range byOutput {
		list := make([]fsm.State, 0, len(set))
		for s := range set {
			list = append(list, s)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		out[o] = list
	}
	return out
}

// markSeparated records, for every pair of original block states whose
// outputOf differs, that they were separated at node idx. Pairs that
// share the same output stay together in one child and are left for a
// deeper recursive call to resolve.
func (t *Tree) markSeparated(block []fsm.State, outputOf map[fsm.State]fsm.Output, idx int) {
	for i := 0; i < len(block); i++ {
		for j := i + 1; j < len(block); j++ {
			if outputOf[block[i]] != outputOf[block[j]] {
				t.Distinguished[fsm.PairIndex(block[i], block[j])] = idx
			}
		}
	}
}
