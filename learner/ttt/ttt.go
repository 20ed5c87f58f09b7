package ttt

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Learn builds a conjecture equivalent to teacher's black box by
// sifting access sequences through a discrimination tree, exactly as
// dtree does, but locates a counterexample's divergence point with a
// binary search over the conjecture's own predicted output instead of
// a left-to-right scan. This cuts the number of black-box queries
// spent processing one counterexample from O(|ce|) to O(log|ce|),
// which is the distinguishing idea of the TTT algorithm.
//
// The full TTT algorithm goes further: discriminators found this way
// start out "temporary" and a separate discriminator-finalization
// pass later replaces them with a shorter permanent one shared by as
// many states as possible, restructuring (and sometimes merging)
// subtrees of the discrimination tree. That finalization is involved
// tree surgery with its own correctness argument, and is dropped here
// in favor of treating every discriminator as permanent immediately,
// the same way dtree does — this learner keeps TTT's counterexample
// localization but not its tree-rebalancing.
func Learn(teacher blackbox.Teacher) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}

	kind := teacher.ModelType()
	conjecture := fsm.Create(kind, 0, teacher.NumInputs(), teacher.NumOutputs())
	root := newRoot()
	var stateNodes []*node

	if conjecture.IsOutputState() {
		root.sequence = []fsm.Input{fsm.StoutInput}
		out := teacher.Query(fsm.StoutInput)
		st, _ := conjecture.AddState(out)
		leaf := createNode(root, nil, []fsm.Output{out})
		leaf.state = st
		stateNodes = append(stateNodes, leaf)
	} else {
		st, _ := conjecture.AddState(fsm.DefaultOutput)
		root.state = st
		stateNodes = append(stateNodes, root)
	}

	addNewTransitions(0, root, &stateNodes, conjecture, teacher)

	for {
		ce := teacher.EquivalenceQuery(conjecture)
		if len(ce) == 0 {
			return conjecture, nil
		}
		processCE(ce, root, &stateNodes, conjecture, teacher)
	}
}

// sift walks s down from root, following the child matching the
// response observed to each internal node's discriminator, creating a
// fresh leaf the first time a response isn't already a known child.
func sift(root *node, s []fsm.Input, teacher blackbox.Teacher) *node {
	cur := root
	for cur.state == fsm.NullState {
		teacher.ResetAndQuerySeq(s)
		out := teacher.QuerySeq(cur.sequence)
		next, ok := cur.succ[outKey(out)]
		if !ok {
			return createNode(cur, append([]fsm.Input{}, s...), out)
		}
		cur = next
	}
	return cur
}

// addState assigns n a fresh conjecture state, recording its output
// when the machine kind carries state outputs.
func addState(n *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	st, _ := conjecture.AddState(fsm.DefaultOutput)
	n.state = st
	*stateNodes = append(*stateNodes, n)
	if conjecture.IsOutputState() {
		teacher.ResetAndQuerySeq(n.sequence)
		out := teacher.Query(fsm.StoutInput)
		conjecture.SetOutput(st, out)
	}
}

// addNewTransitions fills in every input's transition for every state
// from startState onward, sifting newly-discovered successors (and
// their own transitions, in turn, since stateNodes grows as the loop
// runs) into the tree.
func addNewTransitions(startState int, dt *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	numInputs := conjecture.NumInputs()
	for state := startState; state < len(*stateNodes); state++ {
		base := (*stateNodes)[state].sequence
		for i := 0; i < numInputs; i++ {
			prefix := append(append([]fsm.Input{}, base...), fsm.Input(i))
			dtNode := sift(dt, prefix, teacher)
			if dtNode.state == fsm.NullState {
				addState(dtNode, stateNodes, conjecture, teacher)
			}
			transOut := fsm.DefaultOutput
			if conjecture.IsOutputTransition() {
				out := teacher.ResetAndQuerySeq(prefix)
				transOut = out[len(out)-1]
			}
			conjecture.SetTransition(fsm.State(state), fsm.Input(i), dtNode.state, transOut)
		}
	}
}

// stripStout drops every StoutInput element from seq, mirroring the
// rest of this learner's treatment of the pseudo-input as an
// observation that never advances state and never takes part in
// access-sequence arithmetic.
func stripStout(seq []fsm.Input) []fsm.Input {
	out := make([]fsm.Input, 0, len(seq))
	for _, in := range seq {
		if in != fsm.StoutInput {
			out = append(out, in)
		}
	}
	return out
}

// processCE locates the single state responsible for a counterexample
// via binary search (see localizeDivergence) and resolves the
// resulting divergence the same way dtree resolves one found by a
// linear scan: either the revealing prefix sifts to a brand-new leaf,
// in which case it becomes a new conjecture state, or it sifts to an
// existing leaf that disagrees with the conjecture's own transition,
// in which case the conflated state is split.
func processCE(ce []fsm.Input, dt *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	trimmed := stripStout(ce)
	if len(trimmed) == 0 {
		return
	}

	state, prefix, nextState, dtNode := localizeDivergence(trimmed, dt, *stateNodes, conjecture, teacher)
	if dtNode.state == fsm.NullState {
		addState(dtNode, stateNodes, conjecture, teacher)
		addNewTransitions(int((*stateNodes)[len(*stateNodes)-1].state), dt, stateNodes, conjecture, teacher)
		return
	}
	if dtNode.state != nextState {
		splitState(state, prefix, nextState, dtNode, dt, stateNodes, conjecture, teacher)
	}
}

// localizeDivergence finds, in O(log n) queries, the conjecture state
// whose outgoing transition on ce's next input leads it astray: the
// boundary index i such that replaying ce[i:] from the state the
// conjecture reaches after ce[:i] still matches the conjecture's own
// prediction, while replaying ce[i-1:] from the previous state does
// not. It returns that boundary state, the prefix (access sequence
// plus the one diverging input) that reveals the correct successor,
// the conjecture's current (wrong) idea of that successor, and the
// tree leaf the prefix actually sifts to.
func localizeDivergence(ce []fsm.Input, dt *node, stateNodes []*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) (fsm.State, []fsm.Input, fsm.State, *node) {
	confOutput := conjecture.GetOutputAlongPath(0, ce)

	// agrees(i) replays ce[i:] from the access sequence of the state
	// the conjecture claims is reached after ce[:i], and checks
	// whether that matches the conjecture's own predicted suffix
	// output exactly. This is false at i=0 (ce is only returned as a
	// counterexample because the conjecture's full prediction for it
	// disagrees with reality) and trivially true at i=len(ce), and is
	// monotone in between, which is what makes the binary search
	// below valid.
	agrees := func(i int) bool {
		if i >= len(ce) {
			return true
		}
		s := conjecture.GetEndPathState(0, ce[:i])
		teacher.ResetAndQuerySeq(stateNodes[s].sequence)
		out := teacher.QuerySeq(ce[i:])
		return equalOutputSeq(out, confOutput[i:])
	}

	lo, hi := 0, len(ce)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if agrees(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	state := conjecture.GetEndPathState(0, ce[:lo])
	input := ce[lo]
	prefix := append(append([]fsm.Input{}, stateNodes[state].sequence...), input)
	dtNode := sift(dt, prefix, teacher)
	nextState := conjecture.GetNextState(state, input)
	return state, prefix, nextState, dtNode
}

// splitState handles a state/tree divergence: currState's leaf is
// turned into an internal node discriminating between currState's
// prior behavior and the newly discovered state's behavior, using a
// distinguishing sequence derived from the tree's structure (one
// input, prepended to the suffix separating the two candidate leaves'
// nearest common ancestor).
//
// The new state's access sequence is set to the full prefix that
// revealed it (rather than reusing currState's own prefix), so that
// later transition queries from the new state actually probe it.
func splitState(currState fsm.State, prefix []fsm.Input, nextState fsm.State, dtNode *node, dt *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	lca := lowestCommonAncestor((*stateNodes)[nextState], dtNode)
	distSeq := append([]fsm.Input{prefix[len(prefix)-1]}, lca.sequence...)

	refNode := (*stateNodes)[currState]
	access := append([]fsm.Input{}, prefix[:len(prefix)-1]...)

	teacher.ResetAndQuerySeq(access)
	out1 := teacher.QuerySeq(distSeq)
	leaf1 := createNode(refNode, access, out1)
	leaf1.state = currState
	(*stateNodes)[currState] = leaf1

	teacher.ResetAndQuerySeq(prefix)
	out2 := teacher.QuerySeq(distSeq)
	leaf2 := createNode(refNode, append([]fsm.Input{}, prefix...), out2)
	addState(leaf2, stateNodes, conjecture, teacher)

	refNode.sequence = distSeq
	refNode.state = fsm.NullState

	updateConjecture(currState, dt, stateNodes, conjecture, teacher)
}

// updateConjecture re-sifts every transition that currently targets
// splittedState against the freshly split discriminator, redirecting
// it to the new state where the split reveals it belongs there, then
// fills in the new state's own outgoing transitions.
func updateConjecture(splittedState fsm.State, dt *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	newState := (*stateNodes)[len(*stateNodes)-1].state
	distNode := (*stateNodes)[splittedState].parent
	numInputs := conjecture.NumInputs()

	for state := fsm.State(0); state < newState; state++ {
		for i := 0; i < numInputs; i++ {
			if conjecture.GetNextState(state, fsm.Input(i)) != splittedState {
				continue
			}
			prefix := append(append([]fsm.Input{}, (*stateNodes)[state].sequence...), fsm.Input(i))
			teacher.ResetAndQuerySeq(prefix)
			out := teacher.QuerySeq(distNode.sequence)

			transOut := fsm.DefaultOutput
			if conjecture.IsOutputTransition() {
				transOut = conjecture.GetOutput(state, fsm.Input(i))
			}

			next, ok := distNode.succ[outKey(out)]
			if !ok {
				leaf := createNode(distNode, append([]fsm.Input{}, prefix...), out)
				addState(leaf, stateNodes, conjecture, teacher)
				conjecture.SetTransition(state, fsm.Input(i), leaf.state, transOut)
			} else if next.state != splittedState {
				conjecture.SetTransition(state, fsm.Input(i), next.state, transOut)
			}
		}
	}
	addNewTransitions(int(newState), dt, stateNodes, conjecture, teacher)
}
