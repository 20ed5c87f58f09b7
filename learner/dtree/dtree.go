package dtree

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Learn builds a conjecture equivalent to teacher's black box by
// sifting access sequences through a discrimination tree, querying
// teacher for equivalence once every known state's transitions are
// filled in, and patching the tree on every counterexample.
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
		updateTree(ce, root, &stateNodes, conjecture, teacher)
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

// addNewTransitions fills in every input's transition for every
// state from startState onward, sifting newly-discovered successors
// (and their own transitions, in turn, since stateNodes grows as the
// loop runs) into the tree.
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

// updateTree walks ce from the conjecture's initial state, comparing
// the conjecture's prediction against the tree's sifted answer at
// every step, and stops at the first divergence to split the
// offending state.
func updateTree(ce []fsm.Input, dt *node, stateNodes *[]*node, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	currState := fsm.State(0)
	var prefix []fsm.Input
	for _, input := range ce {
		if input == fsm.StoutInput {
			continue
		}
		nextState := conjecture.GetNextState(currState, input)
		prefix = append(prefix, input)

		dtNode := sift(dt, prefix, teacher)
		if dtNode.state == fsm.NullState {
			addState(dtNode, stateNodes, conjecture, teacher)
			addNewTransitions(int(dtNode.state), dt, stateNodes, conjecture, teacher)
			return
		}
		if nextState != dtNode.state {
			splitState(currState, prefix, nextState, dtNode, dt, stateNodes, conjecture, teacher)
			return
		}
		currState = nextState
	}
}

// splitState handles a state/tree divergence: currState's leaf is
// turned into an internal node discriminating between currState's
// prior behavior and the newly discovered state's behavior, using a
// distinguishing sequence derived from the tree's structure (one
// input, prepended to the suffix separating the two candidate
// leaves' nearest common ancestor).
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
