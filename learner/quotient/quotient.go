package quotient

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
)

// Learn builds a conjecture equivalent to teacher's black box by
// repeatedly growing one shared observation tree along a prefix set of
// candidate distinguishing sequences, merging tree nodes into states,
// and checking the result for self-consistency before ever issuing a
// real equivalence query. A genuine counterexample from the equivalence
// query extends the tree further and walks it for the first place the
// tree itself disagrees with the conjecture, turning that into a new
// distinguishing sequence for the next build.
func Learn(teacher blackbox.Teacher) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}

	kind := teacher.ModelType()
	numInputs := teacher.NumInputs()
	numOutputs := teacher.NumOutputs()
	probe := fsm.Create(kind, 0, numInputs, numOutputs)
	isOutputState := probe.IsOutputState()
	isOutputTransition := probe.IsOutputTransition()

	root := newQNode(fsm.DefaultOutput, nil)
	if isOutputState {
		root.stateOutput = teacher.ResetAndQuery(fsm.StoutInput)
	}

	pset := prefixset.New()
	for i := 0; i < numInputs; i++ {
		seq := []fsm.Input{fsm.Input(i)}
		if isOutputState {
			seq = append(seq, fsm.StoutInput)
		}
		pset.Insert(seq)
	}

	var stateNodes []*qnode
	for {
		var conjecture *fsm.DFSM
		for {
			conj, ok := buildQuotient(root, pset, &stateNodes, kind, numInputs, numOutputs, isOutputState, isOutputTransition, teacher)
			if ok {
				conjecture = conj
				break
			}
		}

		ce := teacher.EquivalenceQuery(conjecture)
		if len(ce) == 0 {
			return conjecture, nil
		}

		if isOutputState {
			ce = interleaveStout(ce)
		}
		extendAlongSeq(root, ce, isOutputState, teacher)
		processCounterexample(root, ce, stateNodes, conjecture, pset, isOutputState)
	}
}

// buildQuotient extends the tree along every maximal sequence currently
// in pset, assigns every reached node a state by merging it onto the
// first existing state node its subtree is not distinguished from (or
// minting a new state when none matches), builds a fresh conjecture from
// the resulting state nodes, and checks that conjecture is consistent
// with every other tree node that also converged onto one of its states.
// Returns ok == false, having inserted a new distinguishing sequence
// into pset, when that check fails; the caller retries.
func buildQuotient(
	root *qnode,
	pset *prefixset.PrefixSet,
	stateNodes *[]*qnode,
	kind fsm.Kind,
	numInputs, numOutputs int,
	isOutputState, isOutputTransition bool,
	teacher blackbox.Teacher,
) (conjecture *fsm.DFSM, ok bool) {
	candidates := pset.GetMaximalSequences()

	queue := []*qnode{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		extendAlongSet(node, candidates, isOutputState, teacher)

		if node.state != fsm.NullState && node == (*stateNodes)[node.state] {
			for i := 0; i < numInputs; i++ {
				queue = append(queue, node.succ[fsm.Input(i)])
			}
			continue
		}

		node.state = fsm.NullState
		for _, sn := range *stateNodes {
			if !areDistinguished(node, sn) {
				node.state = sn.state
				break
			}
		}
		if node.state == fsm.NullState {
			node.state = fsm.State(len(*stateNodes))
			*stateNodes = append(*stateNodes, node)
			for i := 0; i < numInputs; i++ {
				queue = append(queue, node.succ[fsm.Input(i)])
			}
		}
	}

	conjecture = fsm.Create(kind, 0, numInputs, numOutputs)
	for range *stateNodes {
		conjecture.AddState(fsm.DefaultOutput)
	}
	for _, sn := range *stateNodes {
		if isOutputState {
			conjecture.SetOutput(sn.state, sn.stateOutput)
		}
		for input, child := range sn.succ {
			out := fsm.DefaultOutput
			if isOutputTransition {
				out = child.incomingOutput
			}
			conjecture.SetTransition(sn.state, input, child.state, out)
		}
	}

	if !checkConsistency(*stateNodes, conjecture, pset, isOutputState) {
		return nil, false
	}
	return conjecture, true
}

// checkConsistency walks, from every state node's successor that isn't
// itself the canonical representative of its merged-onto state, the
// subtree reachable from there, relabeling each node's state to match
// the conjecture's own transition function and checking it is not
// distinguished from the conjecture's corresponding state node. The
// first distinguished pair found yields a new distinguishing sequence
// inserted into pset and an immediate false; exhausting every such
// subtree without finding one means the quotient is self-consistent.
func checkConsistency(stateNodes []*qnode, conjecture *fsm.DFSM, pset *prefixset.PrefixSet, isOutputState bool) bool {
	for _, sn := range stateNodes {
		for _, child := range sn.succ {
			if child == stateNodes[child.state] {
				continue
			}
			queue := []*qnode{child}
			for len(queue) > 0 {
				node := queue[0]
				queue = queue[1:]
				for in, succ := range node.succ {
					nextState := conjecture.GetNextState(node.state, in)
					if areDistinguished(succ, stateNodes[nextState]) {
						pset.Insert(getDistinguishingSeq(succ, stateNodes[nextState], isOutputState))
						return false
					}
					succ.state = nextState
					queue = append(queue, succ)
				}
			}
		}
	}
	return true
}

// processCounterexample walks ce from root alongside the conjecture's
// own state trace; at the first node whose subtree is distinguished
// from the state node it had converged onto, it inserts a fresh
// distinguishing sequence into pset for the next buildQuotient attempt.
func processCounterexample(root *qnode, ce []fsm.Input, stateNodes []*qnode, conjecture *fsm.DFSM, pset *prefixset.PrefixSet, isOutputState bool) {
	node := root
	for len(ce) > 0 {
		input := ce[0]
		ce = ce[1:]
		if input == fsm.StoutInput {
			continue
		}
		if node != stateNodes[node.state] && areDistinguished(node, stateNodes[node.state]) {
			pset.Insert(getDistinguishingSeq(node, stateNodes[node.state], isOutputState))
			return
		}
		next := node.succ[input]
		next.state = conjecture.GetNextState(node.state, input)
		node = next
	}
}

// interleaveStout rewrites ce, dropping any existing StoutInput
// elements, into input/StoutInput pairs — the form every sequence in
// this tree is kept in once the machine carries a state output.
func interleaveStout(ce []fsm.Input) []fsm.Input {
	out := make([]fsm.Input, 0, len(ce)*2)
	for _, in := range ce {
		if in == fsm.StoutInput {
			continue
		}
		out = append(out, in, fsm.StoutInput)
	}
	return out
}

// addNodes extends node along every element of seq in one batched
// query: a StoutInput element just records the current node's state
// output, any other input creates (or descends into) a successor.
func addNodes(node *qnode, seq []fsm.Input, teacher blackbox.Teacher) {
	teacher.ResetAndQuerySeq(node.accessSeq)
	outputSeq := teacher.QuerySeq(seq)
	accessSeq := append([]fsm.Input{}, node.accessSeq...)
	for idx, input := range seq {
		out := outputSeq[idx]
		if input == fsm.StoutInput {
			node.stateOutput = out
			continue
		}
		next := make([]fsm.Input, len(accessSeq)+1)
		copy(next, accessSeq)
		next[len(accessSeq)] = input
		accessSeq = next
		child := newQNode(out, accessSeq)
		node.succ[input] = child
		node = child
	}
}

// extendAlongSeq descends node along seq as far as existing successors
// already reach, then extends the tree with whatever remains via
// addNodes.
func extendAlongSeq(node *qnode, seq []fsm.Input, isOutputState bool, teacher blackbox.Teacher) {
	if len(seq) == 0 {
		return
	}
	child, ok := node.succ[seq[0]]
	if !ok {
		addNodes(node, seq, teacher)
		return
	}

	minLen := 1
	if isOutputState {
		minLen = 2
	}
	if len(seq) > minLen {
		rest := seq[1:]
		if isOutputState {
			rest = rest[1:]
		}
		extendAlongSeq(child, rest, isOutputState, teacher)
	}
}

// extendAlongSet extends node along every candidate sequence.
func extendAlongSet(node *qnode, candidates [][]fsm.Input, isOutputState bool, teacher blackbox.Teacher) {
	for _, seq := range candidates {
		extendAlongSeq(node, seq, isOutputState, teacher)
	}
}
