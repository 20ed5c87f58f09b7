package obspack

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Learn builds a conjecture equivalent to teacher's black box using a
// discrimination tree of states, each carrying its own local
// observation table. New states discovered while wiring a state's
// outgoing transitions are queued and drained breadth-first before
// any equivalence query is issued; cached rows are only re-checked
// against a component's canonical row once that component's column
// set grows, which is when a stale merge can first be detected.
func Learn(teacher blackbox.Teacher, policy CEPolicy) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}

	kind := teacher.ModelType()
	numInputs := teacher.NumInputs()
	conjecture := fsm.Create(kind, 0, numInputs, teacher.NumOutputs())
	dt := newRoot()
	var stateNodes []*node
	var comps []*component
	var pending []fsm.State

	if conjecture.IsOutputState() {
		dt.sequence = []fsm.Input{fsm.StoutInput}
		out := teacher.Query(fsm.StoutInput)
		st, _ := conjecture.AddState(out)
		leaf := createNode(dt, nil, []fsm.Output{out})
		leaf.state = st
		stateNodes = append(stateNodes, leaf)
	} else {
		st, _ := conjecture.AddState(fsm.DefaultOutput)
		dt.state = st
		stateNodes = append(stateNodes, dt)
	}
	comps = append(comps, newComponentFromPrefix(nil, numInputs, conjecture.IsOutputState()))
	pending = append(pending, 0)

	for {
		for len(pending) > 0 {
			state := pending[0]
			pending = pending[1:]
			for i := 0; i < numInputs; i++ {
				extendStateByInput(state, fsm.Input(i), dt, &stateNodes, &comps, &pending, conjecture, teacher)
			}
		}
		completeComponents(&stateNodes, &comps, &pending, conjecture, teacher)
		if len(pending) > 0 {
			continue
		}

		ce := teacher.EquivalenceQuery(conjecture)
		if len(ce) == 0 {
			return conjecture, nil
		}
		processCE(ce, policy, conjecture, stateNodes, comps, teacher)
	}
}

// addNewState registers n (a fresh discrimination-tree leaf) as a
// brand-new conjecture state, records its output when the kind
// carries state outputs, and queues it for outgoing-transition
// discovery.
func addNewState(n *node, stateNodes *[]*node, pending *[]fsm.State, conjecture *fsm.DFSM, teacher blackbox.Teacher) fsm.State {
	st, _ := conjecture.AddState(fsm.DefaultOutput)
	n.state = st
	*stateNodes = append(*stateNodes, n)
	if conjecture.IsOutputState() {
		teacher.ResetAndQuerySeq(n.sequence)
		out := teacher.Query(fsm.StoutInput)
		conjecture.SetOutput(st, out)
	}
	*pending = append(*pending, st)
	return st
}

// extendStateByInput wires the transition out of state on input,
// sifting the resulting access sequence to find (or create) its
// target state, and checking a component's cached status for that
// sequence when it lands in an existing, different state.
func extendStateByInput(state fsm.State, input fsm.Input, dt *node, stateNodes *[]*node, comps *[]*component, pending *[]fsm.State, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	prefix := append(append([]fsm.Input{}, (*stateNodes)[state].sequence...), input)
	dtNode := sift(dt, prefix, teacher)
	target := dtNode.state

	if dtNode.state == fsm.NullState {
		target = addNewState(dtNode, stateNodes, pending, conjecture, teacher)
		*comps = append(*comps, newComponentFromPrefix(prefix, conjecture.NumInputs(), conjecture.IsOutputState()))
	} else if ot := (*comps)[dtNode.state]; !equalInputSeq(prefix, ot.access) {
		key := seqKeyInputs(prefix)
		if ot.extra[key] == nil {
			fillCanonicalRow(teacher, ot)
			row, sepIdx, closed := checkRow(teacher, prefix, ot.row, ot.E, 0)
			if closed {
				ot.extra[key] = &extraRow{prefix: append([]fsm.Input{}, prefix...), row: row}
			} else {
				target = splitComponent(stateNodes, comps, pending, dtNode, ot, prefix, row, sepIdx, conjecture, teacher)
			}
		}
	}

	transOut := fsm.DefaultOutput
	if conjecture.IsOutputTransition() {
		out := teacher.ResetAndQuerySeq(prefix)
		transOut = out[len(out)-1]
	}
	conjecture.SetTransition(state, input, target, transOut)
}

// fillCanonicalRow extends a component's reference row up to its
// current column count.
func fillCanonicalRow(teacher blackbox.Teacher, c *component) {
	for e := len(c.row); e < len(c.E); e++ {
		teacher.ResetAndQuerySeq(c.access)
		c.row = append(c.row, teacher.QuerySeq(c.E[e]))
	}
}

// checkRow queries prefix against every column of E from index from
// onward, returning the row fragment observed, the index of the
// first column where it disagrees with refRow (or -1 if none), and
// whether it agreed on every checked column.
func checkRow(teacher blackbox.Teacher, prefix []fsm.Input, refRow [][]fsm.Output, E [][]fsm.Input, from int) (row [][]fsm.Output, sepIdx int, closed bool) {
	closed = true
	sepIdx = -1
	for e := from; e < len(E); e++ {
		teacher.ResetAndQuerySeq(prefix)
		out := teacher.QuerySeq(E[e])
		row = append(row, out)
		if closed && !equalOutputSeq(out, refRow[e]) {
			sepIdx = e
			closed = false
		}
	}
	return
}

// completeComponents extends every component's canonical row to
// match its current column count, then re-checks any cached row that
// hasn't yet been extended the same distance, splitting off a new
// state wherever a cached row that used to match now disagrees.
func completeComponents(stateNodes *[]*node, comps *[]*component, pending *[]fsm.State, conjecture *fsm.DFSM, teacher blackbox.Teacher) {
	for i := 0; i < len(*comps); i++ {
		ot := (*comps)[i]
		if len(ot.row) >= len(ot.E) && len(ot.extra) == 0 {
			continue
		}
		fillCanonicalRow(teacher, ot)

		for key, er := range ot.extra {
			if len(er.row) >= len(ot.E) {
				continue
			}
			row, sepIdx, closed := checkRow(teacher, er.prefix, ot.row, ot.E, len(er.row))
			full := append(append([][]fsm.Output{}, er.row...), row...)
			if closed {
				er.row = full
				continue
			}
			delete(ot.extra, key)
			dtNode := (*stateNodes)[i]
			newState := splitComponent(stateNodes, comps, pending, dtNode, ot, er.prefix, full, sepIdx, conjecture, teacher)
			rewireAfterSplit(er.prefix, newState, *stateNodes, conjecture)
		}
	}
}

// splitComponent turns dtNode (a leaf) into an internal discriminator
// node on column sepIdx, keeping the old state on one branch and
// routing prefix's newly-revealed state onto a fresh branch.
func splitComponent(stateNodes *[]*node, comps *[]*component, pending *[]fsm.State, dtNode *node, ot *component, prefix []fsm.Input, row [][]fsm.Output, sepIdx int, conjecture *fsm.DFSM, teacher blackbox.Teacher) fsm.State {
	movedOutput := ot.row[sepIdx]
	oldLeaf := createNode(dtNode, append([]fsm.Input{}, dtNode.sequence...), movedOutput)
	oldLeaf.state = dtNode.state
	(*stateNodes)[dtNode.state] = oldLeaf

	dtNode.sequence = append([]fsm.Input{}, ot.E[sepIdx]...)
	dtNode.state = fsm.NullState

	newLeaf := createNode(dtNode, append([]fsm.Input{}, prefix...), row[sepIdx])
	newState := addNewState(newLeaf, stateNodes, pending, conjecture, teacher)

	*comps = append(*comps, &component{
		access: append([]fsm.Input{}, prefix...),
		E:      append([][]fsm.Input{}, ot.E...),
		row:    row,
		extra:  map[string]*extraRow{},
	})
	return newState
}

// rewireAfterSplit repoints the one transition known to have produced
// prefix (access(fromState) + input) at newState, used when a
// previously-cached row is only found to be stale after a later
// split — at discovery time the transition is wired directly, so no
// rewiring is needed there.
func rewireAfterSplit(prefix []fsm.Input, newState fsm.State, stateNodes []*node, conjecture *fsm.DFSM) {
	if len(prefix) == 0 {
		return
	}
	input := prefix[len(prefix)-1]
	accessPart := prefix[:len(prefix)-1]
	for s, n := range stateNodes {
		if !equalInputSeq(n.sequence, accessPart) {
			continue
		}
		transOut := fsm.DefaultOutput
		if conjecture.IsOutputTransition() {
			transOut = conjecture.GetOutput(fsm.State(s), input)
		}
		conjecture.SetTransition(fsm.State(s), input, newState, transOut)
		return
	}
}

// localizeState walks ce through the conjecture, comparing its
// prediction (via each visited state's access sequence plus the
// remaining suffix) against the black box's actual response, and
// returns the state at the point of first divergence together with
// the still-unconsumed suffix from there.
func localizeState(ce []fsm.Input, conjecture *fsm.DFSM, stateNodes []*node, teacher blackbox.Teacher) (fsm.State, []fsm.Input) {
	bbOutput := teacher.ResetAndQuerySeq(ce)
	state := fsm.State(0)
	var prefix []fsm.Input
	suffix := append([]fsm.Input{}, ce...)

	for _, input := range ce {
		if input == fsm.StoutInput {
			if len(suffix) > 0 {
				suffix = suffix[1:]
			}
			continue
		}
		if !equalInputSeq(prefix, stateNodes[state].sequence) {
			teacher.ResetAndQuerySeq(stateNodes[state].sequence)
			out := teacher.QuerySeq(suffix)
			if !equalOutputSeq(bbOutput, out) {
				break
			}
		}
		prefix = append(prefix, input)
		state = conjecture.GetNextState(state, input)
		if len(bbOutput) > 1 {
			bbOutput = bbOutput[1:]
		}
		if len(suffix) > 0 {
			suffix = suffix[1:]
		}
	}
	return state, suffix
}

// processCE distributes a counterexample's distinguishing power into
// component column sets per policy.
func processCE(ce []fsm.Input, policy CEPolicy, conjecture *fsm.DFSM, stateNodes []*node, comps []*component, teacher blackbox.Teacher) {
	if policy == AllGlobally {
		suffix := append([]fsm.Input{}, ce...)
		var newCols [][]fsm.Input
		for len(suffix) > 0 && !containsSeq(comps[0].E, suffix) {
			newCols = append(newCols, append([]fsm.Input{}, suffix...))
			suffix = suffix[1:]
		}
		for _, c := range comps {
			c.E = append(c.E, newCols...)
		}
		return
	}

	state, suffix := localizeState(ce, conjecture, stateNodes, teacher)
	if policy == OneGlobally {
		for _, c := range comps {
			c.E = append(c.E, append([]fsm.Input{}, suffix...))
		}
		return
	}
	comps[state].E = append(comps[state].E, append([]fsm.Input{}, suffix...))
}
