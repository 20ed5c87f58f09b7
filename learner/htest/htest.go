package htest

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/otree"
	"github.com/katalvlaran/fsmlearn/testsuite"
)

// Learn builds a conjecture equivalent to teacher's black box using
// an observation tree: each newly explored tree node's row over a
// growing suffix set E is compared against every known state's
// canonical row to decide whether the node converges onto an
// existing state or reveals a new one. Once every known state's
// transitions are filled in, the conjecture is checked — by
// membership queries alone — against a testsuite.H or testsuite.SPY
// suite of increasing extraStates depth; a disagreement sends the
// learner back to identification, otherwise the depth bound grows
// until maxExtraStates is reached and the conjecture is accepted.
func Learn(teacher blackbox.Teacher, variant Variant, maxExtraStates int) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}
	if maxExtraStates < 1 {
		maxExtraStates = 1
	}

	l := &learnState{
		teacher:    teacher,
		tree:       otree.New(),
		conjecture: fsm.Create(teacher.ModelType(), 0, teacher.NumInputs(), teacher.NumOutputs()),
	}
	// Seed E with every single-input probe so states are told apart
	// by their one-step output profile from the very first round,
	// instead of starting from an empty E under which every node
	// trivially "matches" whichever state happens to exist first.
	for i := 0; i < teacher.NumInputs(); i++ {
		l.e = append(l.e, []fsm.Input{fsm.Input(i)})
	}

	root := l.tree.Root()
	l.addState(root)
	l.fillTransitions(0)

	for k := 1; ; {
		ce := findCounterexample(l.conjecture, variant, k, teacher)
		if ce == nil {
			if k >= maxExtraStates {
				return l.conjecture, nil
			}
			k++
			continue
		}
		l.resolveCounterexample(ce)
	}
}

// learnState bundles the mutable state threaded through
// identification: the observation tree, the growing suffix set E,
// each known state's canonical row over E, the tree node each state
// was first identified at, and every tree node currently converged
// onto some state (kept so a later E-growth can recheck and, if
// needed, un-converge one).
type learnState struct {
	teacher    blackbox.Teacher
	tree       *otree.Tree
	conjecture *fsm.DFSM
	e          [][]fsm.Input
	canonRow   [][][]fsm.Output
	nodeOf     []otree.NodeIndex
	assigned   []otree.NodeIndex
}

// row queries access against every column of l.e, returning the
// observed output for each.
func (l *learnState) row(access []fsm.Input) [][]fsm.Output {
	row := make([][]fsm.Output, len(l.e))
	for i, suffix := range l.e {
		l.teacher.ResetAndQuerySeq(access)
		row[i] = l.teacher.QuerySeq(suffix)
	}
	return row
}

// identify returns the known state whose canonical row matches
// access's row over E, or fsm.NullState if none does.
func (l *learnState) identify(access []fsm.Input) (fsm.State, [][]fsm.Output) {
	row := l.row(access)
	for s, canon := range l.canonRow {
		if equalRow(row, canon) {
			return fsm.State(s), row
		}
	}
	return fsm.NullState, row
}

// addState registers idx as a brand-new conjecture state, recording
// its canonical row, its state output when the machine kind carries
// one, and its place in nodeOf/assigned.
func (l *learnState) addState(idx otree.NodeIndex) fsm.State {
	node := l.tree.Node(idx)
	st, _ := l.conjecture.AddState(fsm.DefaultOutput)
	node.State = st
	l.nodeOf = append(l.nodeOf, idx)
	l.canonRow = append(l.canonRow, l.row(node.AccessSequence))
	l.assigned = append(l.assigned, idx)

	if l.conjecture.IsOutputState() {
		l.teacher.ResetAndQuerySeq(node.AccessSequence)
		out := l.teacher.Query(fsm.StoutInput)
		l.conjecture.SetOutput(st, out)
	}
	return st
}

// fillTransitions wires every input's transition for every state from
// startState onward, extending the observation tree and identifying
// (or creating) each successor.
func (l *learnState) fillTransitions(startState int) {
	numInputs := l.conjecture.NumInputs()
	for state := startState; state < len(l.nodeOf); state++ {
		parent := l.nodeOf[state]
		for i := 0; i < numInputs; i++ {
			child := l.tree.Extend(l.teacher, parent, fsm.Input(i))
			target, _ := l.identify(l.tree.AccessSequence(child))
			if target == fsm.NullState {
				target = l.addState(child)
			} else {
				l.tree.Node(child).State = target
				l.assigned = append(l.assigned, child)
			}

			transOut := fsm.DefaultOutput
			if l.conjecture.IsOutputTransition() {
				out := l.teacher.ResetAndQuerySeq(l.tree.AccessSequence(child))
				transOut = out[len(out)-1]
			}
			l.conjecture.SetTransition(fsm.State(state), fsm.Input(i), target, transOut)
		}
	}
}

// resolveCounterexample locates the first position where the
// conjecture's own predicted output diverges from reality, walking
// ce's non-stout inputs one at a time, and repairs it: if the
// revealing access sequence hasn't converged onto any known state
// yet, it becomes a new one; if the observation tree's row/E
// identification already disagrees with the conjecture's transition
// under the current E, the transition is simply repointed; otherwise
// E is too coarse to see the difference yet, so the remaining suffix
// is added to E and every already-converged node is rechecked against
// its own state's (now longer) canonical row, splitting off a new
// state wherever that recheck now fails.
func (l *learnState) resolveCounterexample(ce []fsm.Input) {
	trimmed := stripStout(ce)
	if len(trimmed) == 0 {
		return
	}
	bbOutput := l.teacher.ResetAndQuerySeq(trimmed)
	confOutput := l.conjecture.GetOutputAlongPath(0, trimmed)

	state := fsm.State(0)
	for i, input := range trimmed {
		nextState := l.conjecture.GetNextState(state, input)
		if i < len(confOutput) && i < len(bbOutput) && confOutput[i] == bbOutput[i] {
			state = nextState
			continue
		}

		child := l.tree.Extend(l.teacher, l.nodeOf[state], input)
		transOut := fsm.DefaultOutput
		if l.conjecture.IsOutputTransition() {
			transOut = l.tree.Node(child).IncomingOutput
		}

		actual, _ := l.identify(l.tree.AccessSequence(child))
		switch {
		case actual == fsm.NullState:
			newState := l.addState(child)
			l.conjecture.SetTransition(state, input, newState, transOut)
			l.fillTransitions(int(newState))
		case actual != nextState:
			l.conjecture.SetTransition(state, input, actual, transOut)
		default:
			// The revealing input's own output already matches; the
			// divergence must be further along the suffix, which E
			// hasn't captured yet.
			l.conjecture.SetTransition(state, input, actual, transOut)
			l.growSuffixes(append([]fsm.Input{}, trimmed[i+1:]...))
		}
		return
	}
}

// stripStout drops every StoutInput element from seq.
func stripStout(seq []fsm.Input) []fsm.Input {
	out := make([]fsm.Input, 0, len(seq))
	for _, in := range seq {
		if in != fsm.StoutInput {
			out = append(out, in)
		}
	}
	return out
}

// growSuffixes appends suffix to E (if not already present) and
// extends every known state's canonical row by the new column, then
// rechecks every already-converged tree node against its assigned
// state's row; a node whose extended row no longer matches is split
// off into a new state and its one incoming transition is repointed.
func (l *learnState) growSuffixes(suffix []fsm.Input) {
	if len(suffix) == 0 || containsSeq(l.e, suffix) {
		return
	}
	l.e = append(l.e, suffix)
	for s := range l.canonRow {
		access := l.tree.AccessSequence(l.nodeOf[s])
		l.teacher.ResetAndQuerySeq(access)
		l.canonRow[s] = append(l.canonRow[s], l.teacher.QuerySeq(suffix))
	}

	stale := l.assigned
	l.assigned = nil
	for _, idx := range stale {
		node := l.tree.Node(idx)
		if node.State == fsm.NullState {
			continue
		}
		l.teacher.ResetAndQuerySeq(node.AccessSequence)
		out := l.teacher.QuerySeq(suffix)
		if equalOutputSeq(out, l.canonRow[node.State][len(l.e)-1]) {
			l.assigned = append(l.assigned, idx)
			continue
		}

		newState := l.addState(idx)
		if node.Parent != otree.NullNode {
			parentState := l.tree.Node(node.Parent).State
			transOut := fsm.DefaultOutput
			if l.conjecture.IsOutputTransition() {
				transOut = l.conjecture.GetOutput(parentState, node.Input)
			}
			l.conjecture.SetTransition(parentState, node.Input, newState, transOut)
		}
		l.fillTransitions(int(newState))
	}
}

// findCounterexample generates a method-specific confirmation suite
// against conjecture at the given extraStates depth and returns the
// first sequence whose real output disagrees with the conjecture's
// prediction, or nil if every sequence agrees.
func findCounterexample(conjecture *fsm.DFSM, variant Variant, extraStates int, teacher blackbox.Teacher) []fsm.Input {
	opts := testsuite.Options{ExtraStates: extraStates}
	var suite [][]fsm.Input
	var err error
	switch variant {
	case SPYMethod:
		suite, err = testsuite.SPY(conjecture, opts)
	default:
		suite, err = testsuite.H(conjecture, opts)
	}
	if err != nil {
		return nil
	}

	for _, seq := range suite {
		bb := teacher.ResetAndQuerySeq(seq)
		conj := conjecture.GetOutputAlongPath(0, seq)
		if !equalOutputSeq(bb, conj) {
			return seq
		}
	}
	return nil
}

func equalRow(a, b [][]fsm.Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalOutputSeq(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalOutputSeq(a, b []fsm.Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsSeq(seqs [][]fsm.Input, s []fsm.Input) bool {
	for _, c := range seqs {
		if len(c) != len(s) {
			continue
		}
		match := true
		for i := range c {
			if c[i] != s[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
