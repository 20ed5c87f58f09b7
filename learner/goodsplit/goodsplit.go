package goodsplit

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/otree"
)

// Options controls GoodSplit's sampling schedule.
type Options struct {
	// MaxDistinguishingLength bounds the sampled sequence length: the
	// pool grows from length 1 up to this bound before the learner
	// accepts its best-effort conjecture for any node that never
	// narrowed to a single candidate state. Defaults to 3 when zero.
	MaxDistinguishingLength int
}

// frontierNode is one not-yet-resolved observation-tree node: the
// transition that leads to it (fromState, input) and the
// ConvergentNode tracking its narrowing candidate-state domain.
type frontierNode struct {
	idx       otree.NodeIndex
	cn        *otree.ConvergentNode
	fromState fsm.State
	input     fsm.Input
}

// Learn builds a conjecture by growing an observation tree and, for
// every new node, narrowing a ConvergentNode's candidate-state domain
// against a pool of sampled input sequences that grows one length at
// a time up to opts.MaxDistinguishingLength. A node whose domain
// collapses to one candidate converges onto that state; a node whose
// domain empties out (no known state's behavior matches) reveals a
// new state. No equivalence query is ever issued — this learner is
// for settings where equivalence queries are restricted or absent.
func Learn(teacher blackbox.Teacher, opts Options) (*fsm.DFSM, error) {
	if !teacher.IsResettable() {
		return nil, ErrNotResettable
	}
	if opts.MaxDistinguishingLength <= 0 {
		opts.MaxDistinguishingLength = 3
	}

	l := &learnState{
		teacher:    teacher,
		tree:       otree.New(),
		conjecture: fsm.Create(teacher.ModelType(), 0, teacher.NumInputs(), teacher.NumOutputs()),
		pending:    map[*otree.ConvergentNode]bool{},
	}

	l.addState(l.tree.Root())

	frontier := l.expand(0)

	var pool [][]fsm.Input
	for length := 1; length <= opts.MaxDistinguishingLength && len(frontier) > 0; length++ {
		pool = append(pool, sequencesOfLength(length, teacher.NumInputs())...)

		queue := frontier
		var carryover []frontierNode
		for len(queue) > 0 {
			fn := queue[0]
			queue = queue[1:]

			l.narrow(fn, pool)
			switch {
			case singleton(fn.cn):
				s, _ := fn.cn.Singleton()
				l.resolve(fn, s)
			case len(fn.cn.Domain) == 0:
				newState := l.addState(fn.idx)
				l.resolve(fn, newState)
				queue = append(queue, l.expand(int(newState))...)
			default:
				carryover = append(carryover, fn)
			}
		}
		frontier = carryover
	}

	// Best-effort close-out: any node that never narrowed to a single
	// candidate within the length budget converges onto its lowest-
	// numbered remaining candidate, or becomes a new state if none
	// remain (domain emptied on the very last sampled length).
	for _, fn := range frontier {
		delete(l.pending, fn.cn)
		if s, ok := fn.cn.Singleton(); ok {
			l.resolve(fn, s)
			continue
		}
		if best, ok := lowestCandidate(fn.cn); ok {
			l.resolve(fn, best)
			continue
		}
		newState := l.addState(fn.idx)
		l.resolve(fn, newState)
		// Any further transitions from a state discovered this late
		// are left unexplored (fsm.NullState); GoodSplit's budget is
		// spent. A caller needing a complete conjecture should rerun
		// with a larger MaxDistinguishingLength.
	}

	return l.conjecture, nil
}

func singleton(cn *otree.ConvergentNode) bool {
	_, ok := cn.Singleton()
	return ok
}

func lowestCandidate(cn *otree.ConvergentNode) (fsm.State, bool) {
	best, ok := fsm.NullState, false
	for s := range cn.Domain {
		if !ok || s < best {
			best, ok = s, true
		}
	}
	return best, ok
}

type learnState struct {
	teacher    blackbox.Teacher
	tree       *otree.Tree
	conjecture *fsm.DFSM
	access     [][]fsm.Input
	nodeOf     []otree.NodeIndex
	pending    map[*otree.ConvergentNode]bool
}

// addState registers idx as a brand-new conjecture state and adds it
// as a candidate to every still-pending node's domain, since a node
// narrowed before this state existed never had the chance to match
// it.
func (l *learnState) addState(idx otree.NodeIndex) fsm.State {
	node := l.tree.Node(idx)
	st, _ := l.conjecture.AddState(fsm.DefaultOutput)
	node.State = st
	l.access = append(l.access, node.AccessSequence)
	l.nodeOf = append(l.nodeOf, idx)
	if l.conjecture.IsOutputState() {
		l.teacher.ResetAndQuerySeq(node.AccessSequence)
		out := l.teacher.Query(fsm.StoutInput)
		l.conjecture.SetOutput(st, out)
	}
	for cn := range l.pending {
		cn.Domain[st] = true
	}
	return st
}

func (l *learnState) expand(stateIdx int) []frontierNode {
	parent := l.nodeOf[stateIdx]
	numInputs := l.conjecture.NumInputs()
	universe := make([]fsm.State, len(l.access))
	for i := range universe {
		universe[i] = fsm.State(i)
	}

	out := make([]frontierNode, 0, numInputs)
	for i := 0; i < numInputs; i++ {
		child := l.tree.Extend(l.teacher, parent, fsm.Input(i))
		cn := l.tree.NewConvergentNode(child, universe)
		l.pending[cn] = true
		out = append(out, frontierNode{idx: child, cn: cn, fromState: fsm.State(stateIdx), input: fsm.Input(i)})
	}
	return out
}

// narrow applies every sequence in pool from fn's access sequence and
// from each remaining candidate's access sequence, restricting fn's
// domain to candidates whose output agrees with the node's observed
// output at every sampled sequence.
func (l *learnState) narrow(fn frontierNode, pool [][]fsm.Input) {
	access := l.tree.AccessSequence(fn.idx)
	for _, seq := range pool {
		if len(fn.cn.Domain) <= 1 {
			return
		}
		full := concatInputs(access, seq)
		childOut := l.teacher.ResetAndQuerySeq(full)
		fn.cn.Restrict(func(s fsm.State) bool {
			candFull := concatInputs(l.access[s], seq)
			candOut := l.teacher.ResetAndQuerySeq(candFull)
			return equalOutputSeq(candOut, childOut)
		})
	}
}

// resolve commits fn to target: records it on the observation-tree
// node, wires the conjecture transition that leads to it, and retires
// fn's ConvergentNode from the pending set so later new states stop
// being added as candidates for it.
func (l *learnState) resolve(fn frontierNode, target fsm.State) {
	delete(l.pending, fn.cn)
	node := l.tree.Node(fn.idx)
	node.State = target

	transOut := fsm.DefaultOutput
	if l.conjecture.IsOutputTransition() {
		transOut = node.IncomingOutput
	}
	l.conjecture.SetTransition(fn.fromState, fn.input, target, transOut)
}

func concatInputs(a, b []fsm.Input) []fsm.Input {
	out := make([]fsm.Input, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
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

// sequencesOfLength returns every input sequence of exactly length
// symbols over 0..numInputs-1, in lexicographic order.
func sequencesOfLength(length, numInputs int) [][]fsm.Input {
	if numInputs <= 0 || length <= 0 {
		return nil
	}
	result := [][]fsm.Input{{}}
	for step := 0; step < length; step++ {
		next := make([][]fsm.Input, 0, len(result)*numInputs)
		for _, seq := range result {
			for i := 0; i < numInputs; i++ {
				s := make([]fsm.Input, len(seq)+1)
				copy(s, seq)
				s[len(seq)] = fsm.Input(i)
				next = append(next, s)
			}
		}
		result = next
	}
	return result
}
