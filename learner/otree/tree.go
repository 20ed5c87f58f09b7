package otree

import (
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// NodeIndex addresses a Node within a Tree's arena.
type NodeIndex int

// NullNode marks the absence of a node, mirroring fsm.NullState.
const NullNode NodeIndex = -1

// Node is one vertex of the observation tree: the access sequence
// reaching it from the root, the output observed on the incoming
// edge, and the state it has converged to (fsm.NullState until a
// learner identifies it).
type Node struct {
	Parent         NodeIndex
	Input          fsm.Input
	AccessSequence []fsm.Input
	IncomingOutput fsm.Output
	StateOutput    fsm.Output
	State          fsm.State
	Children       map[fsm.Input]NodeIndex
}

// ConvergentNode groups tree nodes believed to represent the same
// black-box state. Domain holds the states still consistent with
// every member's observed behavior; Domain becoming empty is the
// new-state-revealed inconsistency, and Domain excluding the node's
// already-assigned State is the inconsistent-domain inconsistency.
type ConvergentNode struct {
	Members []NodeIndex
	Domain  map[fsm.State]bool
	State   fsm.State
}

// Tree is the cumulative observation tree, indexed by NodeIndex.
type Tree struct {
	Nodes       []*Node
	Convergents []*ConvergentNode
}

// New returns a tree containing only its root, whose access sequence
// is empty.
func New() *Tree {
	root := &Node{
		Parent:   NullNode,
		State:    fsm.NullState,
		Children: map[fsm.Input]NodeIndex{},
	}
	return &Tree{Nodes: []*Node{root}}
}

// Root is the tree's root index.
func (t *Tree) Root() NodeIndex { return 0 }

// Node returns the node at idx.
func (t *Tree) Node(idx NodeIndex) *Node { return t.Nodes[idx] }

// AccessSequence returns the input sequence reaching idx from the
// root.
func (t *Tree) AccessSequence(idx NodeIndex) []fsm.Input {
	return t.Nodes[idx].AccessSequence
}

// Extend returns the child of parent on input, querying the black
// box and creating the child the first time this edge is walked.
func (t *Tree) Extend(teacher blackbox.Teacher, parent NodeIndex, input fsm.Input) NodeIndex {
	p := t.Nodes[parent]
	if child, ok := p.Children[input]; ok {
		return child
	}
	prefix := append(append([]fsm.Input{}, p.AccessSequence...), input)
	out := teacher.ResetAndQuerySeq(prefix)
	child := &Node{
		Parent:         parent,
		Input:          input,
		AccessSequence: prefix,
		IncomingOutput: out[len(out)-1],
		State:          fsm.NullState,
		Children:       map[fsm.Input]NodeIndex{},
	}
	idx := NodeIndex(len(t.Nodes))
	t.Nodes = append(t.Nodes, child)
	p.Children[input] = idx
	return idx
}

// NewConvergentNode starts a fresh convergent-node group for member,
// with every state in universe as an initial candidate.
func (t *Tree) NewConvergentNode(member NodeIndex, universe []fsm.State) *ConvergentNode {
	domain := make(map[fsm.State]bool, len(universe))
	for _, s := range universe {
		domain[s] = true
	}
	cn := &ConvergentNode{Members: []NodeIndex{member}, Domain: domain, State: fsm.NullState}
	t.Convergents = append(t.Convergents, cn)
	return cn
}

// Restrict removes every state from cn's domain for which keep
// returns false, returning whether the domain is now empty (the
// new-state-revealed inconsistency).
func (cn *ConvergentNode) Restrict(keep func(fsm.State) bool) (empty bool) {
	for s := range cn.Domain {
		if !keep(s) {
			delete(cn.Domain, s)
		}
	}
	return len(cn.Domain) == 0
}

// Singleton returns the sole remaining candidate state and true if
// cn's domain has settled to exactly one state.
func (cn *ConvergentNode) Singleton() (fsm.State, bool) {
	if len(cn.Domain) != 1 {
		return fsm.NullState, false
	}
	for s := range cn.Domain {
		return s, true
	}
	return fsm.NullState, false
}
