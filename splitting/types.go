package splitting

import "github.com/katalvlaran/fsmlearn/fsm"

// Node is one splitting-tree node, stored by stable integer index in
// Tree.Nodes (an arena, avoiding parent-owning-pointer cycles). Parent
// is an index, not a pointer.
type Node struct {
	Block []fsm.State // sorted states still conflated at this node

	// DistinguishingInput is the single input applied to every state of
	// Block to produce Children; -1 (fsm.StoutInput) at a leaf (singleton
	// block, nothing left to distinguish).
	DistinguishingInput fsm.Input

	// Children maps the output observed on DistinguishingInput to the
	// index of the child Node holding the states that produced it.
	Children map[fsm.Output]int

	// Parent is the arena index of the parent node, or -1 at the root.
	Parent int

	// UndistinguishedStates counts states that this node could not
	// separate from each other (always 0 unless Tree was built with
	// AllowInvalidInputs and the machine is not fully reduced).
	UndistinguishedStates int

	// InvalidInputUsed records that no pair of Block has a separator, so
	// the node stays a leaf with UndistinguishedStates = len(Block)
	// (only possible with AllowInvalidInputs).
	InvalidInputUsed bool
}

// IsLeaf reports whether n is a singleton block (nothing left to split).
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Tree is the splitting tree of one fsm.DFSM plus its two auxiliary
// lookup tables: CurNode (lowest node still containing a state) and
// Distinguished (the node where a given pair was separated).
type Tree struct {
	Machine *fsm.DFSM
	Nodes   []*Node // arena; Nodes[0] is the root

	CurNode []int // CurNode[state] = arena index

	// Distinguished[fsm.PairIndex(i,j)] = arena index of the node whose
	// DistinguishingInput first separated i from j, or -1 if (in
	// AllowInvalidInputs mode) they were never separated.
	Distinguished []int

	// Separator[fsm.PairIndex(i,j)] is the shortest separating input
	// sequence for that pair, as computed in pass one of Build.
	Separator [][]fsm.Input

	AllowInvalidInputs bool
}

// Root returns the tree's root node.
func (t *Tree) Root() *Node { return t.Nodes[0] }
