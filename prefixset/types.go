package prefixset

import "github.com/katalvlaran/fsmlearn/fsm"

// node is one trie node: a single input symbol plus links to the next
// symbol at the same depth (sibling) and the first symbol of any
// sequence continuing through this node (child).
type node struct {
	input   fsm.Input
	sibling *node
	child   *node
}

// PrefixSet is a trie over input sequences. The zero value is a valid,
// empty PrefixSet.
type PrefixSet struct {
	root *node
}

// New returns an empty PrefixSet.
func New() *PrefixSet {
	return &PrefixSet{}
}

// Empty reports whether the set contains no sequence.
func (ps *PrefixSet) Empty() bool { return ps.root == nil }

// Clear removes every sequence from the set.
func (ps *PrefixSet) Clear() { ps.root = nil }
