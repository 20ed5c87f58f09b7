package dtree

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// node is one node of the discrimination tree. An internal node
// (state == fsm.NullState) carries the input sequence applied to
// decide which child a sifted access sequence falls into, keyed by
// the observed output sequence. A leaf carries the state it
// identifies and an access sequence reaching it from the initial
// state.
type node struct {
	sequence []fsm.Input
	state    fsm.State
	succ     map[string]*node
	parent   *node
	level    int
}

func newRoot() *node {
	return &node{state: fsm.NullState, succ: map[string]*node{}, level: 0}
}

// createNode appends a new leaf to parent, keyed by output — the
// response parent.sequence produced when sifting this leaf into
// existence.
func createNode(parent *node, seq []fsm.Input, output []fsm.Output) *node {
	leaf := &node{
		sequence: seq,
		state:    fsm.NullState,
		succ:     map[string]*node{},
		parent:   parent,
		level:    parent.level + 1,
	}
	parent.succ[outKey(output)] = leaf
	return leaf
}

func outKey(seq []fsm.Output) string {
	parts := make([]string, len(seq))
	for i, o := range seq {
		parts[i] = strconv.Itoa(int(o))
	}
	return strings.Join(parts, ",")
}

// lowestCommonAncestor returns the nearest node common to both a and
// b's root paths, used to derive a distinguishing sequence for two
// states known to be distinct but not yet separated by the tree.
func lowestCommonAncestor(a, b *node) *node {
	for a.level > b.level {
		a = a.parent
	}
	for b.level > a.level {
		b = b.parent
	}
	for a != b {
		a = a.parent
		b = b.parent
	}
	return a
}
