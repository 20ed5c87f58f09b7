package obspack

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// node is one node of the discrimination tree shared by every
// component; see dtree's node for the identical shape and rationale
// (duplicated here rather than imported, since the two learners'
// trees evolve independently and the type carries no exported
// surface worth sharing).
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

func outKey(seq []fsm.Output) string {
	parts := make([]string, len(seq))
	for i, o := range seq {
		parts[i] = strconv.Itoa(int(o))
	}
	return strings.Join(parts, ",")
}

func seqKeyInputs(seq []fsm.Input) string {
	parts := make([]string, len(seq))
	for i, in := range seq {
		parts[i] = strconv.Itoa(int(in))
	}
	return strings.Join(parts, ",")
}

func equalInputSeq(a, b []fsm.Input) bool {
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
	for _, e := range seqs {
		if equalInputSeq(e, s) {
			return true
		}
	}
	return false
}
