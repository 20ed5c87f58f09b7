package prefixset

import "github.com/katalvlaran/fsmlearn/fsm"

// Insert adds seq to the set. Returns true iff a new root-to-leaf path
// was created (seq, or some prefix-extension of it, was genuinely new);
// false if seq was already fully contained. Inserting an empty sequence
// is a no-op that returns false.
func (ps *PrefixSet) Insert(seq []fsm.Input) bool {
	if len(seq) == 0 {
		return false
	}
	created, newRoot := insertInto(ps.root, seq)
	ps.root = newRoot
	return created
}

func insertInto(n *node, seq []fsm.Input) (created bool, out *node) {
	if n == nil {
		nn := &node{input: seq[0]}
		seq = seq[1:]
		if len(seq) == 0 {
			return true, nn
		}
		_, nn.child = insertInto(nn.child, seq)
		return true, nn
	}
	if n.input == seq[0] {
		seq = seq[1:]
		if len(seq) == 0 {
			return false, n
		}
		created, child := insertInto(n.child, seq)
		n.child = child
		return created, n
	}
	created, sib := insertInto(n.sibling, seq)
	n.sibling = sib
	return created, n
}

// Contains walks seq against the trie and returns the length of the
// longest prefix of seq matched by some path in the set: len(seq) if
// seq is fully contained, a shorter length if only a prefix matches,
// 0 if the set has no matching prefix at all, and -1 if seq is empty.
func (ps *PrefixSet) Contains(seq []fsm.Input) int {
	if len(seq) == 0 {
		return -1
	}
	n := ps.root
	i := 0
	for n != nil && i < len(seq) {
		if n.input == seq[i] {
			i++
			n = n.child
		} else {
			n = n.sibling
		}
	}
	return i
}

// GetMaximalSequences returns every maximal (root-to-leaf) sequence in
// the set. No returned sequence is a prefix of another.
func (ps *PrefixSet) GetMaximalSequences() [][]fsm.Input {
	if ps.root == nil {
		return nil
	}
	var out [][]fsm.Input
	type frame struct {
		n    *node
		path []fsm.Input
	}
	stack := []frame{{ps.root, nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.sibling != nil {
			stack = append(stack, frame{f.n.sibling, f.path})
		}
		path := append(append([]fsm.Input{}, f.path...), f.n.input)
		if f.n.child != nil {
			stack = append(stack, frame{f.n.child, path})
		} else {
			out = append(out, path)
		}
	}
	return out
}

// PopMaximalSequence removes and returns one maximal sequence from the
// set (the one reachable by always following child pointers from the
// root, first-sibling tie-break), or nil if the set is empty.
func (ps *PrefixSet) PopMaximalSequence() []fsm.Input {
	if ps.root == nil {
		return nil
	}
	var out []fsm.Input
	node := ps.root
	var removeParent *node // node whose child pointer must be redirected
	for node != nil {
		out = append(out, node.input)
		if node.child != nil && node.child.sibling != nil {
			removeParent = node
		}
		node = node.child
	}
	// node is now the leaf being removed.
	if removeParent == nil {
		ps.root = ps.root.sibling
	} else {
		removeParent.child = removeParent.child.sibling
	}
	return out
}

// PopMaximalSequenceWithGivenPrefix removes and returns the suffix
// (sequence WITHOUT prefix) of a maximal sequence of the set that
// begins with prefix, if one exists; otherwise it returns nil and
// leaves the set unchanged.
func (ps *PrefixSet) PopMaximalSequenceWithGivenPrefix(prefix []fsm.Input) []fsm.Input {
	n := ps.root
	idx := 0
	var removeNode *node
	removingChild := false
	for n != nil && idx < len(prefix) {
		if n.input == prefix[idx] {
			idx++
			if n.child != nil && n.child.sibling != nil {
				removeNode = n
				removingChild = true
			}
			n = n.child
		} else {
			if n.sibling != nil {
				removeNode = n
				removingChild = false
			}
			n = n.sibling
		}
	}
	if idx != len(prefix) {
		return nil
	}

	var suffix []fsm.Input
	for n != nil {
		suffix = append(suffix, n.input)
		if n.child != nil && n.child.sibling != nil {
			removeNode = n
			removingChild = true
		}
		n = n.child
	}

	switch {
	case removeNode == nil:
		ps.root = ps.root.sibling
	case removingChild:
		removeNode.child = removeNode.child.sibling
	default:
		removeNode.sibling = removeNode.sibling.sibling
	}
	return suffix
}
