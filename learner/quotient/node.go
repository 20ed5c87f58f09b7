package quotient

import "github.com/katalvlaran/fsmlearn/fsm"

// qnode is one vertex of the shared observation tree. It duplicates
// otree.Node's shape rather than reusing it: this tree additionally
// tracks distInput, the one successor input along which a node was last
// found to diverge from some other node, which otree and the row/E
// learners have no use for.
type qnode struct {
	accessSeq      []fsm.Input
	incomingOutput fsm.Output
	stateOutput    fsm.Output
	state          fsm.State
	succ           map[fsm.Input]*qnode

	// distInput is set by areDistinguished on the node it was called
	// with first, recording which successor input led to the
	// divergence; getDistinguishingSeq follows this chain afterward.
	distInput fsm.Input
}

func newQNode(incomingOutput fsm.Output, accessSeq []fsm.Input) *qnode {
	return &qnode{
		accessSeq:      append([]fsm.Input{}, accessSeq...),
		incomingOutput: incomingOutput,
		stateOutput:    fsm.DefaultOutput,
		state:          fsm.NullState,
		succ:           map[fsm.Input]*qnode{},
	}
}

// areDistinguished reports whether n1 and n2's subtrees disagree
// anywhere: a different state output, a different incoming output on a
// shared successor input, or a recursively distinguished successor.
// Inputs present on only one side are ignored (the other side simply
// hasn't been extended that far yet). When it returns true because of a
// successor, n1.distInput names the successor input the divergence was
// found on; when n1 and n2 differ in their own state output it returns
// true without setting distInput.
func areDistinguished(n1, n2 *qnode) bool {
	if n1.stateOutput != n2.stateOutput {
		return true
	}
	for input, c1 := range n1.succ {
		c2, ok := n2.succ[input]
		if !ok {
			continue
		}
		if c1.incomingOutput != c2.incomingOutput || areDistinguished(c1, c2) {
			n1.distInput = input
			return true
		}
	}
	return false
}

// getDistinguishingSeq walks n1's chain of distInput markers, built by
// the areDistinguished call that just found n1 and n2 to diverge, and
// returns the input sequence that separates them — interleaved with
// fsm.StoutInput when the machine carries state outputs, since an
// intermediate state output can itself be where two branches first
// differ.
func getDistinguishingSeq(n1, n2 *qnode, isOutputState bool) []fsm.Input {
	var seq []fsm.Input
	for {
		d := n1.distInput
		seq = append(seq, d)
		if isOutputState {
			seq = append(seq, fsm.StoutInput)
		}
		n1, n2 = n1.succ[d], n2.succ[d]
		if n1.incomingOutput != n2.incomingOutput || n1.stateOutput != n2.stateOutput {
			return seq
		}
	}
}
