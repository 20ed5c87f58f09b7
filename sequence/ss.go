package sequence

import "github.com/katalvlaran/fsmlearn/fsm"

// SynchronizingSequence searches breadth-first for an input sequence
// that drives every state of m into the same single state, regardless
// of where the machine started — a property of the machine's
// transition structure alone, independent of any output. Every state
// in the current collapsing set must have a transition on the chosen
// input, or that input is skipped for this step. Returns ErrNoSequence
// if m provably has none.
func SynchronizingSequence(m *fsm.DFSM) ([]fsm.Input, error) {
	all := make(block, m.NumStates())
	for s := range all {
		all[s] = fsm.State(s)
	}
	if len(all) <= 1 {
		return []fsm.Input{}, nil
	}

	type node struct {
		states block
		seq    []fsm.Input
	}
	queue := []node{{states: all}}
	used := map[string]bool{all.key(): true}

	for len(queue) > 0 {
		if len(used) > MaxClosedNodes {
			return nil, ErrSearchExhausted
		}
		act := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			complete := true
			next := make([]fsm.State, 0, len(act.states))
			for _, s := range act.states {
				n := m.GetNextState(s, fsm.Input(i))
				if n == fsm.NullState {
					complete = false
					break
				}
				next = append(next, n)
			}
			if !complete {
				continue
			}
			nb := newBlock(next...)
			candidate := append(append([]fsm.Input{}, act.seq...), fsm.Input(i))
			if len(nb) == 1 {
				return candidate, nil
			}
			k := nb.key()
			if used[k] {
				continue
			}
			used[k] = true
			queue = append(queue, node{states: nb, seq: candidate})
		}
	}
	return nil, ErrNoSequence
}
