package sequence

import "github.com/katalvlaran/fsmlearn/fsm"

// PresetHomingSequence searches breadth-first for a fixed input
// sequence that, applied from any starting state, leaves an observer
// able to determine the CURRENT state (not necessarily the starting
// one) from the responses alone. Unlike PresetDistinguishingSequence
// it requires every state in a block to have a transition on the
// chosen input — a homing sequence cannot tolerate a single state
// falling silently out of consideration.
func PresetHomingSequence(m *fsm.DFSM) ([]fsm.Input, error) {
	p, seq := initialPartition(m)
	if p.empty() {
		if m.IsOutputState() {
			return []fsm.Input{fsm.StoutInput}, nil
		}
		return []fsm.Input{}, nil
	}

	queue := []refineNode{{partition: p, seq: seq}}
	used := map[string]bool{p.key(): true}

	for len(queue) > 0 {
		if len(used) > MaxClosedNodes {
			return nil, ErrSearchExhausted
		}
		act := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			next, ok := refineByInput(m, act.partition, fsm.Input(i), false)
			if !ok {
				continue
			}
			stoutUsed := false
			if m.IsOutputState() {
				next, stoutUsed = refineByStout(m, next)
			}
			candidate := append(append([]fsm.Input{}, act.seq...), fsm.Input(i))
			if stoutUsed {
				candidate = append(candidate, fsm.StoutInput)
			}
			if next.empty() {
				return candidate, nil
			}
			k := next.key()
			if used[k] {
				continue
			}
			used[k] = true
			queue = append(queue, refineNode{partition: next, seq: candidate})
		}
	}
	return nil, ErrNoSequence
}
