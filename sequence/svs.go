package sequence

import (
	"strconv"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// StateVerifyingSequence searches breadth-first for the shortest input
// sequence that confirms the machine is (or was) in state want: applied
// from want, it produces a response no other state could have produced.
// Returns ErrInvalidState for an out-of-range state, ErrNoSequence if
// want provably has none.
func StateVerifyingSequence(m *fsm.DFSM, want fsm.State) ([]fsm.Input, error) {
	if int(want) < 0 || int(want) >= m.NumStates() {
		return nil, ErrInvalidState
	}

	type svsNode struct {
		undistinguished block
		seq             []fsm.Input
		state           fsm.State
	}

	var undistinguished block
	var seq []fsm.Input
	if m.IsOutputState() {
		wantOut := m.GetOutput(want, fsm.StoutInput)
		for s := 0; s < m.NumStates(); s++ {
			if m.GetOutput(fsm.State(s), fsm.StoutInput) == wantOut {
				undistinguished = append(undistinguished, fsm.State(s))
			}
		}
		if len(undistinguished) == 1 {
			return []fsm.Input{fsm.StoutInput}, nil
		}
		if len(undistinguished) < m.NumStates() {
			seq = []fsm.Input{fsm.StoutInput}
		}
	} else {
		undistinguished = make(block, m.NumStates())
		for s := range undistinguished {
			undistinguished[s] = fsm.State(s)
		}
	}

	queue := []svsNode{{undistinguished: undistinguished, seq: seq, state: want}}
	used := map[string]bool{undistinguished.key() + "@" + strconv.Itoa(int(want)): true}

	for len(queue) > 0 {
		if len(used) > MaxClosedNodes {
			return nil, ErrSearchExhausted
		}
		act := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			input := fsm.Input(i)
			nextState := m.GetNextState(act.state, input)
			output := m.GetOutput(act.state, input)

			var states []fsm.State
			bad := false
			for _, s := range act.undistinguished {
				if m.GetOutput(s, input) != output {
					continue
				}
				n := m.GetNextState(s, input)
				if n == nextState && s != act.state {
					bad = true
					break
				}
				states = append(states, n)
			}
			if bad {
				continue
			}

			stoutUsed := false
			if m.IsOutputState() && len(states) > 1 {
				wantOut := m.GetOutput(nextState, fsm.StoutInput)
				filtered := make([]fsm.State, 0, len(states))
				for _, s := range states {
					if m.GetOutput(s, fsm.StoutInput) == wantOut {
						filtered = append(filtered, s)
					}
				}
				if len(filtered) != len(states) {
					states = filtered
					stoutUsed = true
				}
			}

			nb := newBlock(states...)
			candidate := append(append([]fsm.Input{}, act.seq...), input)
			if stoutUsed {
				candidate = append(candidate, fsm.StoutInput)
			}
			if len(nb) == 1 {
				return candidate, nil
			}
			k := nb.key() + "@" + strconv.Itoa(int(nextState))
			if used[k] {
				continue
			}
			used[k] = true
			queue = append(queue, svsNode{undistinguished: nb, seq: candidate, state: nextState})
		}
	}
	return nil, ErrNoSequence
}

// VerifyingSet returns StateVerifyingSequence for every state of m,
// stopping at the first error.
func VerifyingSet(m *fsm.DFSM) ([][]fsm.Input, error) {
	out := make([][]fsm.Input, m.NumStates())
	for s := 0; s < m.NumStates(); s++ {
		svs, err := StateVerifyingSequence(m, fsm.State(s))
		if err != nil {
			return nil, err
		}
		out[s] = svs
	}
	return out, nil
}

