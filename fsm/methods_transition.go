package fsm

// SetTransition sets δ(s,i) = t, and, for kinds carrying a transition
// output, the output emitted on that step. transitionOutput is ignored
// for kinds without transition outputs. Returns ErrInvalidState /
// ErrInvalidInput / ErrInvalidOutput on out-of-range arguments.
func (m *DFSM) SetTransition(s State, i Input, t State, transitionOutput Output) error {
	if !m.validState(s) || !m.validState(t) {
		return ErrInvalidState
	}
	if i == StoutInput || !m.validInput(i) {
		return ErrInvalidInput
	}
	d := describeKind(m.kind)
	if d.isOutputTransition {
		if transitionOutput == DefaultOutput {
			// transparent: leave as-is, caller may set output separately.
		} else if !m.validOutput(transitionOutput) {
			return ErrInvalidOutput
		}
	}
	m.transition[s][i] = t
	if d.isOutputTransition && transitionOutput != DefaultOutput {
		m.transitionOutput[s][i] = transitionOutput
	}
	return nil
}

// GetNextState returns δ(s,i), or NullState if the transition is absent.
// Passing StoutInput returns NullState (it never transitions state).
func (m *DFSM) GetNextState(s State, i Input) State {
	if !m.validState(s) || i == StoutInput || !m.validInput(i) {
		return NullState
	}
	return m.transition[s][i]
}

// GetOutput returns the output observed at (s,i). When i == StoutInput
// it returns the state output of s (DefaultOutput if the Kind carries
// none); otherwise it returns the transition output (DefaultOutput for
// kinds without one, or if the transition is absent).
func (m *DFSM) GetOutput(s State, i Input) Output {
	if !m.validState(s) {
		return WrongOutput
	}
	if i == StoutInput {
		if m.stateOutput == nil {
			return DefaultOutput
		}
		return m.stateOutput[s]
	}
	if !m.validInput(i) {
		return WrongOutput
	}
	if m.transitionOutput == nil {
		return DefaultOutput
	}
	if m.transition[s][i] == NullState {
		return DefaultOutput
	}
	return m.transitionOutput[s][i]
}

// GetOutputAlongPath walks seq from s and returns one output per
// element of seq (StoutInput elements yield the current state's output
// without advancing state; other elements advance state and yield the
// per-kind output of that step). Walking stops early (returning a
// shorter slice) the first time it hits an absent transition.
func (m *DFSM) GetOutputAlongPath(s State, seq []Input) []Output {
	out := make([]Output, 0, len(seq))
	cur := s
	for _, i := range seq {
		if i == StoutInput {
			out = append(out, m.GetOutput(cur, StoutInput))
			continue
		}
		if !m.validState(cur) || !m.validInput(i) || m.transition[cur][i] == NullState {
			break
		}
		out = append(out, m.GetOutput(cur, i))
		cur = m.transition[cur][i]
	}
	return out
}

// GetEndPathState returns the state reached by applying seq from s,
// ignoring StoutInput elements (they observe but never transition).
// Returns NullState if seq leads through an absent transition.
func (m *DFSM) GetEndPathState(s State, seq []Input) State {
	cur := s
	for _, i := range seq {
		if i == StoutInput {
			continue
		}
		if !m.validState(cur) || !m.validInput(i) {
			return NullState
		}
		next := m.transition[cur][i]
		if next == NullState {
			return NullState
		}
		cur = next
	}
	return cur
}

// HasTransition reports whether δ(s,i) is defined.
func (m *DFSM) HasTransition(s State, i Input) bool {
	if !m.validState(s) || i == StoutInput || !m.validInput(i) {
		return false
	}
	return m.transition[s][i] != NullState
}

// IsComplete reports whether every (state, input) pair has a defined
// transition — i.e. the machine has no partial transitions.
func (m *DFSM) IsComplete() bool {
	for s := 0; s < m.numStates; s++ {
		for i := 0; i < m.numInputs; i++ {
			if m.transition[s][i] == NullState {
				return false
			}
		}
	}
	return true
}
