package fsm

// SetOutput sets a state output (len(i) == 0) or a transition output
// (len(i) == 1) depending on the variadic i. Returns ErrWrongKind if the
// Kind does not carry the requested output shape.
func (m *DFSM) SetOutput(s State, out Output, i ...Input) error {
	if !m.validState(s) {
		return ErrInvalidState
	}
	if !m.validOutput(out) {
		return ErrInvalidOutput
	}
	d := describeKind(m.kind)
	switch len(i) {
	case 0:
		if !d.isOutputState {
			return ErrWrongKind
		}
		m.stateOutput[s] = out
		return nil
	case 1:
		if !d.isOutputTransition {
			return ErrWrongKind
		}
		if !m.validInput(i[0]) || i[0] == StoutInput {
			return ErrInvalidInput
		}
		m.transitionOutput[s][i[0]] = out
		return nil
	default:
		return ErrInvalidInput
	}
}
