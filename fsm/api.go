// File: api.go
// Role: thin, deterministic public facade exposing the Create/New*
// constructors. AddState and algorithmic mutation live in methods_*.go.
package fsm

// Create allocates an empty DFSM of the given kind with capacity for
// numStates states, numInputs inputs and numOutputs outputs. States are
// not pre-allocated; call AddState numStates times (or fewer, if the
// caller wants a smaller machine than the reserved capacity) to
// populate it. Complexity: O(numStates) for table allocation.
func Create(kind Kind, numStates, numInputs, numOutputs int) *DFSM {
	m := &DFSM{
		kind:       kind,
		numInputs:  numInputs,
		numOutputs: numOutputs,
		capStates:  numStates,
	}
	m.transition = make([][]State, 0, numStates)
	if describeKind(kind).isOutputTransition {
		m.transitionOutput = make([][]Output, 0, numStates)
	}
	if describeKind(kind).isOutputState {
		m.stateOutput = make([]Output, 0, numStates)
	}
	return m
}

// NewMealy is sugar for Create(Mealy, ...).
func NewMealy(numStates, numInputs, numOutputs int) *DFSM {
	return Create(Mealy, numStates, numInputs, numOutputs)
}

// NewMoore is sugar for Create(Moore, ...).
func NewMoore(numStates, numInputs, numOutputs int) *DFSM {
	return Create(Moore, numStates, numInputs, numOutputs)
}

// NewDFA is sugar for Create(DFA, numStates, numInputs, 2) — DFA outputs
// are binary accept/reject.
func NewDFA(numStates, numInputs int) *DFSM {
	return Create(DFA, numStates, numInputs, 2)
}

// NewDFSM is sugar for Create(DFSM, ...).
func NewDFSM(numStates, numInputs, numOutputs int) *DFSM {
	return Create(DFSM, numStates, numInputs, numOutputs)
}
