package fsm_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/stretchr/testify/require"
)

// buildTwoStateMealy builds a small two-state Mealy machine:
// states {0,1}, inputs {0,1}, outputs {0,1}.
// δ: (0,0)=0/0, (0,1)=1/0, (1,0)=0/0, (1,1)=1/1.
func buildTwoStateMealy(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMealy(2, 2, 2)
	_, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	_, err = m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)

	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(0, 1, 1, 0))
	require.NoError(t, m.SetTransition(1, 0, 0, 0))
	require.NoError(t, m.SetTransition(1, 1, 1, 1))
	return m
}

func TestTwoStateMealyBasics(t *testing.T) {
	m := buildTwoStateMealy(t)

	require.Equal(t, fsm.Mealy, m.Kind())
	require.Equal(t, 2, m.NumStates())
	require.True(t, m.IsComplete())
	require.True(t, m.IsCompact())

	require.Equal(t, fsm.Output(0), m.GetOutput(0, 0))
	require.Equal(t, fsm.Output(1), m.GetOutput(1, 1))
	require.Equal(t, fsm.State(1), m.GetNextState(0, 1))

	outs := m.GetOutputAlongPath(0, []fsm.Input{1, 1})
	require.Equal(t, []fsm.Output{0, 1}, outs)
	require.Equal(t, fsm.State(1), m.GetEndPathState(0, []fsm.Input{1, 1}))
}

func TestAddStateCapacityExceeded(t *testing.T) {
	m := fsm.NewMealy(1, 1, 1)
	_, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	_, err = m.AddState(fsm.DefaultOutput)
	require.ErrorIs(t, err, fsm.ErrCapacityExceeded)
}

func TestSetOutputWrongKind(t *testing.T) {
	m := fsm.NewMoore(1, 1, 1)
	_, err := m.AddState(0)
	require.NoError(t, err)
	err = m.SetOutput(0, 0, 0)
	require.ErrorIs(t, err, fsm.ErrWrongKind)
}

func TestMinimizeIdempotent(t *testing.T) {
	m := buildTwoStateMealy(t)
	_ = m.Minimize()
	r2 := m.Minimize()
	require.Equal(t, []fsm.State{0, 1}, r2)
	require.Equal(t, 2, m.NumStates())
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// Three states where 1 and 2 behave identically: both self-loop on
	// every input emitting the same output, and 0 transitions into
	// either of them identically.
	m := fsm.NewMealy(3, 1, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	require.NoError(t, m.SetTransition(0, 0, 1, 0))
	require.NoError(t, m.SetTransition(1, 0, 1, 1))
	require.NoError(t, m.SetTransition(2, 0, 2, 1))

	renaming := m.Minimize()
	require.Equal(t, renaming[1], renaming[2])
	require.Equal(t, 2, m.NumStates())
}

// buildThreeStateMoore builds a Moore machine where states 1 and 2
// carry the same output and loop into each other identically, so they
// are behaviorally indistinguishable and should merge under Minimize.
func buildThreeStateMoore(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMoore(3, 1, 2)
	_, err := m.AddState(0)
	require.NoError(t, err)
	_, err = m.AddState(1)
	require.NoError(t, err)
	_, err = m.AddState(1)
	require.NoError(t, err)

	require.NoError(t, m.SetTransition(0, 0, 1, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(1, 0, 2, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(2, 0, 1, fsm.DefaultOutput))
	return m
}

func TestAddStateMooreDefaultOutput(t *testing.T) {
	m := fsm.NewMoore(2, 1, 2)
	s0, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	s1, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	require.Equal(t, 2, m.NumStates())
	require.Equal(t, fsm.Output(0), m.GetOutput(s0, fsm.StoutInput))
	require.Equal(t, fsm.Output(0), m.GetOutput(s1, fsm.StoutInput))
}

func TestMinimizeMooreMergesEquivalentStates(t *testing.T) {
	m := buildThreeStateMoore(t)

	renaming := m.Minimize()
	require.Equal(t, renaming[1], renaming[2])
	require.Equal(t, 2, m.NumStates())
}

func TestMinimizeIdempotentMoore(t *testing.T) {
	m := buildThreeStateMoore(t)
	_ = m.Minimize()
	r2 := m.Minimize()
	require.Equal(t, []fsm.State{0, 1}, r2)
	require.Equal(t, 2, m.NumStates())
}

func TestAreIsomorphicSelf(t *testing.T) {
	m := buildTwoStateMealy(t)
	require.True(t, fsm.AreIsomorphic(m, m))
}

func TestAreIsomorphicDetectsDivergence(t *testing.T) {
	a := buildTwoStateMealy(t)
	b := buildTwoStateMealy(t)
	require.NoError(t, b.SetTransition(1, 1, 1, 0)) // flip an output
	require.False(t, fsm.AreIsomorphic(a, b))
}
