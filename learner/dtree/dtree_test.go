package dtree_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/dtree"
	"github.com/stretchr/testify/require"
)

func buildThreeStateMealy(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMealy(3, 2, 2)
	for i := 0; i < 3; i++ {
		_, err := m.AddState(fsm.DefaultOutput)
		require.NoError(t, err)
	}
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(0, 1, 1, 0))
	require.NoError(t, m.SetTransition(1, 0, 1, 0))
	require.NoError(t, m.SetTransition(1, 1, 1, 1))
	require.NoError(t, m.SetTransition(2, 0, 2, 1))
	require.NoError(t, m.SetTransition(2, 1, 2, 1))
	return m
}

func buildThreeStateMoore(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMoore(3, 2, 2)
	_, err := m.AddState(0)
	require.NoError(t, err)
	_, err = m.AddState(1)
	require.NoError(t, err)
	_, err = m.AddState(1)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 0, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(0, 1, 1, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(1, 0, 2, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(1, 1, 1, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(2, 0, 2, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(2, 1, 0, fsm.DefaultOutput))
	return m
}

func TestLearnReconstructsEquivalentMealy(t *testing.T) {
	ref := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := dtree.Learn(teacher)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnReconstructsEquivalentMoore(t *testing.T) {
	ref := buildThreeStateMoore(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := dtree.Learn(teacher)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnRejectsNonResettableTeacher(t *testing.T) {
	ref := buildThreeStateMealy(t)
	nonResettable := &nonResettableTeacher{Teacher: blackbox.NewModelTeacher(ref)}
	_, err := dtree.Learn(nonResettable)
	require.ErrorIs(t, err, dtree.ErrNotResettable)
}

type nonResettableTeacher struct {
	blackbox.Teacher
}

func (n *nonResettableTeacher) IsResettable() bool { return false }
