package htest_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/htest"
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

func TestLearnReconstructsEquivalentMachineHMethod(t *testing.T) {
	ref := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := htest.Learn(teacher, htest.HMethod, 3)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnReconstructsEquivalentMachineSPYMethod(t *testing.T) {
	ref := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := htest.Learn(teacher, htest.SPYMethod, 3)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnRejectsNonResettableTeacher(t *testing.T) {
	ref := buildThreeStateMealy(t)
	nonResettable := &nonResettableTeacher{Teacher: blackbox.NewModelTeacher(ref)}
	_, err := htest.Learn(nonResettable, htest.HMethod, 3)
	require.ErrorIs(t, err, htest.ErrNotResettable)
}

type nonResettableTeacher struct {
	blackbox.Teacher
}

func (n *nonResettableTeacher) IsResettable() bool { return false }
