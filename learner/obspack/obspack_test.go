package obspack_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/obspack"
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

func TestLearnReconstructsEquivalentMachineAllGlobally(t *testing.T) {
	ref := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := obspack.Learn(teacher, obspack.AllGlobally)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnReconstructsEquivalentMachineOneLocally(t *testing.T) {
	ref := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(ref)

	conjecture, err := obspack.Learn(teacher, obspack.OneLocally)
	require.NoError(t, err)
	require.Nil(t, blackbox.NewModelTeacher(ref).EquivalenceQuery(conjecture))
}

func TestLearnRejectsNonResettableTeacher(t *testing.T) {
	ref := buildThreeStateMealy(t)
	nonResettable := &nonResettableTeacher{Teacher: blackbox.NewModelTeacher(ref)}
	_, err := obspack.Learn(nonResettable, obspack.AllGlobally)
	require.ErrorIs(t, err, obspack.ErrNotResettable)
}

type nonResettableTeacher struct {
	blackbox.Teacher
}

func (n *nonResettableTeacher) IsResettable() bool { return false }
