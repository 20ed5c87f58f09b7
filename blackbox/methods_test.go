package blackbox_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
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

func TestModelBackedWalksTransitionTable(t *testing.T) {
	m := buildThreeStateMealy(t)
	b := blackbox.NewModelBacked(m)
	out := b.ResetAndQuerySeq([]fsm.Input{0, 1})
	require.Equal(t, []fsm.Output{0, 0}, out)
	require.Equal(t, 1, b.AppliedResetCount())
	require.Equal(t, 2, b.QueriedSymbolsCount())
}

func TestTreeCachedServesFromCacheWithoutExtraSymbols(t *testing.T) {
	m := buildThreeStateMealy(t)
	b := blackbox.NewModelBacked(m)
	tc := blackbox.NewTreeCached(b)

	first := tc.ResetAndQuerySeq([]fsm.Input{0, 1})
	symbolsAfterFirst := b.QueriedSymbolsCount()

	second := tc.ResetAndQuerySeq([]fsm.Input{0, 1})
	require.Equal(t, first, second)
	require.Equal(t, symbolsAfterFirst, b.QueriedSymbolsCount(), "repeated cached query must not re-drive the underlying box")
}

func TestTreeCachedExtendsPastCachedFrontier(t *testing.T) {
	m := buildThreeStateMealy(t)
	b := blackbox.NewModelBacked(m)
	tc := blackbox.NewTreeCached(b)

	tc.ResetAndQuerySeq([]fsm.Input{0})
	out := tc.ResetAndQuerySeq([]fsm.Input{0, 1, 0})
	require.Equal(t, m.GetOutputAlongPath(m.InitialState(), []fsm.Input{0, 1, 0}), out)
}

func TestModelTeacherFindsNoCounterexampleForEqualConjecture(t *testing.T) {
	m := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(m)
	conjecture := buildThreeStateMealy(t)
	require.Nil(t, teacher.EquivalenceQuery(conjecture))
}

func TestModelTeacherFindsCounterexampleForDifferentConjecture(t *testing.T) {
	m := buildThreeStateMealy(t)
	teacher := blackbox.NewModelTeacher(m)

	conjecture := fsm.NewMealy(1, 2, 2)
	_, err := conjecture.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	require.NoError(t, conjecture.SetTransition(0, 0, 0, 0))
	require.NoError(t, conjecture.SetTransition(0, 1, 0, 0))

	ce := teacher.EquivalenceQuery(conjecture)
	require.NotNil(t, ce)
}

func TestReplayTeacherReturnsQueuedCounterexamplesInOrder(t *testing.T) {
	m := buildThreeStateMealy(t)
	b := blackbox.NewModelBacked(m)
	queue := [][]fsm.Input{{0, 1}, {1, 1}}
	teacher := blackbox.NewReplayTeacher(b, queue)

	require.Equal(t, []fsm.Input{0, 1}, teacher.EquivalenceQuery(nil))
	require.Equal(t, []fsm.Input{1, 1}, teacher.EquivalenceQuery(nil))
	require.Nil(t, teacher.EquivalenceQuery(nil))
	require.Equal(t, 3, teacher.EQCount())
}

func TestSuiteTeacherFindsNoCounterexampleForEqualBox(t *testing.T) {
	m := buildThreeStateMealy(t)
	b := blackbox.NewModelBacked(m)
	teacher := blackbox.NewSuiteTeacher(b, 1)
	require.Nil(t, teacher.EquivalenceQuery(m))
}
