package otree_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/otree"
	"github.com/stretchr/testify/require"
)

func buildTwoStateMealy(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMealy(2, 2, 2)
	_, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	_, err = m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(0, 1, 1, 1))
	require.NoError(t, m.SetTransition(1, 0, 1, 0))
	require.NoError(t, m.SetTransition(1, 1, 0, 1))
	return m
}

func TestExtendCreatesChildOnce(t *testing.T) {
	m := buildTwoStateMealy(t)
	teacher := blackbox.NewModelTeacher(m)
	tree := otree.New()

	first := tree.Extend(teacher, tree.Root(), 0)
	second := tree.Extend(teacher, tree.Root(), 0)
	require.Equal(t, first, second, "spew dump of the root node on mismatch:\n%s", spew.Sdump(tree.Node(tree.Root())))
	require.Equal(t, []fsm.Input{0}, tree.AccessSequence(first))
}

func TestConvergentNodeRestrictToSingleton(t *testing.T) {
	cn := (&otree.Tree{}).NewConvergentNode(0, []fsm.State{0, 1, 2})
	empty := cn.Restrict(func(s fsm.State) bool { return s != 1 && s != 2 })
	require.False(t, empty, "spew dump of the convergent node:\n%s", spew.Sdump(cn))

	state, ok := cn.Singleton()
	require.True(t, ok)
	require.Equal(t, fsm.State(0), state)
}

func TestConvergentNodeRestrictToEmptyIsInconsistency(t *testing.T) {
	cn := (&otree.Tree{}).NewConvergentNode(0, []fsm.State{0, 1})
	empty := cn.Restrict(func(fsm.State) bool { return false })
	require.True(t, empty, "spew dump of the convergent node:\n%s", spew.Sdump(cn))

	_, ok := cn.Singleton()
	require.False(t, ok)
}
