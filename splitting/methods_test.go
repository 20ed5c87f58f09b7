package splitting_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/splitting"
	"github.com/stretchr/testify/require"
)

// buildThreeStateMealy is a minimal reduced Mealy machine where states 0
// and 1 agree on input 0 but diverge on input 1's output, and state 2
// is separated from both by input 0's output.
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

func TestBuildSeparatesAllPairs(t *testing.T) {
	m := buildThreeStateMealy(t)
	tree, err := splitting.Build(m, splitting.Options{})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < i; j++ {
			p := fsm.PairIndex(fsm.State(i), fsm.State(j))
			require.NotEmpty(t, tree.Separator[p], "pair (%d,%d) must have a separator", i, j)
			require.NotEqual(t, -1, tree.Distinguished[p], "pair (%d,%d) must be distinguished in the tree", i, j)
		}
	}
}

func TestBuildCurNodeAreLeaves(t *testing.T) {
	m := buildThreeStateMealy(t)
	tree, err := splitting.Build(m, splitting.Options{})
	require.NoError(t, err)

	for s := 0; s < m.NumStates(); s++ {
		node := tree.Nodes[tree.CurNode[s]]
		require.True(t, node.IsLeaf(), "CurNode for state %d should be a leaf", s)
		require.Contains(t, node.Block, fsm.State(s))
	}
}

func TestBuildRejectsNonReduced(t *testing.T) {
	m := fsm.NewMealy(2, 1, 1)
	_, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	_, err = m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(1, 0, 1, 0))

	_, err = splitting.Build(m, splitting.Options{})
	require.ErrorIs(t, err, splitting.ErrNotReduced)
}

func TestBuildAllowInvalidInputsProducesPartialTree(t *testing.T) {
	m := fsm.NewMealy(2, 1, 1)
	_, err := m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	_, err = m.AddState(fsm.DefaultOutput)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(1, 0, 1, 0))

	tree, err := splitting.Build(m, splitting.Options{AllowInvalidInputs: true})
	require.NoError(t, err)
	require.True(t, tree.Root().InvalidInputUsed)
	require.Equal(t, 2, tree.Root().UndistinguishedStates)
}
