package sequence_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
	"github.com/katalvlaran/fsmlearn/splitting"
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

func TestStateCoverReachesEveryState(t *testing.T) {
	m := buildThreeStateMealy(t)
	cover := sequence.StateCover(m)
	reached := map[fsm.State]bool{}
	for _, seq := range cover {
		reached[m.GetEndPathState(m.InitialState(), seq)] = true
	}
	require.Len(t, reached, m.NumStates())
}

func TestTransitionCoverIncludesStateCover(t *testing.T) {
	m := buildThreeStateMealy(t)
	sc := sequence.StateCover(m)
	tc := sequence.TransitionCover(m)
	require.GreaterOrEqual(t, len(tc), len(sc))
}

func TestTraversalSetRespectsDepth(t *testing.T) {
	m := buildThreeStateMealy(t)
	ts := sequence.TraversalSet(m, 1)
	for _, seq := range ts {
		require.LessOrEqual(t, len(seq), 1)
	}
	require.Len(t, ts, m.NumInputs())
}

func TestPresetDistinguishingSequenceDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	pds, err := sequence.PresetDistinguishingSequence(m)
	require.NoError(t, err)

	seen := map[string]bool{}
	for s := 0; s < m.NumStates(); s++ {
		out := m.GetOutputAlongPath(fsm.State(s), pds)
		key := ""
		for _, o := range out {
			key += string(rune('0' + o))
		}
		require.False(t, seen[key], "state %d's response collides with another state's", s)
		seen[key] = true
	}
}

func TestSynchronizingSequenceCollapsesAllStates(t *testing.T) {
	// buildThreeStateMealy has two sink states (1 and 2) and so no
	// synchronizing sequence; here input 0 sends every state to 0.
	m := fsm.NewMealy(3, 2, 2)
	for i := 0; i < 3; i++ {
		_, err := m.AddState(fsm.DefaultOutput)
		require.NoError(t, err)
	}
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(0, 1, 1, 0))
	require.NoError(t, m.SetTransition(1, 0, 0, 0))
	require.NoError(t, m.SetTransition(1, 1, 2, 1))
	require.NoError(t, m.SetTransition(2, 0, 0, 1))
	require.NoError(t, m.SetTransition(2, 1, 2, 1))
	ss, err := sequence.SynchronizingSequence(m)
	require.NoError(t, err)

	end := map[fsm.State]bool{}
	for s := 0; s < m.NumStates(); s++ {
		end[m.GetEndPathState(fsm.State(s), ss)] = true
	}
	require.Len(t, end, 1)
}

func TestStateVerifyingSequenceConfirmsOnlyItsState(t *testing.T) {
	m := buildThreeStateMealy(t)
	svs, err := sequence.StateVerifyingSequence(m, 0)
	require.NoError(t, err)

	want := m.GetOutputAlongPath(0, svs)
	for s := 1; s < m.NumStates(); s++ {
		got := m.GetOutputAlongPath(fsm.State(s), svs)
		require.NotEqual(t, want, got)
	}
}

func TestAdaptiveDistinguishingSetGivesDisjointLeaves(t *testing.T) {
	m := buildThreeStateMealy(t)
	ads, err := sequence.AdaptiveDistinguishingSet(m)
	require.NoError(t, err)
	require.Len(t, ads, m.NumStates())
}

func TestCharacterizingSetDistinguishesAllPairs(t *testing.T) {
	m := buildThreeStateMealy(t)
	w, err := sequence.CharacterizingSet(m, splitting.Options{})
	require.NoError(t, err)
	require.NotEmpty(t, w)

	for i := 0; i < m.NumStates(); i++ {
		for j := 0; j < i; j++ {
			distinguished := false
			for _, seq := range w {
				if !equalOutputs(m.GetOutputAlongPath(fsm.State(i), seq), m.GetOutputAlongPath(fsm.State(j), seq)) {
					distinguished = true
					break
				}
			}
			require.True(t, distinguished, "pair (%d,%d) not distinguished by W", i, j)
		}
	}
}

func equalOutputs(a, b []fsm.Output) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
