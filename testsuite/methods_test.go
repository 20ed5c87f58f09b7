package testsuite_test

import (
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/testsuite"
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

// exercises detects all three states as distinct by feeding every
// suite sequence from every state and checking no two states produce
// identical responses across the whole suite.
func exercisesAllStates(m *fsm.DFSM, suite [][]fsm.Input) bool {
	n := m.NumStates()
	sigs := make([]string, n)
	for s := 0; s < n; s++ {
		for _, seq := range suite {
			for _, o := range m.GetOutputAlongPath(fsm.State(s), seq) {
				sigs[s] += string(rune('0' + o))
			}
			sigs[s] += "|"
		}
	}
	seen := map[string]bool{}
	for _, sig := range sigs {
		if seen[sig] {
			return false
		}
		seen[sig] = true
	}
	return true
}

func TestPDSDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.PDS(m, testsuite.Options{ExtraStates: 0})
	require.NoError(t, err)
	require.NotEmpty(t, suite)
	require.True(t, exercisesAllStates(m, suite))
}

func TestADSDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.ADS(m, testsuite.Options{ExtraStates: 0})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestWDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.W(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestWpDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.Wp(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestHSIDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.HSI(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestHDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.H(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestSPYDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.SPY(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestSPYHDistinguishesAllStates(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.SPYH(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	require.True(t, exercisesAllStates(m, suite))
}

func TestSuitesArePrefixMinimized(t *testing.T) {
	m := buildThreeStateMealy(t)
	suite, err := testsuite.W(m, testsuite.Options{ExtraStates: 1})
	require.NoError(t, err)
	for i, a := range suite {
		for j, b := range suite {
			if i == j || len(a) >= len(b) {
				continue
			}
			require.False(t, isPrefix(a, b), "suite sequence %v is a redundant prefix of %v", a, b)
		}
	}
}

func isPrefix(a, b []fsm.Input) bool {
	if len(a) > len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func buildStronglyConnectedMealy(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMealy(3, 2, 2)
	for i := 0; i < 3; i++ {
		_, err := m.AddState(fsm.DefaultOutput)
		require.NoError(t, err)
	}
	require.NoError(t, m.SetTransition(0, 0, 1, 0))
	require.NoError(t, m.SetTransition(0, 1, 0, 1))
	require.NoError(t, m.SetTransition(1, 0, 2, 0))
	require.NoError(t, m.SetTransition(1, 1, 0, 0))
	require.NoError(t, m.SetTransition(2, 0, 0, 1))
	require.NoError(t, m.SetTransition(2, 1, 1, 1))
	return m
}

func TestCBuildsOneContinuousSequence(t *testing.T) {
	m := buildStronglyConnectedMealy(t)
	cs, err := testsuite.C(m, testsuite.Options{ExtraStates: 0})
	require.NoError(t, err)
	require.NotEmpty(t, cs)
}
