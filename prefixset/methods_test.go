package prefixset_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
	"github.com/stretchr/testify/require"
)

func seq(xs ...int) []fsm.Input {
	out := make([]fsm.Input, len(xs))
	for i, x := range xs {
		out[i] = fsm.Input(x)
	}
	return out
}

func TestInsertAndContains(t *testing.T) {
	ps := prefixset.New()
	require.Equal(t, -1, ps.Contains(nil))

	require.True(t, ps.Insert(seq(0, 1)))
	require.Equal(t, 2, ps.Contains(seq(0, 1)))
	require.False(t, ps.Insert(seq(0, 1)))

	// A same-length, different-continuation sequence is a new insertion.
	require.True(t, ps.Insert(seq(0, 2)))
	require.Equal(t, 1, ps.Contains(seq(0, 3))) // only "0" matches
	require.Equal(t, 0, ps.Contains(seq(5)))
}

func TestGetMaximalSequencesIsPrefixFree(t *testing.T) {
	ps := prefixset.New()
	ps.Insert(seq(0, 1))
	ps.Insert(seq(0, 2))
	ps.Insert(seq(1))

	maximal := ps.GetMaximalSequences()
	require.Len(t, maximal, 3)

	strs := make([]string, len(maximal))
	for i, m := range maximal {
		s := ""
		for _, in := range m {
			s += string(rune('0' + in))
		}
		strs[i] = s
	}
	sort.Strings(strs)
	require.Equal(t, []string{"01", "02", "1"}, strs)
}

func TestPopMaximalSequenceDrainsSet(t *testing.T) {
	ps := prefixset.New()
	ps.Insert(seq(0, 1))
	ps.Insert(seq(0, 2))

	first := ps.PopMaximalSequence()
	require.NotEmpty(t, first)
	require.False(t, ps.Empty())

	second := ps.PopMaximalSequence()
	require.NotEmpty(t, second)
	require.True(t, ps.Empty())

	require.NotEqual(t, first, second)
}

func TestPopMaximalSequenceWithGivenPrefix(t *testing.T) {
	ps := prefixset.New()
	ps.Insert(seq(0, 1, 2))
	ps.Insert(seq(0, 1, 3))

	suffix := ps.PopMaximalSequenceWithGivenPrefix(seq(0, 1))
	require.Len(t, suffix, 1)
	require.Contains(t, [][]fsm.Input{{2}, {3}}, suffix)
	require.False(t, ps.Empty())

	none := ps.PopMaximalSequenceWithGivenPrefix(seq(9, 9))
	require.Nil(t, none)
}
