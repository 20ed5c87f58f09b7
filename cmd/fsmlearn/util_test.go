package main

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/stretchr/testify/require"
)

func TestParseIntRangeBareNumber(t *testing.T) {
	r, err := parseIntRange("5", 0, 100)
	require.NoError(t, err)
	require.Equal(t, intRange{5, 5}, r)
}

func TestParseIntRangeSpan(t *testing.T) {
	r, err := parseIntRange("2-6", 0, 100)
	require.NoError(t, err)
	require.Equal(t, intRange{2, 6}, r)
	require.True(t, r.contains(4))
	require.False(t, r.contains(7))
}

func TestParseIntRangeDefault(t *testing.T) {
	r, err := parseIntRange("", 1, 9)
	require.NoError(t, err)
	require.Equal(t, intRange{1, 9}, r)
}

func TestParseKindMaskAll(t *testing.T) {
	kinds, err := parseKindMask("all")
	require.NoError(t, err)
	require.Len(t, kinds, 4)
}

func TestParseKindMaskSubset(t *testing.T) {
	kinds, err := parseKindMask("mealy,dfa")
	require.NoError(t, err)
	require.True(t, kinds[fsm.Mealy])
	require.True(t, kinds[fsm.DFA])
	require.False(t, kinds[fsm.Moore])
}

func TestParseKindMaskRejectsUnknown(t *testing.T) {
	_, err := parseKindMask("nonsense")
	require.Error(t, err)
}

func TestInFilenameRange(t *testing.T) {
	require.True(t, inFilenameRange("b.fsm", "a.fsm", "c.fsm"))
	require.False(t, inFilenameRange("d.fsm", "a.fsm", "c.fsm"))
	require.True(t, inFilenameRange("anything.fsm", "", ""))
}

func TestResultWriterEmitsHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	rw := newResultWriter(&buf)
	require.NoError(t, rw.Write(resultRow{FileName: "a.fsm", Algorithm: "L*"}))
	require.NoError(t, rw.Write(resultRow{FileName: "b.fsm", Algorithm: "TTT"}))
	require.NoError(t, rw.Flush())

	out := buf.String()
	require.Equal(t, 1, bytes.Count([]byte(out), []byte("Correct/IndistMachines")))
}

func TestMinimizeCopyLeavesOriginalUntouched(t *testing.T) {
	m := fsm.NewMealy(0, 2, 2)
	for i := 0; i < 3; i++ {
		_, err := m.AddState(fsm.DefaultOutput)
		require.NoError(t, err)
	}
	require.NoError(t, m.SetTransition(0, 0, 0, 0))
	require.NoError(t, m.SetTransition(0, 1, 1, 0))
	require.NoError(t, m.SetTransition(1, 0, 0, 0))
	require.NoError(t, m.SetTransition(1, 1, 1, 1))
	require.NoError(t, m.SetTransition(2, 0, 2, 0))
	require.NoError(t, m.SetTransition(2, 1, 1, 0))

	min := minimizeCopy(m)
	require.Equal(t, 3, m.NumStates())
	require.Less(t, min.NumStates(), m.NumStates())
}
