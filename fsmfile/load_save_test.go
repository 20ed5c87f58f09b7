package fsmfile_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/fsmfile"
	"github.com/stretchr/testify/require"
)

func buildMealy(t *testing.T) *fsm.DFSM {
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

func buildMoore(t *testing.T) *fsm.DFSM {
	t.Helper()
	m := fsm.NewMoore(2, 2, 2)
	_, err := m.AddState(0)
	require.NoError(t, err)
	_, err = m.AddState(1)
	require.NoError(t, err)
	require.NoError(t, m.SetTransition(0, 0, 0, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(0, 1, 1, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(1, 0, 1, fsm.DefaultOutput))
	require.NoError(t, m.SetTransition(1, 1, 0, fsm.DefaultOutput))
	return m
}

func TestSaveLoadRoundTripMealy(t *testing.T) {
	m := buildMealy(t)

	var buf bytes.Buffer
	require.NoError(t, fsmfile.SaveWriter(&buf, m))

	loaded, err := fsmfile.LoadReader(&buf)
	require.NoError(t, err)
	require.True(t, fsm.AreIsomorphic(m, loaded))
}

func TestSaveLoadRoundTripMoore(t *testing.T) {
	m := buildMoore(t)

	var buf bytes.Buffer
	require.NoError(t, fsmfile.SaveWriter(&buf, m))

	loaded, err := fsmfile.LoadReader(&buf)
	require.NoError(t, err)
	require.True(t, fsm.AreIsomorphic(m, loaded))
	require.Equal(t, m.GetOutput(0, fsm.StoutInput), loaded.GetOutput(0, fsm.StoutInput))
	require.Equal(t, m.GetOutput(1, fsm.StoutInput), loaded.GetOutput(1, fsm.StoutInput))
}

func TestLoadRejectsShortHeader(t *testing.T) {
	_, err := fsmfile.LoadReader(bytes.NewBufferString("2 2\n"))
	require.ErrorIs(t, err, fsmfile.ErrMalformed)
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	_, err := fsmfile.LoadReader(bytes.NewBufferString("2 2 2 0\n0 1 1 0\n"))
	require.ErrorIs(t, err, fsmfile.ErrMalformed)
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	_, err := fsmfile.LoadReader(bytes.NewBufferString("2 2 2 99\n"))
	require.ErrorIs(t, err, fsmfile.ErrMalformed)
}

func TestLoadSkipsAbsentTransitions(t *testing.T) {
	m, err := fsmfile.LoadReader(bytes.NewBufferString("2 2 2 0\n0 -1 1 0\n1 1 0 0\n"))
	require.NoError(t, err)
	require.False(t, m.HasTransition(0, 1))
	require.True(t, m.HasTransition(0, 0))
}
