package fsmfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fsmlearn/fsmfile"
	"github.com/stretchr/testify/require"
)

func TestListDirFindsOnlyFsmFilesSorted(t *testing.T) {
	dir := t.TempDir()
	m := buildMealy(t)

	require.NoError(t, fsmfile.Save(filepath.Join(dir, "b.fsm"), m))
	require.NoError(t, fsmfile.Save(filepath.Join(dir, "a.fsm"), m))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not an fsm file"), 0o644))

	paths, err := fsmfile.ListDir(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.fsm"),
		filepath.Join(dir, "b.fsm"),
	}, paths)
}

func TestLoadDirLoadsEveryFile(t *testing.T) {
	dir := t.TempDir()
	m := buildMealy(t)
	require.NoError(t, fsmfile.Save(filepath.Join(dir, "one.fsm"), m))
	require.NoError(t, fsmfile.Save(filepath.Join(dir, "two.fsm"), m))

	paths, models, err := fsmfile.LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	require.Len(t, models, 2)
	for _, loaded := range models {
		require.Equal(t, m.NumStates(), loaded.NumStates())
	}
}
