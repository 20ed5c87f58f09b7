package fsmfile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// ListDir returns the `.fsm` files directly inside dir, sorted by
// name. It does not recurse into subdirectories: batch runs target one
// flat corpus directory at a time, matching how the reference driver
// walks a machine-model corpus.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) != ".fsm" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths, nil
}

// LoadDir loads every `.fsm` file directly inside dir, in ListDir
// order. A single malformed file aborts the whole batch with that
// file's error — callers that want best-effort partial loading should
// call ListDir and Load individually instead.
func LoadDir(dir string) (paths []string, models []*fsm.DFSM, err error) {
	paths, err = ListDir(dir)
	if err != nil {
		return nil, nil, err
	}
	models = make([]*fsm.DFSM, len(paths))
	for i, p := range paths {
		m, err := Load(p)
		if err != nil {
			return nil, nil, err
		}
		models[i] = m
	}
	return paths, models, nil
}
