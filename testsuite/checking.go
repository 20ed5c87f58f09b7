package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Stitch concatenates fragments into one continuous input sequence
// starting from m's initial state: each fragment is assumed to be
// meant for application from the initial state, so between fragments
// Stitch inserts the shortest path from wherever the previous fragment
// left off back to the initial state. Returns ErrNotStronglyConnected
// if no such path exists from some reached state.
func Stitch(m *fsm.DFSM, fragments [][]fsm.Input) ([]fsm.Input, error) {
	var out []fsm.Input
	cur := m.InitialState()
	for _, f := range fragments {
		if cur != m.InitialState() {
			path, ok := shortestPath(m, cur, m.InitialState())
			if !ok {
				return nil, ErrNotStronglyConnected
			}
			out = append(out, path...)
			cur = m.InitialState()
		}
		out = append(out, f...)
		cur = m.GetEndPathState(cur, f)
	}
	return out, nil
}

// shortestPath returns the shortest input sequence taking m from
// `from` to `to` via breadth-first search over the transition graph.
func shortestPath(m *fsm.DFSM, from, to fsm.State) ([]fsm.Input, bool) {
	if from == to {
		return nil, true
	}
	type frame struct {
		state fsm.State
		path  []fsm.Input
	}
	visited := make([]bool, m.NumStates())
	visited[from] = true
	queue := []frame{{state: from}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			next := m.GetNextState(cur.state, fsm.Input(i))
			if next == fsm.NullState || visited[next] {
				continue
			}
			path := make([]fsm.Input, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = fsm.Input(i)
			if next == to {
				return path, true
			}
			visited[next] = true
			queue = append(queue, frame{state: next, path: path})
		}
	}
	return nil, false
}

// C builds a checking sequence: a single continuous input sequence
// (no resets) with the same fault-coverage guarantee as the W-method
// test suite, by stitching the W suite's fragments together with
// shortest return-to-initial-state paths. Requires m to be strongly
// connected through its initial state.
func C(m *fsm.DFSM, opts Options) ([]fsm.Input, error) {
	suite, err := W(m, opts)
	if err != nil {
		return nil, err
	}
	return Stitch(m, suite)
}
