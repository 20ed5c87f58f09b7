package sequence

import "github.com/katalvlaran/fsmlearn/fsm"

// StateCover returns one input sequence per reachable state: the
// shortest sequence, starting from the initial state, that first
// reaches it. The empty sequence is always included (it reaches the
// initial state). Unreachable states are simply absent.
func StateCover(m *fsm.DFSM) [][]fsm.Input {
	type frame struct {
		state fsm.State
		path  []fsm.Input
	}
	covered := make([]bool, m.NumStates())
	cover := [][]fsm.Input{{}}
	covered[m.InitialState()] = true

	queue := []frame{{state: m.InitialState(), path: nil}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			next := m.GetNextState(cur.state, fsm.Input(i))
			if next == fsm.NullState || covered[next] {
				continue
			}
			covered[next] = true
			path := appendPath(cur.path, fsm.Input(i), m.IsOutputState())
			cover = append(cover, path)
			queue = append(queue, frame{state: next, path: path})
		}
	}
	return cover
}

// TransitionCover returns a state cover extended with one additional
// sequence per transition out of every reached state, so every
// transition (not merely every state) is exercised at least once.
func TransitionCover(m *fsm.DFSM) [][]fsm.Input {
	type frame struct {
		state fsm.State
		path  []fsm.Input
	}
	covered := make([]bool, m.NumStates())
	cover := [][]fsm.Input{{}}
	covered[m.InitialState()] = true

	queue := []frame{{state: m.InitialState(), path: nil}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			next := m.GetNextState(cur.state, fsm.Input(i))
			if next == fsm.NullState {
				continue
			}
			path := appendPath(cur.path, fsm.Input(i), m.IsOutputState())
			cover = append(cover, path)
			if !covered[next] {
				covered[next] = true
				queue = append(queue, frame{state: next, path: path})
			}
		}
	}
	return cover
}

// TraversalSet returns every input sequence of length up to depth
// (counting only real inputs, not inserted StoutInput observations),
// rooted at the empty sequence.
func TraversalSet(m *fsm.DFSM, depth int) [][]fsm.Input {
	var out [][]fsm.Input
	if depth <= 0 {
		return out
	}
	limit := depth
	if m.IsOutputState() {
		limit *= 2 // StoutInput follows each real input in the stored length
	}
	queue := [][]fsm.Input{{}}
	for len(queue) > 0 {
		seq := queue[0]
		queue = queue[1:]
		for i := 0; i < m.NumInputs(); i++ {
			ext := appendPath(seq, fsm.Input(i), m.IsOutputState())
			out = append(out, ext)
			if len(ext) < limit {
				queue = append(queue, ext)
			}
		}
	}
	return out
}

// appendPath copies path, appends input, and — for kinds that carry a
// state output — appends StoutInput right after it so every extension
// also observes the state just reached.
func appendPath(path []fsm.Input, input fsm.Input, withStout bool) []fsm.Input {
	out := make([]fsm.Input, len(path), len(path)+2)
	copy(out, path)
	out = append(out, input)
	if withStout {
		out = append(out, fsm.StoutInput)
	}
	return out
}
