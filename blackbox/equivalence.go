package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// equivalenceBFS walks the product of ref and conjecture breadth-
// first, pairing their states as it goes, and returns the shortest
// input sequence whose response differs between the two — or nil if
// every reachable pair of states agrees on every input (and, for
// state-output kinds, on their own state output too).
func equivalenceBFS(ref, conjecture *fsm.DFSM) []fsm.Input {
	type pair struct{ r, c fsm.State }
	start := pair{ref.InitialState(), conjecture.InitialState()}

	if ref.IsOutputState() {
		if ref.GetOutput(start.r, fsm.StoutInput) != conjecture.GetOutput(start.c, fsm.StoutInput) {
			return []fsm.Input{}
		}
	}

	type frame struct {
		p    pair
		path []fsm.Input
	}
	visited := map[pair]bool{start: true}
	queue := []frame{{p: start}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for i := 0; i < ref.NumInputs(); i++ {
			in := fsm.Input(i)
			if ref.GetOutput(cur.p.r, in) != conjecture.GetOutput(cur.p.c, in) {
				return appendInput(cur.path, in)
			}
			next := pair{ref.GetNextState(cur.p.r, in), conjecture.GetNextState(cur.p.c, in)}
			if visited[next] {
				continue
			}
			if ref.IsOutputState() {
				if ref.GetOutput(next.r, fsm.StoutInput) != conjecture.GetOutput(next.c, fsm.StoutInput) {
					return appendInput(cur.path, in)
				}
			}
			visited[next] = true
			queue = append(queue, frame{p: next, path: appendInput(cur.path, in)})
		}
	}
	return nil
}

func appendInput(path []fsm.Input, in fsm.Input) []fsm.Input {
	out := make([]fsm.Input, len(path)+1)
	copy(out, path)
	out[len(path)] = in
	return out
}
