package fsm

// AreIsomorphic reports whether there is a bijection on states between a
// and b that preserves δ and every output, by simultaneous BFS from
// a.InitialState() and b.InitialState(), failing on the first
// divergence. Machines of different Kind, NumInputs, or NumStates are
// never isomorphic (a quick-reject before the BFS).
func AreIsomorphic(a, b *DFSM) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.numInputs != b.numInputs || a.numStates != b.numStates {
		return false
	}

	aToB := make(map[State]State, a.numStates)
	bToA := make(map[State]State, a.numStates)

	type pair struct{ a, b State }
	queue := []pair{{a.initialState, b.initialState}}
	aToB[a.initialState] = b.initialState
	bToA[b.initialState] = a.initialState

	dA := describeKind(a.kind)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		if dA.isOutputState && a.stateOutput[p.a] != b.stateOutput[p.b] {
			return false
		}

		for i := 0; i < a.numInputs; i++ {
			ta := a.transition[p.a][i]
			tb := b.transition[p.b][i]
			if (ta == NullState) != (tb == NullState) {
				return false
			}
			if ta == NullState {
				continue
			}
			if dA.isOutputTransition && a.transitionOutput[p.a][i] != b.transitionOutput[p.b][i] {
				return false
			}
			if mapped, ok := aToB[ta]; ok {
				if mapped != tb {
					return false
				}
				continue
			}
			if _, ok := bToA[tb]; ok {
				// tb already claimed by a different a-state
				return false
			}
			aToB[ta] = tb
			bToA[tb] = ta
			queue = append(queue, pair{ta, tb})
		}
	}

	return len(aToB) == a.numStates
}
