package fsm

import "fmt"

// Minimize partitions states by behavioral equivalence (Moore-style
// partition refinement: start from an output-based partition, repeatedly
// refine blocks by the partition-id of every (input) successor, until a
// fixpoint) and rebuilds m in place as the minimized, compact machine.
// It returns renaming[oldState] = newState. Calling Minimize on an
// already-reduced machine is idempotent: it returns the identity
// renaming and leaves m unchanged in content (state ids may still be
// renumbered to their block-representative order, which for an already
// singleton-block partition is the identity by construction).
func (m *DFSM) Minimize() []State {
	n := m.numStates
	if n == 0 {
		return nil
	}

	block := make([]int, n) // block[s] = current partition id
	d := describeKind(m.kind)

	// Initial partition: by state output if the kind carries one, else
	// a single block (Mealy machines are first split by transition
	// output in the refinement loop below).
	if d.isOutputState {
		sig := map[Output]int{}
		for s := 0; s < n; s++ {
			o := m.stateOutput[s]
			id, ok := sig[o]
			if !ok {
				id = len(sig)
				sig[o] = id
			}
			block[s] = id
		}
	} else {
		for s := range block {
			block[s] = 0
		}
	}

	for {
		type key struct {
			blk int
			sig string
		}
		newID := map[key]int{}
		newBlock := make([]int, n)
		for s := 0; s < n; s++ {
			k := key{blk: block[s]}
			buf := make([]byte, 0, m.numInputs*8)
			for i := 0; i < m.numInputs; i++ {
				t := m.transition[s][i]
				tb := -1
				if t != NullState {
					tb = block[t]
				}
				out := Output(DefaultOutput)
				if d.isOutputTransition {
					out = m.GetOutput(State(s), Input(i))
				}
				buf = fmt.Appendf(buf, "|%d,%d", tb, out)
			}
			k.sig = string(buf)
			id, ok := newID[k]
			if !ok {
				id = len(newID)
				newID[k] = id
			}
			newBlock[s] = id
		}
		changed := false
		for s := 0; s < n; s++ {
			if newBlock[s] != block[s] {
				changed = true
				break
			}
		}
		// also changed if number of blocks grew even when ids happen to
		// coincide in form (guards against the above loop missing a grow
		// when relabeling order differs); compare block counts instead.
		if !changed {
			oldCount := map[int]struct{}{}
			for _, b := range block {
				oldCount[b] = struct{}{}
			}
			if len(oldCount) != len(newID) {
				changed = true
			}
		}
		block = newBlock
		if !changed {
			break
		}
	}

	// Assign final compact ids to blocks in order of first occurrence
	// (deterministic: lowest old state id wins its block's new id).
	renaming := make([]State, n)
	finalID := map[int]State{}
	order := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if _, ok := finalID[block[s]]; !ok {
			finalID[block[s]] = State(len(order))
			order = append(order, block[s])
		}
		renaming[s] = finalID[block[s]]
	}

	newN := len(order)
	newM := Create(m.kind, newN, m.numInputs, m.numOutputs)
	for range order {
		newM.AddState(DefaultOutput)
	}
	for _, oldS := range representativesOf(renaming, newN) {
		ns := renaming[oldS]
		if d.isOutputState {
			newM.stateOutput[ns] = m.stateOutput[oldS]
		}
		for i := 0; i < m.numInputs; i++ {
			t := m.transition[oldS][i]
			if t == NullState {
				continue
			}
			nt := renaming[t]
			newM.transition[ns][i] = nt
			if d.isOutputTransition {
				newM.transitionOutput[ns][i] = m.transitionOutput[oldS][i]
			}
		}
	}
	newM.initialState = renaming[m.initialState]

	*m = *newM
	return renaming
}

// representativesOf returns, for each new block id 0..newN-1, one old
// state id that maps to it (the lowest, since renaming is built in old
// state order).
func representativesOf(renaming []State, newN int) []int {
	reps := make([]int, newN)
	seen := make([]bool, newN)
	for old, ns := range renaming {
		if !seen[ns] {
			seen[ns] = true
			reps[ns] = old
		}
	}
	return reps
}
