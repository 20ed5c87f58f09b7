package sequence

import (
	"container/heap"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// refineNode is one node of the search shared by
// PresetDistinguishingSequence and PresetHomingSequence: a partition of
// still-conflated states, and the input sequence that reached it.
type refineNode struct {
	partition partition
	seq       []fsm.Input
}

// conflatedCount totals the states still needing separation across
// every block of p (singletons, already resolved, are never stored).
func (p partition) conflatedCount() int {
	n := 0
	for _, b := range p {
		n += len(b)
	}
	return n
}

// refineQueue is a best-first priority queue over refineNode, ordered
// by PDSHeuristicWeight*conflatedStates + sequence length — a search
// that still-large partitions sink to the bottom of, so a step that
// shrinks the conflated set a lot is explored before one that merely
// lengthens the sequence.
type refineQueue []refineNode

func (q refineQueue) Len() int { return len(q) }
func (q refineQueue) Less(i, j int) bool {
	pi := PDSHeuristicWeight*q[i].partition.conflatedCount() + len(q[i].seq)
	pj := PDSHeuristicWeight*q[j].partition.conflatedCount() + len(q[j].seq)
	return pi < pj
}
func (q refineQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *refineQueue) Push(x any)        { *q = append(*q, x.(refineNode)) }
func (q *refineQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// initialPartition groups all states by state output (if the kind
// carries one) or, for Mealy machines, returns the single all-states
// block. It also reports whether observing StoutInput first is
// required to see that initial split.
func initialPartition(m *fsm.DFSM) (partition, []fsm.Input) {
	if !m.IsOutputState() {
		if m.NumStates() <= 1 {
			return nil, nil
		}
		all := make(block, m.NumStates())
		for s := range all {
			all[s] = fsm.State(s)
		}
		return partition{all}, nil
	}
	byOutput := map[fsm.Output][]fsm.State{}
	for s := 0; s < m.NumStates(); s++ {
		o := m.GetOutput(fsm.State(s), fsm.StoutInput)
		byOutput[o] = append(byOutput[o], fsm.State(s))
	}
	var p partition
	for _, states := range byOutput {
		if len(states) > 1 {
			p = append(p, newBlock(states...))
		}
	}
	var seq []fsm.Input
	if len(byOutput) > 1 {
		seq = []fsm.Input{fsm.StoutInput}
	}
	return p, seq
}

// refineByInput applies input to every block of p, replacing each
// block by the next states its members reach, grouped by observed
// output. allowOneGap permits at most one state per block to lack a
// transition under input and rejects input when two states of a group
// reach the same next state (PresetDistinguishingSequence's rules);
// PresetHomingSequence passes false, so every state needs a transition
// and states that merge simply stay merged.
func refineByInput(m *fsm.DFSM, p partition, input fsm.Input, allowOneGap bool) (partition, bool) {
	var next partition
	for _, b := range p {
		groups := map[fsm.Output][]fsm.State{}
		gapSeen := false
		for _, s := range b {
			if !m.HasTransition(s, input) {
				if allowOneGap && !gapSeen {
					gapSeen = true
					continue
				}
				return nil, false
			}
			o := m.GetOutput(s, input)
			n := m.GetNextState(s, input)
			groups[o] = append(groups[o], n)
		}
		for k, members := range groups {
			if allowOneGap && len(newBlock(members...)) < len(members) {
				return nil, false
			}
			if len(newBlock(members...)) > 1 {
				next = append(next, newBlock(members...))
			}
			_ = k
		}
	}
	return next, true
}

// refineByStout further splits every block of p by state output,
// reporting whether it actually changed anything (stoutUsed).
func refineByStout(m *fsm.DFSM, p partition) (partition, bool) {
	var next partition
	used := false
	for _, b := range p {
		byOutput := map[fsm.Output][]fsm.State{}
		for _, s := range b {
			byOutput[m.GetOutput(s, fsm.StoutInput)] = append(byOutput[m.GetOutput(s, fsm.StoutInput)], s)
		}
		if len(byOutput) > 1 {
			used = true
		}
		for _, members := range byOutput {
			if len(members) > 1 {
				next = append(next, newBlock(members...))
			}
		}
	}
	if !used {
		return p, false
	}
	return next, true
}

// PresetDistinguishingSequence searches best-first (see refineQueue) for a single
// fixed input sequence that, applied from every state, produces a
// distinct observation for each — i.e. the responses alone reveal
// which state the machine started in. Returns ErrNoSequence if the
// machine provably has none (detected by search exhaustion without a
// growing partition), or ErrSearchExhausted past MaxClosedNodes.
func PresetDistinguishingSequence(m *fsm.DFSM) ([]fsm.Input, error) {
	p, seq := initialPartition(m)
	if p.empty() {
		if m.IsOutputState() {
			return []fsm.Input{fsm.StoutInput}, nil
		}
		return []fsm.Input{}, nil
	}

	queue := &refineQueue{{partition: p, seq: seq}}
	heap.Init(queue)
	used := map[string]bool{p.key(): true}

	for queue.Len() > 0 {
		if len(used) > MaxClosedNodes {
			return nil, ErrSearchExhausted
		}
		act := heap.Pop(queue).(refineNode)
		for i := 0; i < m.NumInputs(); i++ {
			next, ok := refineByInput(m, act.partition, fsm.Input(i), true)
			if !ok {
				continue
			}
			stoutUsed := false
			if m.IsOutputState() {
				next, stoutUsed = refineByStout(m, next)
			}
			candidate := append(append([]fsm.Input{}, act.seq...), fsm.Input(i))
			if stoutUsed {
				candidate = append(candidate, fsm.StoutInput)
			}
			if next.empty() {
				return candidate, nil
			}
			k := next.key()
			if used[k] {
				continue
			}
			used[k] = true
			heap.Push(queue, refineNode{partition: next, seq: candidate})
		}
	}
	return nil, ErrNoSequence
}
