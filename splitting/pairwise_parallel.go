package splitting

import (
	"context"
	"runtime"

	"github.com/katalvlaran/fsmlearn/fsm"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// computeSeparatorsParallel is computeSeparators with its first phase
// — classifying every pair's immediate (round-0) separation by state
// output or some input's output — run concurrently across a bounded
// worker pool, since that classification is independent per pair: each
// goroutine reads only m and writes only its own pair's slot. The
// second phase (back-link propagation once a pair is known separated)
// stays sequential: which pairs unblock next depends on processing
// order, so parallelizing it would not reproduce the sequential
// algorithm's output bit-for-bit. workers <= 0 defaults to GOMAXPROCS.
//
// Output is bit-identical to computeSeparators for the same (m, opts).
func computeSeparatorsParallel(m *fsm.DFSM, opts Options, workers int) (sep [][]fsm.Input, err error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := m.NumStates()
	total := fsm.NumPairs(n)
	sep = make([][]fsm.Input, total)
	separated := make([]bool, total)
	hasStateOutput := m.IsOutputState()

	type pairKey struct{ i, j int }
	pairs := make([]pairKey, 0, total)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			pairs = append(pairs, pairKey{i, j})
		}
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(context.Background())
	links := make([]map[int][]link, len(pairs))

	for idx := range pairs {
		idx := idx
		pk := pairs[idx]
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			p := fsm.PairIndex(fsm.State(pk.i), fsm.State(pk.j))
			classifyPair(m, opts, pk.i, pk.j, p, hasStateOutput, sep, separated, links, idx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge per-pair back-link maps (built without shared-map writes
	// above) and seed the propagation queue in pair-index order, so
	// the queue's initial content matches the sequential build.
	merged := make(map[int][]link)
	var queue []int
	for p := 0; p < total; p++ {
		if separated[p] {
			queue = append(queue, p)
		}
	}
	for _, lm := range links {
		for target, ls := range lm {
			merged[target] = append(merged[target], ls...)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, lk := range merged[p] {
			if separated[lk.pair] {
				continue
			}
			suffix := sep[p]
			needStout := hasStateOutput && !opts.OmitUnnecessaryStoutInputs &&
				(len(suffix) == 0 || suffix[0] != fsm.StoutInput)
			newSeq := make([]fsm.Input, 0, len(suffix)+2)
			newSeq = append(newSeq, lk.input)
			if needStout {
				newSeq = append(newSeq, fsm.StoutInput)
			}
			newSeq = append(newSeq, suffix...)
			sep[lk.pair] = newSeq
			separated[lk.pair] = true
			queue = append(queue, lk.pair)
		}
	}

	for p := 0; p < total; p++ {
		if !separated[p] {
			if opts.AllowInvalidInputs {
				continue
			}
			return nil, ErrNotReduced
		}
	}
	return sep, nil
}

// classifyPair fills sep/separated/links for one pair's round-0
// classification. Each call owns a disjoint (sep[p], separated[p],
// links[idx]) triple, so concurrent calls never race.
func classifyPair(m *fsm.DFSM, opts Options, i, j, p int, hasStateOutput bool, sep [][]fsm.Input, separated []bool, links []map[int][]link, idx int) {
	if hasStateOutput && m.GetOutput(fsm.State(i), fsm.StoutInput) != m.GetOutput(fsm.State(j), fsm.StoutInput) {
		sep[p] = []fsm.Input{fsm.StoutInput}
		separated[p] = true
		return
	}
	for x := 0; x < m.NumInputs(); x++ {
		oi := m.GetOutput(fsm.State(i), fsm.Input(x))
		oj := m.GetOutput(fsm.State(j), fsm.Input(x))
		if oi != oj {
			sep[p] = []fsm.Input{fsm.Input(x)}
			separated[p] = true
			return
		}
	}
	own := make(map[int][]link)
	for x := 0; x < m.NumInputs(); x++ {
		ni := m.GetNextState(fsm.State(i), fsm.Input(x))
		nj := m.GetNextState(fsm.State(j), fsm.Input(x))
		if ni == fsm.NullState || nj == fsm.NullState || ni == nj {
			continue
		}
		target := fsm.PairIndex(ni, nj)
		own[target] = append(own[target], link{pair: p, input: fsm.Input(x)})
	}
	links[idx] = own
}
