package sequence

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// MaxClosedNodes bounds every breadth-first/best-first search in this
// package: once this many distinct partitions/blocks have been
// expanded without reaching a singleton result, the search gives up
// with ErrSearchExhausted rather than running unbounded.
const MaxClosedNodes = 1_000_000

// PDSHeuristicWeight scales the "states still conflated" term against
// the "sequence length so far" term in PresetDistinguishingSequence's
// best-first search (refineQueue), the one search in this package that
// uses a priority queue instead of a plain FIFO. A higher weight favors
// collapsing blocks quickly over keeping the sequence short.
const PDSHeuristicWeight = 4

// block is a sorted, deduplicated set of states, used as a partition
// element throughout this package.
type block []fsm.State

func newBlock(states ...fsm.State) block {
	seen := make(map[fsm.State]struct{}, len(states))
	b := make(block, 0, len(states))
	for _, s := range states {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		b = append(b, s)
	}
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return b
}

func (b block) key() string {
	parts := make([]string, len(b))
	for i, s := range b {
		parts[i] = strconv.Itoa(int(s))
	}
	return strings.Join(parts, ",")
}

// partition is a set of disjoint blocks, each holding more than one
// state (singletons are dropped — they need no further distinguishing).
type partition []block

func (p partition) key() string {
	keys := make([]string, len(p))
	for i, b := range p {
		keys[i] = b.key()
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

func (p partition) empty() bool { return len(p) == 0 }
