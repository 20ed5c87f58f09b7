package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// cacheNode is one node of the response tree: the output observed
// along the edge leading to it, plus its known children.
type cacheNode struct {
	output   fsm.Output
	children map[fsm.Input]*cacheNode
}

func newCacheNode() *cacheNode {
	return &cacheNode{children: map[fsm.Input]*cacheNode{}}
}

// TreeCached wraps an opaque BlackBox and memoizes every observed
// prefix in a response tree. A query whose full sequence is already
// cached is answered without touching the underlying box at all;
// a query that runs past the cached frontier replays the cached
// prefix (a reset plus the already-known inputs) and queries only the
// uncached suffix for real. If the underlying box is not resettable,
// caching degrades to a passthrough: without a reset there is no way
// to reposition it at a cached prefix, so every query goes straight
// through (and is not cached, since the box's actual position can no
// longer be assumed to match the tree root afterwards).
type TreeCached struct {
	underlying BlackBox
	root       *cacheNode
}

// NewTreeCached wraps underlying with an empty response tree.
func NewTreeCached(underlying BlackBox) *TreeCached {
	return &TreeCached{underlying: underlying, root: newCacheNode()}
}

func (t *TreeCached) IsResettable() bool        { return t.underlying.IsResettable() }
func (t *TreeCached) ModelType() fsm.Kind       { return t.underlying.ModelType() }
func (t *TreeCached) NumInputs() int            { return t.underlying.NumInputs() }
func (t *TreeCached) NumOutputs() int           { return t.underlying.NumOutputs() }
func (t *TreeCached) QueriedSymbolsCount() int  { return t.underlying.QueriedSymbolsCount() }
func (t *TreeCached) AppliedResetCount() int    { return t.underlying.AppliedResetCount() }

func (t *TreeCached) Reset() { t.underlying.Reset() }

func (t *TreeCached) Query(input fsm.Input) fsm.Output {
	return t.underlying.Query(input)
}

// QuerySeq serves a sequence fully covered by the cache without
// touching the underlying box; otherwise it replays the cached prefix
// (if resettable) and extends for real, caching the new outputs.
func (t *TreeCached) QuerySeq(seq []fsm.Input) []fsm.Output {
	if !t.underlying.IsResettable() {
		return t.underlying.QuerySeq(seq)
	}

	node := t.root
	out := make([]fsm.Output, 0, len(seq))
	i := 0
	for ; i < len(seq); i++ {
		child, ok := node.children[seq[i]]
		if !ok {
			break
		}
		out = append(out, child.output)
		node = child
	}
	if i == len(seq) {
		return out
	}

	t.underlying.Reset()
	if i > 0 {
		t.underlying.QuerySeq(seq[:i])
	}
	rest := t.underlying.QuerySeq(seq[i:])
	for j, o := range rest {
		in := seq[i+j]
		child, ok := node.children[in]
		if !ok {
			child = newCacheNode()
			node.children[in] = child
		}
		child.output = o
		node = child
	}
	return append(out, rest...)
}

func (t *TreeCached) ResetAndQuery(input fsm.Input) fsm.Output {
	t.Reset()
	return t.Query(input)
}

func (t *TreeCached) ResetAndQuerySeq(seq []fsm.Input) []fsm.Output {
	t.Reset()
	return t.QuerySeq(seq)
}
