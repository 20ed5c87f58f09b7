package faultcoverage

import (
	"sort"

	"github.com/katalvlaran/fsmlearn/fsm"
)

const (
	defaultMaxSolutions = 64
	defaultMaxExplored  = 200_000
)

// trieNode is one node of the prefix tree formed by the union of
// every sequence in a test suite, replayed against the reference
// machine. Each real-input edge carries the output the reference
// produced there (a fixed constraint every candidate must match);
// state-output queries (STOUT_INPUT) constrain the node itself rather
// than creating a child, since they observe without transitioning.
type trieNode struct {
	edges               map[fsm.Input]*trieEdge
	hasStateOutput      bool
	stateOutputExpected fsm.Output
}

type trieEdge struct {
	output fsm.Output
	to     *trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{edges: map[fsm.Input]*trieEdge{}}
}

// buildTrie replays every sequence in suite against ref from its
// initial state, folding them into one shared prefix tree.
func buildTrie(ref *fsm.DFSM, suite [][]fsm.Input) *trieNode {
	root := newTrieNode()
	for _, seq := range suite {
		cur := root
		state := ref.InitialState()
		for _, in := range seq {
			if in == fsm.StoutInput {
				cur.hasStateOutput = true
				cur.stateOutputExpected = ref.GetOutput(state, fsm.StoutInput)
				continue
			}
			edge, ok := cur.edges[in]
			if !ok {
				edge = &trieEdge{output: ref.GetOutput(state, in), to: newTrieNode()}
				cur.edges[in] = edge
			}
			state = ref.GetNextState(state, in)
			cur = edge.to
		}
	}
	return root
}

// searchState is the mutable backtracking context: a partial
// transition/output table over n hypothesis states, and counters
// bounding the search. Every mutation made while descending into one
// branch is undone (via defer) before trying the next, so the same
// searchState instance is reused across the whole enumeration.
type searchState struct {
	kind                               fsm.Kind
	n, numInputs, numOutputs           int
	isOutputState, isOutputTransition  bool
	transTarget                        [][]int
	transOutput                        [][]fsm.Output
	stateOutput                        []fsm.Output
	used                               int
	explored, maxExplored, maxSolutions int
	results                            []*fsm.DFSM
}

func newSearchState(ref *fsm.DFSM, n, maxSolutions, maxExplored int) *searchState {
	s := &searchState{
		kind:               ref.Kind(),
		n:                  n,
		numInputs:          ref.NumInputs(),
		numOutputs:         ref.NumOutputs(),
		isOutputState:      ref.IsOutputState(),
		isOutputTransition: ref.IsOutputTransition(),
		maxSolutions:       maxSolutions,
		maxExplored:        maxExplored,
	}
	s.transTarget = make([][]int, n)
	for i := range s.transTarget {
		s.transTarget[i] = make([]int, s.numInputs)
		for j := range s.transTarget[i] {
			s.transTarget[i][j] = -1
		}
	}
	if s.isOutputTransition {
		s.transOutput = make([][]fsm.Output, n)
		for i := range s.transOutput {
			s.transOutput[i] = make([]fsm.Output, s.numInputs)
			for j := range s.transOutput[i] {
				s.transOutput[i][j] = fsm.DefaultOutput
			}
		}
	}
	if s.isOutputState {
		s.stateOutput = make([]fsm.Output, n)
		for i := range s.stateOutput {
			s.stateOutput[i] = fsm.DefaultOutput
		}
	}
	return s
}

// assignNode colors node with color, checking/recording its
// state-output constraint, then walks its edges (assignEdges) before
// invoking done — the continuation representing everything the
// caller still needs to do once node's whole subtree is settled.
func (s *searchState) assignNode(node *trieNode, color int, done func()) {
	if s.explored >= s.maxExplored || len(s.results) >= s.maxSolutions {
		return
	}
	s.explored++

	if s.isOutputState && node.hasStateOutput {
		prev := s.stateOutput[color]
		if prev != fsm.DefaultOutput && prev != node.stateOutputExpected {
			return
		}
		s.stateOutput[color] = node.stateOutputExpected
		defer func() { s.stateOutput[color] = prev }()
	}

	edges := make([]fsm.Input, 0, len(node.edges))
	for in := range node.edges {
		edges = append(edges, in)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })

	s.assignEdges(node, color, edges, 0, done)
}

// assignEdges processes edges[idx:] of node one at a time. A real
// input whose (color,input) transition is already fixed forces the
// child to that same target state (no branching); one that is still
// free is tried against every state color already in use plus, if
// budget remains, one brand-new color — the standard symmetry
// reduction that avoids exploring permutation-equivalent colorings.
func (s *searchState) assignEdges(node *trieNode, color int, edges []fsm.Input, idx int, done func()) {
	if idx == len(edges) {
		done()
		return
	}
	in := edges[idx]
	edge := node.edges[in]
	rest := func() { s.assignEdges(node, color, edges, idx+1, done) }

	if s.isOutputTransition {
		prev := s.transOutput[color][in]
		if prev != fsm.DefaultOutput && prev != edge.output {
			return
		}
		s.transOutput[color][in] = edge.output
		defer func() { s.transOutput[color][in] = prev }()
	}

	if target := s.transTarget[color][in]; target != -1 {
		s.assignNode(edge.to, target, rest)
		return
	}

	limit := s.used
	if limit > s.n-1 {
		limit = s.n - 1
	}
	for cand := 0; cand <= limit; cand++ {
		grew := false
		if cand == s.used {
			if s.used >= s.n {
				break
			}
			s.used++
			grew = true
		}
		s.transTarget[color][in] = cand
		s.assignNode(edge.to, cand, rest)
		s.transTarget[color][in] = -1
		if grew {
			s.used--
		}
	}
}

// recordSolution materializes the current partial assignment as an
// fsm.DFSM over exactly the states actually colored so far
// (s.used), leaving every (state, input) the suite never reached as
// an absent transition.
func (s *searchState) recordSolution() {
	m := fsm.Create(s.kind, s.used, s.numInputs, s.numOutputs)
	for i := 0; i < s.used; i++ {
		m.AddState(fsm.DefaultOutput)
	}
	for i := 0; i < s.used; i++ {
		if s.isOutputState {
			out := s.stateOutput[i]
			if out == fsm.DefaultOutput {
				out = 0
			}
			m.SetOutput(fsm.State(i), out)
		}
		for j := 0; j < s.numInputs; j++ {
			target := s.transTarget[i][j]
			if target == -1 {
				continue
			}
			out := fsm.DefaultOutput
			if s.isOutputTransition {
				out = s.transOutput[i][j]
				if out == fsm.DefaultOutput {
					out = 0
				}
			}
			m.SetTransition(fsm.State(i), fsm.Input(j), fsm.State(target), out)
		}
	}
	s.results = append(s.results, m)
}

// Check enumerates every FSM with at most ref.NumStates()+ExtraStates
// states that agrees with ref on every sequence in suite, returns the
// ones not isomorphic to (minimized) ref, deduplicated up to
// isomorphism among themselves, and reports whether the search space
// was exhausted (false means MaxSolutions or MaxExplored cut it off
// and more cohabitants may exist beyond what was found).
func Check(ref *fsm.DFSM, suite [][]fsm.Input, opts Options) (cohabitants []*fsm.DFSM, exhaustive bool, err error) {
	if !ref.IsCompact() {
		return nil, false, fsm.ErrNotCompact
	}
	if opts.MaxSolutions <= 0 {
		opts.MaxSolutions = defaultMaxSolutions
	}
	if opts.MaxExplored <= 0 {
		opts.MaxExplored = defaultMaxExplored
	}
	if opts.ExtraStates < 0 {
		opts.ExtraStates = 0
	}

	refMin := cloneDFSM(ref)
	refMin.Minimize()
	if refMin.NumStates() != ref.NumStates() {
		return nil, false, fsm.ErrNotReduced
	}

	root := buildTrie(ref, suite)
	n := ref.NumStates() + opts.ExtraStates
	s := newSearchState(ref, n, opts.MaxSolutions, opts.MaxExplored)
	s.used = 1 // the initial state (color 0) is always in use
	s.assignNode(root, 0, s.recordSolution)

	for _, cand := range s.results {
		cand.Minimize()
		if fsm.AreIsomorphic(cand, refMin) {
			continue
		}
		duplicate := false
		for _, kept := range cohabitants {
			if fsm.AreIsomorphic(cand, kept) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			cohabitants = append(cohabitants, cand)
		}
	}
	return cohabitants, s.explored < s.maxExplored && len(s.results) < s.maxSolutions, nil
}

// cloneDFSM rebuilds an independent copy of m via its public
// accessors, since Minimize mutates its receiver in place and Check
// must never mutate the caller's reference machine.
func cloneDFSM(m *fsm.DFSM) *fsm.DFSM {
	out := fsm.Create(m.Kind(), m.NumStates(), m.NumInputs(), m.NumOutputs())
	for s := 0; s < m.NumStates(); s++ {
		out.AddState(fsm.DefaultOutput)
		if m.IsOutputState() {
			out.SetOutput(fsm.State(s), m.GetOutput(fsm.State(s), fsm.StoutInput))
		}
	}
	for s := 0; s < m.NumStates(); s++ {
		for i := 0; i < m.NumInputs(); i++ {
			if !m.HasTransition(fsm.State(s), fsm.Input(i)) {
				continue
			}
			t := m.GetNextState(fsm.State(s), fsm.Input(i))
			to := fsm.DefaultOutput
			if m.IsOutputTransition() {
				to = m.GetOutput(fsm.State(s), fsm.Input(i))
			}
			out.SetTransition(fsm.State(s), fsm.Input(i), t, to)
		}
	}
	out.SetInitialState(m.InitialState())
	return out
}
