// Package fsm defines the central DFSM type — a typed container for the
// four finite-state-machine flavors this module learns and tests — and
// the thread-unsafe, single-owner primitives for building, querying,
// minimizing, and comparing them.
//
// A DFSM carries NO internal locking. The concurrency model for this
// whole module is single-threaded-in-process: exactly one owner mutates
// a DFSM at a time, and learners suspend only at query boundaries.
// Callers that need to share a DFSM across goroutines must serialize
// access themselves; nothing here will do it for them.
//
// Four kinds share one representation:
//
//	Kind   Output on transition   Output on state
//	Mealy  yes                    —
//	Moore  —                      yes
//	DFA    —                      yes (binary accept/reject)
//	DFSM   yes                    yes
//
// A DFSM is compact iff its state indices are 0..NumStates contiguously
// (no holes left by a prior deletion — this package never deletes
// states, so compactness only needs checking after loading a foreign
// model). A DFSM is reduced iff minimize is a no-op on it; many
// algorithms in sibling packages (splitting, sequence, testsuite)
// require a compact, reduced DFSM and report ErrNotCompact / ErrNotReduced
// rather than silently operating on an unsuitable model.
//
// Sentinel symbols (STOUT_INPUT, DEFAULT_OUTPUT, WRONG_OUTPUT, WRONG_STATE,
// NULL_STATE) are negative by construction so they can never collide with
// a dense 0..N-1 symbol range; see types.go.
package fsm
