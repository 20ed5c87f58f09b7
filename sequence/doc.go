// Package sequence synthesizes the input sequences that distinguish,
// verify, home, synchronize and cover the states of a compact, reduced
// fsm.DFSM. It sits directly on top of package splitting for anything
// that needs pairwise separation (adaptive distinguishing sequences are
// read off the splitting tree too), and reimplements the remaining
// partition-refinement searches (preset distinguishing sequences,
// state-verifying sequences, homing and synchronizing sequences) as
// breadth-first or best-first searches over sets of still-conflated
// states, closing each search the moment every block collapses to a
// singleton.
//
// Every search here is bounded by MaxClosedNodes to keep pathological
// machines from exhausting memory; callers that hit the bound get
// ErrSearchExhausted rather than a sequence that silently fails to
// distinguish anything.
package sequence
