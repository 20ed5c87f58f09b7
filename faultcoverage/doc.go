// Package faultcoverage implements the fault-coverage checker: given a
// reference machine and a test suite, it enumerates every FSM with at
// most ExtraStates more states than the reference that nevertheless
// reproduces the reference's output on every sequence in the suite —
// the "indistinguishable cohabitants" a caller uses to judge whether a
// test suite is strong enough to separate a reference from any
// faulty implementation bounded by that extra-states count.
//
// Only the behavior exercised by the suite is constrained. States and
// transitions the suite never reaches are left absent (fsm.NullState)
// in every enumerated candidate: completing them to concrete values
// cannot change whether the suite distinguishes the candidate from the
// reference, so each candidate here stands for the whole equivalence
// class of its total completions rather than enumerating all of them.
package faultcoverage
