// Package quotient implements the quotient-automaton learner: a single
// shared observation tree is grown along a set of candidate
// distinguishing sequences (a prefixset.PrefixSet), states are formed by
// merging tree nodes whose subtrees are not (yet) distinguished from one
// another, and the resulting quotient is checked for self-consistency
// before it is ever shown to an equivalence oracle. An inconsistency —
// some node converged onto a state whose own transitions disagree with
// that node's subtree — yields a new distinguishing sequence which is
// folded back into the prefix set and the quotient is rebuilt; only once
// a build comes out fully consistent is it handed to the real
// equivalence query.
//
// This mirrors FSMlib's QuotientAlgorithm.cpp closely: the same
// observation-tree node shape (incoming output, state output, access
// sequence, per-input successor map, one distinguishing input), the same
// areDistinguished / getDistinguishingSeq subtree comparison, and the
// same build-check-retry outer loop. One deliberate simplification: the
// original branches on teacher->isProvidedOnlyMQ() to choose between a
// batched suffix query and a one-symbol-at-a-time query style for an
// RL-flavored teacher; blackbox.Teacher here exposes only the batched
// QuerySeq/ResetAndQuerySeq style uniformly (as every other learner in
// this module already assumes), so that branch is dropped entirely.
package quotient
