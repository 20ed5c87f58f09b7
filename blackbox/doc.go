// Package blackbox provides the query surface learners and test-suite
// runners drive: a BlackBox answers membership queries (single inputs
// or whole sequences, with or without a reset), and a Teacher adds
// equivalence queries on top of one.
//
// Two BlackBox implementations are provided: ModelBacked, which wraps
// a reference fsm.DFSM directly, and TreeCached, which wraps any other
// BlackBox and memoizes every observed prefix in a response tree so
// repeated queries along known prefixes avoid a reset.
//
// Two Teacher implementations are provided: ModelTeacher, whose
// equivalence queries run an exact BFS-paired-states comparison
// against a reference conjecture, and SuiteTeacher, whose equivalence
// queries run an increasing-extraStates test-suite search (package
// testsuite) against an opaque BlackBox. ReplayTeacher answers every
// equivalence query from a fixed, externally supplied queue of
// counterexamples instead of computing one, for deterministic
// regression tests of learners.
package blackbox
