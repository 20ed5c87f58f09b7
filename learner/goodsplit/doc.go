// Package goodsplit implements the GoodSplit learner: an
// equivalence-query-free identification loop that samples
// distinguishing sequences of increasing length. Each unresolved node
// has the pool's sequences applied in pool order until its
// candidate-state domain holds at most one state or the pool runs out;
// sequences are not ranked by how much they narrow a domain. The
// sampled length grows by one after every pass over the unresolved
// nodes, regardless of how much of the pool was applied. It is meant
// for settings where equivalence queries are restricted or unavailable
// entirely, trading the guaranteed termination of an EQ-driven learner
// for a length bound (MaxDistinguishingLength) the caller controls.
//
// The observation tree and its ConvergentNode domain-narrowing
// substrate come from package otree, used here for real candidate-set
// tracking (package htest tracks state identity by canonical output
// row instead; this is the one learner in this module that exercises
// otree.ConvergentNode's Domain/Restrict/Singleton machinery as
// described for it).
package goodsplit
