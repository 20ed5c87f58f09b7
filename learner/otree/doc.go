// Package otree is the shared observation-tree substrate the H-,
// SPY- and S-style learners in package htest build on: a trie over
// explored access sequences (one node per distinct input path, each
// remembering the output it produced) plus a lightweight convergent-
// node grouping used to decide which states a newly-extended node
// might still represent.
//
// Tree nodes are held in an index-based arena (Node.Parent is an
// index, not a pointer) so undoing a wrong merge is just discarding
// index assignments rather than unwinding owning references.
package otree
