// Package dtree implements a discrimination-tree learner: states are
// identified by sifting access sequences down a binary-branching tree
// whose internal nodes carry a distinguishing input sequence and whose
// leaves carry a known state. Learn drives a blackbox.Teacher through
// the usual conjecture/equivalence-query loop, growing the tree and
// patching the conjecture's transitions whenever a counterexample
// reveals a new state or a wrongly-targeted one.
package dtree
