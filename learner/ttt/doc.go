// Package ttt implements a discrimination-tree learner in the style
// of dtree, but localizes a counterexample's divergence point with a
// binary search over the conjecture's predicted output instead of a
// linear scan — the O(log n) query-count idea the TTT algorithm is
// named for. The full TTT algorithm also periodically rebalances the
// tree to keep every discriminator permanent (never revisited); that
// rebalancing is involved tree surgery this package does not
// reproduce (see doc comment on Learn), trading some asymptotic query
// efficiency for a much smaller, easier to verify implementation.
package ttt
