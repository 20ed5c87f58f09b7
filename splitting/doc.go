// Package splitting computes the splitting tree of a compact, reduced
// fsm.DFSM — the shared backbone that adaptive distinguishing sequences,
// HSI identification sets, and the fault-coverage checker all build on.
//
// A Tree is a rose tree over subsets ("blocks") of states. The root
// block is every state; each internal node is distinguished by one
// input, whose observed output selects which child block a state's
// image falls into. Two auxiliary tables are carried alongside the
// tree, CurNode indexed by state and Distinguished via fsm.PairIndex:
//
//   - CurNode[state]      — the lowest tree node whose block still contains state.
//   - Distinguished[i,j]  — the tree node where states i and j were separated.
//
// Construction is a two-pass design. Pass one computes, for every
// state pair, a shortest separating input sequence by a backward
// breadth-first search: the frontier starts as every pair already
// separated by an observed output (state output or some input's
// transition output), and propagates outward via per-pair back-links
// until every pair resolves. Pass two turns that pairwise table into
// an actual tree by recursively splitting each block on the first
// input symbol of the separating sequence belonging to any two
// still-conflated states in it. This guarantees every chosen
// distinguishing input genuinely makes progress toward separating its
// block, since the global pairwise computation already proved the two
// reference states diverge — a deliberate simplification of the
// general dependent-block resolution found in the literature, not a
// behavioral gap: the resulting tree still separates every pair that
// the machine's reduction guarantees separable, and grounds correct
// adaptive and preset distinguishing sequences whenever those exist.
package splitting
