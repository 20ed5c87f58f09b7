package fsm

// PairIndex packs the unordered pair {i,j}, i != j, into a single dense
// index idx(i,j) = max*(max-1)/2 + min. This packing is used by every
// sibling package that keeps one value per unordered state pair
// (separating sequences, splitting-tree "distinguished" table, fault
// coverage constraints) and must stay bit-identical across all of them.
func PairIndex(i, j State) int {
	hi, lo := i, j
	if lo > hi {
		hi, lo = lo, hi
	}
	return int(hi)*int(hi-1)/2 + int(lo)
}

// NumPairs returns the number of unordered pairs among n states, i.e.
// the size a PairIndex-indexed table for n states must allocate.
func NumPairs(n int) int {
	return n * (n - 1) / 2
}
