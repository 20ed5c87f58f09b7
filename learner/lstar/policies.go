package lstar

import "github.com/katalvlaran/fsmlearn/fsm"

// AllPrefixes adds every prefix of ce to S.
func AllPrefixes(ce []fsm.Input, t *table, S, E *[][]fsm.Input) {
	for i := 1; i <= len(ce); i++ {
		prefix := append([]fsm.Input{}, ce[:i]...)
		if !t.has(prefix) {
			*S = append(*S, prefix)
		}
	}
}

// BinarySearch binary-searches along ce for the first prefix that has
// no table row, and adds to E the suffix of ce that follows the longest
// prefix before it (at least ce's last symbol). It issues no queries:
// the breakpoint is found from the table's existing rows alone.
func BinarySearch(ce []fsm.Input, t *table, S, E *[][]fsm.Input) {
	lo, hi := 0, len(ce)
	for lo < hi {
		mid := (lo + hi) / 2
		prefix := ce[:mid]
		if longestKnownPrefixLen(t, prefix) == len(prefix) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	idx := lo
	if idx == 0 {
		idx = 1
	}
	suffix := append([]fsm.Input{}, ce[idx-1:]...)
	addSuffixIfNew(E, suffix)
}

// SuffixAfterLastState finds the longest prefix of ce already in S
// (i.e. whose table row exists) and adds the remaining suffix to E.
func SuffixAfterLastState(ce []fsm.Input, t *table, S, E *[][]fsm.Input) {
	n := longestKnownPrefixLen(t, ce)
	suffix := append([]fsm.Input{}, ce[n:]...)
	addSuffixIfNew(E, suffix)
}

// AllSuffixesAfterLastState does the same localization as
// SuffixAfterLastState but adds every suffix of the remainder to E,
// not just the whole remainder.
func AllSuffixesAfterLastState(ce []fsm.Input, t *table, S, E *[][]fsm.Input) {
	n := longestKnownPrefixLen(t, ce)
	remainder := ce[n:]
	for i := 0; i < len(remainder); i++ {
		addSuffixIfNew(E, append([]fsm.Input{}, remainder[i:]...))
	}
}

// Suffix1By1 adds progressively longer suffixes of ce to E, starting
// from the very last symbol and ending with ce itself, all in a single
// call (matching the other policies' contract of producing an unclosed
// table in one step).
func Suffix1By1(ce []fsm.Input, t *table, S, E *[][]fsm.Input) {
	for i := len(ce) - 1; i >= 0; i-- {
		addSuffixIfNew(E, append([]fsm.Input{}, ce[i:]...))
	}
}

func longestKnownPrefixLen(t *table, seq []fsm.Input) int {
	n := 0
	for i := 1; i <= len(seq); i++ {
		if !t.has(seq[:i]) {
			break
		}
		n = i
	}
	return n
}

func addSuffixIfNew(E *[][]fsm.Input, suffix []fsm.Input) {
	for _, e := range *E {
		if equalInputSeq(e, suffix) {
			return
		}
	}
	*E = append(*E, suffix)
}

func equalInputSeq(a, b []fsm.Input) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
