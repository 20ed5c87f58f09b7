package lstar

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// table is the L* observation table: S (state access sequences) and
// S·I (one-step extensions) are the table's rows, E (suffixes) are its
// columns; rows maps a row's access sequence to the output sequence
// observed for each column in E, in column order. Columns can be
// multi-symbol suffixes, so each cell holds a whole output sequence,
// not a single output.
type table struct {
	rows map[string][][]fsm.Output
}

func newTable() *table {
	return &table{rows: map[string][][]fsm.Output{}}
}

func seqKey(seq []fsm.Input) string {
	parts := make([]string, len(seq))
	for i, in := range seq {
		parts[i] = strconv.Itoa(int(in))
	}
	return strings.Join(parts, ",")
}

func (t *table) has(seq []fsm.Input) bool {
	_, ok := t.rows[seqKey(seq)]
	return ok
}

func (t *table) row(seq []fsm.Input) [][]fsm.Output {
	return t.rows[seqKey(seq)]
}

func (t *table) setRow(seq []fsm.Input, row [][]fsm.Output) {
	t.rows[seqKey(seq)] = row
}

// distinguishingColumn returns the index of the first column on which
// a's and b's rows disagree, or -1 if every column common to both
// agrees.
func distinguishingColumn(t *table, a, b []fsm.Input) int {
	ra, rb := t.row(a), t.row(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	for i := 0; i < n; i++ {
		if !equalOutputSeq(ra[i], rb[i]) {
			return i
		}
	}
	return -1
}

func equalOutputSeq(a, b []fsm.Output) bool {
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
