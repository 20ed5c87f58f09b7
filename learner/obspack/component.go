package obspack

import "github.com/katalvlaran/fsmlearn/fsm"

// component is one state's local observation table: an access
// sequence, a growing set of distinguishing columns E, the canonical
// row observed from access across E, and a set of cached rows for
// other sequences that sifted into this same state and matched the
// canonical row at the time they were checked.
type component struct {
	access []fsm.Input
	E      [][]fsm.Input
	row    [][]fsm.Output
	extra  map[string]*extraRow
}

// extraRow is a cached, possibly only partially-extended row for a
// sequence other than the component's own access sequence.
type extraRow struct {
	prefix []fsm.Input
	row    [][]fsm.Output
}

func newComponentFromPrefix(access []fsm.Input, numInputs int, outputState bool) *component {
	E := make([][]fsm.Input, 0, numInputs+1)
	for i := 0; i < numInputs; i++ {
		E = append(E, []fsm.Input{fsm.Input(i)})
	}
	if outputState {
		E = append(E, []fsm.Input{fsm.StoutInput})
	}
	return &component{
		access: append([]fsm.Input{}, access...),
		E:      E,
		extra:  map[string]*extraRow{},
	}
}
