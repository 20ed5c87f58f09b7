package blackbox

import "github.com/katalvlaran/fsmlearn/fsm"

// ModelBacked is a BlackBox wrapping a reference fsm.DFSM directly:
// queries walk the transition table, counters increment per input
// applied. Always resettable.
type ModelBacked struct {
	m            *fsm.DFSM
	cur          fsm.State
	resets       int
	symbolsCount int
}

// NewModelBacked wraps m, starting at its initial state.
func NewModelBacked(m *fsm.DFSM) *ModelBacked {
	return &ModelBacked{m: m, cur: m.InitialState()}
}

func (b *ModelBacked) IsResettable() bool { return true }
func (b *ModelBacked) ModelType() fsm.Kind { return b.m.Kind() }
func (b *ModelBacked) NumInputs() int      { return b.m.NumInputs() }
func (b *ModelBacked) NumOutputs() int     { return b.m.NumOutputs() }

func (b *ModelBacked) QueriedSymbolsCount() int { return b.symbolsCount }
func (b *ModelBacked) AppliedResetCount() int   { return b.resets }

func (b *ModelBacked) Reset() {
	b.cur = b.m.InitialState()
	b.resets++
}

func (b *ModelBacked) Query(input fsm.Input) fsm.Output {
	out := b.m.GetOutput(b.cur, input)
	if input != fsm.StoutInput {
		b.cur = b.m.GetNextState(b.cur, input)
		b.symbolsCount++
	}
	return out
}

func (b *ModelBacked) QuerySeq(seq []fsm.Input) []fsm.Output {
	out := make([]fsm.Output, len(seq))
	for i, in := range seq {
		out[i] = b.Query(in)
	}
	return out
}

func (b *ModelBacked) ResetAndQuery(input fsm.Input) fsm.Output {
	b.Reset()
	return b.Query(input)
}

func (b *ModelBacked) ResetAndQuerySeq(seq []fsm.Input) []fsm.Output {
	b.Reset()
	return b.QuerySeq(seq)
}
