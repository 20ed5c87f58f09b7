package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
)

// SPYH merges the SPY and H suites, prefix-filtering the union. Like
// SPY it is a best-effort combination rather than a minimal
// construction; the original library carries the same method under
// an "attempt, is it correct?" note rather than a proven-optimal one.
func SPYH(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	spy, err := SPY(m, opts)
	if err != nil {
		return nil, err
	}
	h, err := H(m, opts)
	if err != nil {
		return nil, err
	}
	ps := prefixset.New()
	for _, seq := range spy {
		ps.Insert(seq)
	}
	for _, seq := range h {
		ps.Insert(seq)
	}
	return ps.GetMaximalSequences(), nil
}
