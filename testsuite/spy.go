package testsuite

import (
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/prefixset"
)

// SPY builds a test suite by merging the ADS suite (adaptive,
// generally shorter identifiers) with the HSI suite (static,
// generally more robust against adaptive-distinguishing-set gaps on
// partially specified machines), prefix-filtering the union. This
// trades suite size for covering both artifacts' blind spots, the
// same trade the method's harmonized-adaptive combination makes.
func SPY(m *fsm.DFSM, opts Options) ([][]fsm.Input, error) {
	ads, err := ADS(m, opts)
	if err != nil {
		return nil, err
	}
	hsi, err := HSI(m, opts)
	if err != nil {
		return nil, err
	}
	ps := prefixset.New()
	for _, seq := range ads {
		ps.Insert(seq)
	}
	for _, seq := range hsi {
		ps.Insert(seq)
	}
	return ps.GetMaximalSequences(), nil
}
