package main

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/dtree"
	"github.com/katalvlaran/fsmlearn/learner/goodsplit"
	"github.com/katalvlaran/fsmlearn/learner/htest"
	"github.com/katalvlaran/fsmlearn/learner/lstar"
	"github.com/katalvlaran/fsmlearn/learner/obspack"
	"github.com/katalvlaran/fsmlearn/learner/quotient"
	"github.com/katalvlaran/fsmlearn/learner/ttt"
)

// algorithmEntry binds one CSV-facing algorithm identity to the
// learner call it runs. AlgType groups algorithms the way the CSV's
// AlgorithmType column does (so a batch run's spreadsheet can pivot
// on family without parsing Algorithm strings).
type algorithmEntry struct {
	algID   string
	name    string
	algType string
	run     func(teacher blackbox.Teacher, maxExtraStates int) (*fsm.DFSM, error)
}

// algorithms lists every learner reachable from the CLI; "algorithm-mask"
// selects entries from it by comma-separated algID, and "all" runs them
// in this order.
var algorithms = []algorithmEntry{
	{
		algID: "lstar", name: "L*", algType: "ObservationTable",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return lstar.Learn(t, lstar.AllPrefixes, true)
		},
	},
	{
		algID: "dtree", name: "DiscriminationTree", algType: "DiscriminationTree",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return dtree.Learn(t)
		},
	},
	{
		algID: "obspack", name: "ObservationPack", algType: "DiscriminationTree",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return obspack.Learn(t, obspack.OneLocally)
		},
	},
	{
		algID: "ttt", name: "TTT", algType: "DiscriminationTree",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return ttt.Learn(t)
		},
	},
	{
		algID: "quotient", name: "Quotient", algType: "ObservationTree",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return quotient.Learn(t)
		},
	},
	{
		algID: "goodsplit", name: "GoodSplit", algType: "ObservationTree",
		run: func(t blackbox.Teacher, _ int) (*fsm.DFSM, error) {
			return goodsplit.Learn(t, goodsplit.Options{})
		},
	},
	{
		algID: "h", name: "H", algType: "ObservationTree",
		run: func(t blackbox.Teacher, maxExtraStates int) (*fsm.DFSM, error) {
			return htest.Learn(t, htest.HMethod, maxExtraStates)
		},
	},
	{
		algID: "spy", name: "SPY", algType: "ObservationTree",
		run: func(t blackbox.Teacher, maxExtraStates int) (*fsm.DFSM, error) {
			return htest.Learn(t, htest.SPYMethod, maxExtraStates)
		},
	},
}

// lookupAlgorithm finds the algorithm entry named id, matched
// case-sensitively against algID.
func lookupAlgorithm(id string) (algorithmEntry, error) {
	for _, a := range algorithms {
		if a.algID == id {
			return a, nil
		}
	}
	return algorithmEntry{}, fmt.Errorf("%w: %s", errUnknownAlgorithm, id)
}

// selectAlgorithms parses a comma-separated algorithm-mask string
// ("lstar,ttt" or "all") into the matching registry entries.
func selectAlgorithms(mask string) ([]algorithmEntry, error) {
	if mask == "" || mask == "all" {
		return algorithms, nil
	}
	var out []algorithmEntry
	for _, id := range splitCSVList(mask) {
		a, err := lookupAlgorithm(id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
