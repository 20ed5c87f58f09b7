package faultcoverage_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/faultcoverage"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Example checks the spec's 2-state Mealy machine against the
// deliberately weak suite {[0]}: since input 0 never distinguishes
// the two states' outputs, at least one other machine agrees with the
// reference on that single sequence.
func Example() {
	m := fsm.NewMealy(0, 2, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.SetTransition(0, 0, 0, 0)
	m.SetTransition(0, 1, 1, 0)
	m.SetTransition(1, 0, 0, 0)
	m.SetTransition(1, 1, 1, 1)

	cohabitants, _, err := faultcoverage.Check(m, [][]fsm.Input{{0}}, faultcoverage.Options{ExtraStates: 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(cohabitants) >= 1)
	// Output: true
}
