package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/sequence"
)

// Example builds a three-state Mealy machine and finds a preset
// distinguishing sequence for it.
func Example() {
	m := fsm.NewMealy(3, 2, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.SetTransition(0, 0, 0, 0)
	m.SetTransition(0, 1, 1, 0)
	m.SetTransition(1, 0, 1, 0)
	m.SetTransition(1, 1, 1, 1)
	m.SetTransition(2, 0, 2, 1)
	m.SetTransition(2, 1, 2, 1)

	pds, err := sequence.PresetDistinguishingSequence(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(pds) > 0)
	// Output: true
}
