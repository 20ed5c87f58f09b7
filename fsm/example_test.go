package fsm_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/fsm"
)

// Example builds a small two-state Mealy machine and queries it along
// a path.
func Example() {
	m := fsm.NewMealy(2, 2, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.SetTransition(0, 0, 0, 0)
	m.SetTransition(0, 1, 1, 0)
	m.SetTransition(1, 0, 0, 0)
	m.SetTransition(1, 1, 1, 1)

	outs := m.GetOutputAlongPath(0, []fsm.Input{1, 1})
	fmt.Println(outs)
	// Output: [0 1]
}
