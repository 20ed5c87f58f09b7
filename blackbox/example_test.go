package blackbox_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
)

// Example wraps a small Mealy machine as a model-backed black box and
// queries it along a path.
func Example() {
	m := fsm.NewMealy(2, 2, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.SetTransition(0, 0, 0, 0)
	m.SetTransition(0, 1, 1, 1)
	m.SetTransition(1, 0, 1, 0)
	m.SetTransition(1, 1, 0, 1)

	box := blackbox.NewModelBacked(m)
	out := box.ResetAndQuerySeq([]fsm.Input{1, 0})
	fmt.Println(out)
	// Output: [1 0]
}
