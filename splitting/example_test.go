package splitting_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/splitting"
)

// Example builds a three-state Mealy machine and prints the
// distinguishing input chosen at the splitting tree's root.
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

	tree, err := splitting.Build(m, splitting.Options{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.Root().DistinguishingInput)
	// Output: 1
}
