package testsuite_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/testsuite"
)

// Example builds a small Mealy machine and generates a W-method test
// suite for it.
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

	suite, err := testsuite.W(m, testsuite.Options{ExtraStates: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(suite) > 0)
	// Output: true
}
