package goodsplit_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/blackbox"
	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/learner/goodsplit"
)

// Example learns a small Mealy machine from a model-backed teacher
// using GoodSplit, which never issues an equivalence query.
func Example() {
	m := fsm.NewMealy(2, 2, 2)
	m.AddState(fsm.DefaultOutput)
	m.AddState(fsm.DefaultOutput)
	m.SetTransition(0, 0, 0, 0)
	m.SetTransition(0, 1, 1, 1)
	m.SetTransition(1, 0, 1, 0)
	m.SetTransition(1, 1, 0, 1)

	teacher := blackbox.NewModelTeacher(m)
	conjecture, err := goodsplit.Learn(teacher, goodsplit.Options{MaxDistinguishingLength: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(conjecture.NumStates() == m.NumStates())
	// Output: true
}
