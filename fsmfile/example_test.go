package fsmfile_test

import (
	"fmt"

	"github.com/katalvlaran/fsmlearn/fsm"
	"github.com/katalvlaran/fsmlearn/fsmfile"
)

// Example formats and parses an input sequence containing a
// fsm.StoutInput observation marker.
func Example() {
	seq := []fsm.Input{0, fsm.StoutInput, 1}
	text := fsmfile.FormatSequence(seq)
	fmt.Println(text)

	parsed, err := fsmfile.ParseSequence(text)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(parsed) == len(seq) && parsed[1] == fsm.StoutInput)
	// Output:
	// 0,S,1
	// true
}
