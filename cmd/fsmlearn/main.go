// Command fsmlearn runs active automata learning algorithms and a
// fault-coverage checker against `.fsm` files, writing one CSV row per
// (file, extraStates, algorithm) combination.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "fsmlearn").Error())
		os.Exit(exitCode(errors.Cause(err)))
	}
}
