package main

import "errors"

var (
	// errUnknownAlgorithm is returned when an --algorithm or
	// algorithm-mask entry does not name a registered learner.
	errUnknownAlgorithm = errors.New("fsmlearn: unknown algorithm")
	// errNoFsmFiles is returned when a directory target contains no
	// `.fsm` files within [startFilename, endFilename].
	errNoFsmFiles = errors.New("fsmlearn: no .fsm files matched")
	// errAlgorithmNotApplicable is returned when a requested
	// synthesis (e.g. PDS) does not exist for the loaded machine.
	errAlgorithmNotApplicable = errors.New("fsmlearn: algorithm not applicable to this machine")
)

// exitCode classifies an error into the CLI's contract: 0 normal, 1
// file/IO error, 2 algorithm-not-applicable.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUnknownAlgorithm):
		return 2
	case errors.Is(err, errAlgorithmNotApplicable):
		return 2
	default:
		return 1
	}
}
