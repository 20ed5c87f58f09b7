package htest

import "errors"

// ErrNotResettable is returned when the black box behind a Teacher
// cannot be reset, since extending the observation tree requires
// repositioning to the initial state for every probe.
var ErrNotResettable = errors.New("htest: black box must be resettable")
