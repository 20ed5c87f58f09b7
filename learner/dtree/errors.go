package dtree

import "errors"

// ErrNotResettable is returned when the black box behind a Teacher
// cannot be reset, since sifting requires repositioning to the
// initial state for every probe.
var ErrNotResettable = errors.New("dtree: black box must be resettable")
