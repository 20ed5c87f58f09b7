package quotient

import "errors"

// ErrNotResettable is returned when Learn is given a black box that
// cannot be reset, since quotient building requires replaying access
// sequences from the initial state.
var ErrNotResettable = errors.New("quotient: black box must be resettable")
