package blackbox

import "errors"

// ErrNotResettable is returned (or panicked with, for the BlackBox
// interface's Reset method) when Reset is called on a non-resettable
// box.
var ErrNotResettable = errors.New("blackbox: box is not resettable")
