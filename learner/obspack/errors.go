package obspack

import "errors"

// ErrNotResettable is returned when the black box behind a Teacher
// cannot be reset.
var ErrNotResettable = errors.New("obspack: black box must be resettable")
