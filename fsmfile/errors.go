package fsmfile

import "errors"

// ErrMalformed is returned when a `.fsm` file's header or body does
// not parse, or is internally inconsistent with the declared kind
// (e.g. a state-output row present for a Mealy header, or a
// transition row of the wrong width). Callers should treat a nil
// model returned alongside this error as "skip this file".
var ErrMalformed = errors.New("fsmfile: malformed fsm file")
