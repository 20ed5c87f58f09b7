package goodsplit

import "errors"

// ErrNotResettable is returned when Learn is given a black box that
// cannot be reset, since every sampled sequence is replayed from a
// known access sequence.
var ErrNotResettable = errors.New("goodsplit: black box must be resettable")
