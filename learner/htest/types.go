package htest

// Variant selects which method-specific test suite confirms a closed
// conjecture's extra-states loop.
type Variant int

const (
	// HMethod confirms with testsuite.H.
	HMethod Variant = iota
	// SPYMethod confirms with testsuite.SPY. It also stands in for
	// the S-learner variant (see package doc).
	SPYMethod
)
