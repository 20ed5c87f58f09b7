package testsuite

// Options controls test-suite generation depth and splitting-tree
// construction for methods that derive an artifact from it.
type Options struct {
	// ExtraStates bounds the traversal-set depth (k in the method
	// template): the suite is guaranteed to expose any non-conforming
	// implementation with at most this many extra states.
	ExtraStates int

	// AllowInvalidInputs permits a partial splitting tree (and hence
	// partial HSI/ADS/characterizing set) when the machine is
	// partially specified. See package splitting's Options of the
	// same name.
	AllowInvalidInputs bool
}
