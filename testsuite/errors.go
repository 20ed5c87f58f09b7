package testsuite

import "errors"

// ErrNoArtifact is returned when a method's required state-
// identification artifact does not exist for the given machine (e.g.
// PDS_method on a machine with no preset distinguishing sequence).
var ErrNoArtifact = errors.New("testsuite: required identification artifact does not exist for this machine")

// ErrNotStronglyConnected is returned by Stitch (and C_method) when no
// path exists between two states the checking sequence needs to
// traverse without a reset.
var ErrNotStronglyConnected = errors.New("testsuite: machine is not strongly connected, cannot build a checking sequence")
