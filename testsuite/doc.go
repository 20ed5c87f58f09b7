// Package testsuite builds input-sequence test suites and checking
// sequences from a DFSM, consuming the state-identification artifacts
// computed by package sequence (PDS, ADS, SVSs, characterizing set,
// HSI) and the splitting tree underlying them.
//
// Every resettable-machine method shares one template: compute a
// transition cover Q and a traversal set V of depth extraStates,
// then for every q in Q and v in V emit q·v·w, where w is whichever
// identifier the method assigns to the state reached by q·v. The
// methods differ only in which identifier they use and how deep V
// goes; the generator code itself (buildSuite) is shared. The result
// is minimized by prefix filtering: any sequence that is a strict
// prefix of another generated sequence is dropped, since exercising
// the longer sequence exercises the shorter one too.
//
// A checking sequence (C_method) is the non-resettable analogue: one
// continuous input sequence, built by stitching test fragments
// together with shortest paths through the machine's transition graph
// instead of resets. This requires the machine to be strongly
// connected; Stitch returns ErrNotStronglyConnected otherwise.
package testsuite
