// Package fsmlearn is an active automata learning and conformance
// testing library for deterministic finite-state machines (Mealy,
// Moore, DFA, and Mealy-with-state-output DFSM).
//
// It is organized by concern, one directory per package:
//
//	fsm/            the DFSM model: kinds, transitions, minimize, isomorphism
//	prefixset/      a trie over input sequences
//	splitting/      the splitting tree shared by ADS/HSI/PDS derivation
//	sequence/       separating sequences, PDS/ADS/SVS/HS/SS, covers, characterizing sets
//	testsuite/      PDS/ADS/SVS/W/Wp/HSI/H/SPY/SPYH test-suite and C checking-sequence generators
//	blackbox/       opaque black-box and teacher adapters (model-backed, suite-backed, replay)
//	learner/        the shared learner vocabulary plus one subpackage per algorithm
//	faultcoverage/  the fault-coverage checker
//	fsmfile/        `.fsm` file load/save, sequence string form, directory traversal
//	cmd/fsmlearn/   the CLI driver
//
// See each package's own doc.go for its contract.
package fsmlearn
