// Package lstar implements Angluin's L* over an observation table:
// sets S (state access sequences) and E (distinguishing suffixes), a
// table T mapping (S ∪ S·I) × E to observed output sequences. Learn
// runs the standard closed/consistent loop against a blackbox.Teacher,
// issuing equivalence queries once closed and handing any
// counterexample to a pluggable CEPolicy (AllPrefixes, BinarySearch,
// SuffixAfterLastState, AllSuffixesAfterLastState, Suffix1By1) to
// enlarge the table.
package lstar
