// Package prefixset implements a trie over input sequences ([]fsm.Input).
//
// Each node stores one input symbol plus two edges — child (next symbol
// in some inserted sequence) and sibling (alternative symbol at the same
// depth). A root-to-leaf path is a "maximal sequence": no maximal
// sequence is a prefix of another. The structure supports insertion,
// longest-matched-prefix lookup (Contains), and extraction/removal of
// maximal sequences (GetMaximalSequences, PopMaximalSequence,
// PopMaximalSequenceWithGivenPrefix) — operations the splitting-tree and
// test-suite generators use to deduplicate and minimize sequence sets by
// prefix containment.
//
// There are no parent back-references here (unlike splitting.Tree or the
// observation tree), so this package uses plain owning pointers rather
// than an index arena — there is no cycle to break.
package prefixset
