// Package learner holds the types every learning algorithm in its
// subpackages (lstar, dtree, obspack, ttt, otree, htest, quotient,
// goodsplit) shares: the inconsistency taxonomy observation-tree
// learners raise, the cancellation signal a caller uses to stop a
// learner early with whatever conjecture it has so far, and a query
// counter bundle mirroring the one package blackbox tracks per
// teacher.
package learner
