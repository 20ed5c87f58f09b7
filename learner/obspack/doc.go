// Package obspack implements an observation-pack learner: like dtree,
// states are identified by sifting access sequences down a
// discrimination tree, but each state additionally owns a small local
// observation table (access sequence S, growing column set E, a
// canonical row plus cached rows for other sequences reaching the
// same state). A cached row is only re-validated against the
// canonical one when E grows, deferring the work of detecting a stale
// merge until it's actually needed rather than re-checking eagerly.
package obspack
