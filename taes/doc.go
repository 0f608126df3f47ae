// Package taes implements Time-Aligned Event Scoring: fractional,
// multi-overlap true-positive/false-positive/false-negative accounting over
// a single target label.
//
// 🚀 Why fractional?
//
//	A hypothesis event that only partially covers a reference event still
//	deserves partial credit; one that drags in neighbouring reference events
//	should be penalized for every one of them, not just the first. calcHF
//	implements that accounting; Score implements the active-flag sweep that
//	decides, for each event, which of its neighbours it gets scored against.
//
// The active-flag arrays are indexed into the label-filtered, sorted event
// slices — never into the caller's original, unsorted slices — so that
// Score's book-keeping stays correct regardless of input order.
package taes
