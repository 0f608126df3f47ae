// Package dpalign aligns two label sequences via edit distance, turning
// "reference says seiz, hypothesis says bckg" style mismatches into counted
// insertions, deletions, and substitutions.
//
//	go get github.com/nedc-bench/scoring-core/dpalign
package dpalign
