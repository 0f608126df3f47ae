// Package epoch samples both event streams at fixed-width epoch midpoints
// after padding them to full timeline coverage, then builds a confusion
// matrix from every sampled pair. A separately exposed joint-compressed view
// collapses runs of identical paired states, but compression is never an
// input to the matrix itself.
//
//	go get github.com/nedc-bench/scoring-core/epoch
package epoch
