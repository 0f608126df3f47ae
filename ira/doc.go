// Package ira computes Cohen's kappa inter-rater agreement between a
// reference and hypothesis label stream, both per-label and multi-class,
// over a confusion matrix built without joint compression.
//
//	go get github.com/nedc-bench/scoring-core/ira
package ira
