// Package metrics provides pure derived-metric helpers (sensitivity,
// precision, F1, false-alarms-per-24h) and a fixed-order aggregation type
// for combining Counts across many scored files.
//
//	go get github.com/nedc-bench/scoring-core/metrics
package metrics
