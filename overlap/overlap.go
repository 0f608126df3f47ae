// Package overlap implements the binary any-overlap event scorer: a
// reference event is a hit if any hypothesis event of the same label
// overlaps it (a miss otherwise); a hypothesis event is a false alarm if no
// reference event of the same label overlaps it. Multiple overlaps never
// contribute more than one hit or one false alarm.
package overlap

import "github.com/nedc-bench/scoring-core/annotation"

// Result carries per-label hit/miss/false-alarm counts plus the seizure-class
// convenience views used by the caller-facing report.
type Result struct {
	Hits         map[string]int64 `json:"hits"`
	Misses       map[string]int64 `json:"misses"`
	FalseAlarms  map[string]int64 `json:"false_alarms"`
	TP           int64            `json:"tp"`
	FP           int64            `json:"fp"`
	FN           int64            `json:"fn"`
}

// TargetLabel is the positive class whose counts are exposed as TP/FP/FN.
const TargetLabel = annotation.LabelSeizure

// Score runs the overlap algorithm over ref and hyp. Inputs need not be
// pre-sorted or pre-filtered; Score handles both.
func Score(ref, hyp []annotation.EventAnnotation) Result {
	hits := map[string]int64{}
	misses := map[string]int64{}
	falseAlarms := map[string]int64{}

	for _, r := range ref {
		hit := false
		for _, h := range hyp {
			if h.Label == r.Label && annotation.Overlaps(r, h) {
				hit = true
				break
			}
		}
		if hit {
			hits[r.Label]++
		} else {
			misses[r.Label]++
		}
	}

	for _, h := range hyp {
		matched := false
		for _, r := range ref {
			if r.Label == h.Label && annotation.Overlaps(h, r) {
				matched = true
				break
			}
		}
		if !matched {
			falseAlarms[h.Label]++
		}
	}

	return Result{
		Hits:        hits,
		Misses:      misses,
		FalseAlarms: falseAlarms,
		TP:          hits[TargetLabel],
		FP:          falseAlarms[TargetLabel],
		FN:          misses[TargetLabel],
	}
}
