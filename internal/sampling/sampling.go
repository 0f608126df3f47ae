// Package sampling implements the gap-augmentation and midpoint-sampling
// preprocessing shared verbatim by the epoch and IRA scorers: both need to
// turn a sparse event list into a label sequence sampled at fixed-width
// epoch midpoints, and both need that event list to cover [0, duration]
// with no gaps first. Factoring this out once keeps the two scorers from
// drifting out of sync on a preprocessing step the specification requires
// to be bit-identical between them.
package sampling

import (
	"github.com/nedc-bench/scoring-core/annotation"
)

// Augment returns a new event list covering [0, duration] with no gaps and
// no overlaps: every gap between consecutive input events (and before the
// first / after the last) is filled with a synthetic nullClass event. The
// input is not mutated.
func Augment(events []annotation.EventAnnotation, duration float64, nullClass string) []annotation.EventAnnotation {
	sorted := make([]annotation.EventAnnotation, len(events))
	copy(sorted, events)
	annotation.SortEvents(sorted)

	out := make([]annotation.EventAnnotation, 0, len(sorted)+2)
	cursor := 0.0

	for _, e := range sorted {
		if cursor < e.StartTime {
			out = append(out, fillerEvent(cursor, e.StartTime, nullClass))
		}
		out = append(out, e)
		if e.StopTime > cursor {
			cursor = e.StopTime
		}
	}
	if cursor < duration {
		out = append(out, fillerEvent(cursor, duration, nullClass))
	}

	return out
}

func fillerEvent(start, stop float64, label string) annotation.EventAnnotation {
	return annotation.EventAnnotation{
		Channel:    "TERM",
		StartTime:  start,
		StopTime:   stop,
		Label:      annotation.NormalizeLabel(label),
		Confidence: 1.0,
	}
}

// SampleTimes returns the epoch-midpoint sample times t_k = epochDuration/2 +
// k*epochDuration for k = 0, 1, 2, ... while t_k <= duration (inclusive upper
// bound). An integer counter, not repeated addition, drives the induction so
// the sequence cannot drift from floating-point error accumulation.
func SampleTimes(duration, epochDuration float64) []float64 {
	if epochDuration <= 0 {
		return nil
	}

	half := epochDuration / 2
	var times []float64
	for k := 0; ; k++ {
		t := half + float64(k)*epochDuration
		if t > duration {
			break
		}
		times = append(times, t)
	}

	return times
}

// LabelsAt returns, for each sample time, the label of the single augmented
// event covering it (start <= t <= stop, both bounds inclusive). augmented
// must already cover [0, duration] with no gaps (i.e. be the output of
// Augment) and be sorted by start time.
func LabelsAt(augmented []annotation.EventAnnotation, times []float64) []string {
	labels := make([]string, len(times))
	if len(augmented) == 0 {
		return labels
	}
	cursor := 0

	for i, t := range times {
		// Advance the cursor while the current event ends before t; the
		// augmented sequence has no gaps, so the first event whose stop
		// time is >= t is guaranteed to cover t. times is non-decreasing,
		// so the cursor never needs to move backward.
		for cursor < len(augmented)-1 && augmented[cursor].StopTime < t {
			cursor++
		}
		labels[i] = augmented[cursor].Label
	}

	return labels
}
