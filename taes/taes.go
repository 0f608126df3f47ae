package taes

import "github.com/nedc-bench/scoring-core/annotation"

// Options controls TAES scoring.
type Options struct {
	// TargetLabel is the positive class filter. Defaults to "seiz".
	TargetLabel string
}

// DefaultOptions returns the canonical TAES configuration.
func DefaultOptions() Options {
	return Options{TargetLabel: annotation.LabelSeizure}
}

// Result carries the fractional true-positive, false-positive, and
// false-negative counts produced by Score.
type Result struct {
	TP float64 `json:"tp"`
	FP float64 `json:"fp"`
	FN float64 `json:"fn"`
}

// Score runs Time-Aligned Event Scoring over ref and hyp, restricted to
// opts.TargetLabel. Inputs need not be pre-filtered or pre-sorted.
func Score(ref, hyp []annotation.EventAnnotation, opts Options) Result {
	r := annotation.FilterLabel(ref, opts.TargetLabel)
	h := annotation.FilterLabel(hyp, opts.TargetLabel)

	refActive := make([]bool, len(r))
	hypActive := make([]bool, len(h))
	for i := range refActive {
		refActive[i] = true
	}
	for j := range hypActive {
		hypActive[j] = true
	}

	var totalHit, totalFa, totalMiss float64

	for i := 0; i < len(r); i++ {
		if !refActive[i] {
			continue
		}

		for j := 0; j < len(h); j++ {
			if !hypActive[j] || !annotation.Overlaps(r[i], h[j]) {
				continue
			}

			hit, fa := calcHF(r[i], h[j])
			miss := 1.0 - hit

			if h[j].StopTime >= r[i].StopTime {
				// Case A: hyp extends at or past ref.
				refActive[i] = false
				hypActive[j] = false

				for k := i + 1; k < len(r); k++ {
					if refActive[k] && annotation.Overlaps(r[k], h[j]) {
						miss += 1.0
						refActive[k] = false
					}
				}
			} else {
				// Case B: ref extends past hyp.
				refActive[i] = false
				hypActive[j] = false

				for m := j + 1; m < len(h); m++ {
					if !hypActive[m] || !annotation.Overlaps(r[i], h[m]) {
						continue
					}
					h2, fa2 := calcHF(r[i], h[m])
					hit += h2
					miss -= h2
					fa += fa2
					hypActive[m] = false
				}
			}

			totalHit += hit
			totalFa += fa
			totalMiss += miss
			break
		}
	}

	for i := range refActive {
		if refActive[i] {
			totalMiss += 1.0
		}
	}
	for j := range hypActive {
		if hypActive[j] {
			totalFa += 1.0
		}
	}

	return Result{TP: totalHit, FP: totalFa, FN: totalMiss}
}

// calcHF implements the fractional hit/false-alarm accounting table from the
// specification. Case order matters: pre-prediction is tried before
// post-prediction so an exact-span match (which satisfies both) is scored as
// pre-prediction (hit=1, fa=0).
func calcHF(ref, hyp annotation.EventAnnotation) (hit, fa float64) {
	d := ref.StopTime - ref.StartTime
	if d <= 0 {
		return 0, 0
	}

	switch {
	case hyp.StartTime <= ref.StartTime && hyp.StopTime <= ref.StopTime:
		// Pre-prediction: hyp starts at/before ref and ends at/before ref.
		hit = (hyp.StopTime - ref.StartTime) / d
		fa = clampMax1((ref.StartTime - hyp.StartTime) / d)
	case hyp.StartTime >= ref.StartTime && hyp.StopTime >= ref.StopTime:
		// Post-prediction: hyp starts at/after ref and ends at/after ref.
		hit = (ref.StopTime - hyp.StartTime) / d
		fa = clampMax1((hyp.StopTime - ref.StopTime) / d)
	case hyp.StartTime < ref.StartTime && hyp.StopTime > ref.StopTime:
		// Over-prediction: hyp strictly contains ref.
		hit = 1.0
		fa = clampMax1(((hyp.StopTime - ref.StopTime) + (ref.StartTime - hyp.StartTime)) / d)
	default:
		// Under-prediction: hyp entirely inside ref.
		hit = (hyp.StopTime - hyp.StartTime) / d
		fa = 0.0
	}

	return hit, fa
}

func clampMax1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
