// Package ira computes Cohen's kappa inter-rater agreement, per-label and
// multi-class, from a confusion matrix between reference and hypothesis
// label sequences. It supports direct label-sequence comparison and
// event-mode scoring that reuses the epoch scorer's sampling grid.
package ira

import (
	"github.com/nedc-bench/scoring-core/annotation"
	"github.com/nedc-bench/scoring-core/confmat"
	"github.com/nedc-bench/scoring-core/internal/sampling"
)

// Options controls event-mode sampling. Unused in label mode.
type Options struct {
	// EpochDuration is the sample spacing in seconds. Defaults to 0.25.
	EpochDuration float64
	// NullClass is the filler label used to pad gaps to full coverage.
	// Defaults to "bckg".
	NullClass string
}

// DefaultOptions returns the canonical {0.25, "bckg"} configuration.
func DefaultOptions() Options {
	return Options{EpochDuration: 0.25, NullClass: annotation.LabelBackground}
}

func (o Options) resolve() Options {
	if o.EpochDuration <= 0 {
		o.EpochDuration = 0.25
	}
	if o.NullClass == "" {
		o.NullClass = annotation.LabelBackground
	}
	return o
}

// Result carries the confusion matrix and both kappa views.
type Result struct {
	ConfusionMatrix *confmat.Matrix    `json:"confusion_matrix"`
	PerLabelKappa   map[string]float64 `json:"per_label_kappa"`
	MultiClassKappa float64            `json:"multi_class_kappa"`
}

// ScoreLabels computes IRA directly from two equal-length label sequences,
// with no sampling involved. Every index pair (ref[i], hyp[i]) is tallied;
// there is no joint compression step, unlike the epoch scorer.
func ScoreLabels(ref, hyp []string) Result {
	cm := confmat.New()
	n := len(ref)
	if len(hyp) < n {
		n = len(hyp)
	}
	for i := 0; i < n; i++ {
		cm.Add(ref[i], hyp[i], 1)
	}
	return scoreMatrix(cm)
}

// ScoreEvents samples ref and hyp at fixed epoch midpoints after gap
// augmentation, exactly as the epoch scorer does, then scores the resulting
// label sequences with ScoreLabels. Returns ErrDurationMissing when
// fileDuration <= 0, and a zero-sample Result when fileDuration is below
// half an epoch, matching the epoch scorer's Open Question resolution.
func ScoreEvents(ref, hyp []annotation.EventAnnotation, fileDuration float64, opts Options) (Result, error) {
	if fileDuration <= 0 {
		return Result{}, ErrDurationMissing
	}
	opts = opts.resolve()

	if fileDuration < opts.EpochDuration/2 {
		return Result{ConfusionMatrix: confmat.New(), PerLabelKappa: map[string]float64{}}, nil
	}

	augRef := sampling.Augment(ref, fileDuration, opts.NullClass)
	augHyp := sampling.Augment(hyp, fileDuration, opts.NullClass)
	times := sampling.SampleTimes(fileDuration, opts.EpochDuration)
	refSeq := sampling.LabelsAt(augRef, times)
	hypSeq := sampling.LabelsAt(augHyp, times)

	return ScoreLabels(refSeq, hypSeq), nil
}

func scoreMatrix(cm *confmat.Matrix) Result {
	labels := cm.Labels()
	perLabel := make(map[string]float64, len(labels))
	for _, l := range labels {
		perLabel[l] = labelKappa(cm, labels, l)
	}

	return Result{
		ConfusionMatrix: cm,
		PerLabelKappa:   perLabel,
		MultiClassKappa: multiClassKappa(cm, labels),
	}
}

// labelKappa collapses the matrix to the 2x2 "L vs not-L" table and returns
// Cohen's kappa for that table, per the specification's formula.
func labelKappa(cm *confmat.Matrix, labels []string, target string) float64 {
	var a, b, c, d float64
	for _, r := range labels {
		for _, h := range labels {
			n := float64(cm.At(r, h))
			switch {
			case r == target && h == target:
				a += n
			case r == target && h != target:
				b += n
			case r != target && h == target:
				c += n
			default:
				d += n
			}
		}
	}

	n := a + b + c + d
	if n == 0 {
		return 0.0
	}

	pObserved := (a + d) / n
	pYes := ((a + b) / n) * ((a + c) / n)
	pNo := ((c + d) / n) * ((b + d) / n)
	pExpected := pYes + pNo

	denominator := 1 - pExpected
	numerator := pObserved - pExpected
	if denominator == 0 {
		if numerator == 0 {
			return 1.0
		}
		return 0.0
	}
	return numerator / denominator
}

// multiClassKappa implements the specification's multi-class formula,
// including the mandatory n·diag numerator term (not just diag).
func multiClassKappa(cm *confmat.Matrix, labels []string) float64 {
	row := make(map[string]float64, len(labels))
	col := make(map[string]float64, len(labels))
	var diag, n float64

	for _, r := range labels {
		row[r] = float64(cm.RowSum(r))
		n += row[r]
	}
	for _, l := range labels {
		col[l] = float64(cm.ColSum(l))
		diag += float64(cm.At(l, l))
	}

	var s float64
	for _, l := range labels {
		s += row[l] * col[l]
	}
	if n == 0 {
		return 0.0
	}

	numerator := n*diag - s
	denominator := n*n - s

	if denominator == 0 {
		if numerator == 0 {
			return 1.0
		}
		return 0.0
	}
	return numerator / denominator
}
