// Package epoch samples both event streams at fixed-width epoch midpoints
// with gap augmentation, building a full confusion matrix between reference
// and hypothesis labels from every sampled pair. Joint-sequence compression
// is exposed separately as a derived view and never feeds the matrix.
package epoch

import (
	"github.com/nedc-bench/scoring-core/annotation"
	"github.com/nedc-bench/scoring-core/confmat"
	"github.com/nedc-bench/scoring-core/internal/sampling"
)

// Options controls epoch sampling.
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

// Result carries the confusion matrix built from the raw sampled pairs,
// along with the compressed-view sequences and every derived count.
type Result struct {
	ConfusionMatrix              *confmat.Matrix  `json:"confusion_matrix"`
	CompressedRef, CompressedHyp []string         `json:"-"`
	TP                           int64            `json:"tp"`
	FP                           int64            `json:"fp"`
	FN                           int64            `json:"fn"`
	Hits                         map[string]int64 `json:"hits"`
	Misses                       map[string]int64 `json:"misses"`
	FalseAlarms                  map[string]int64 `json:"false_alarms"`
	Insertions                   map[string]int64 `json:"insertions"`
	Deletions                    map[string]int64 `json:"deletions"`
}

// Score runs gap augmentation, midpoint sampling, joint compression, and
// confusion-matrix derivation over ref and hyp. Returns
// ErrDurationMissing when fileDuration <= 0. When fileDuration is smaller
// than half an epoch, returns a zero-sample Result (empty matrix) rather
// than an error, per the specification's Open Question resolution.
func Score(ref, hyp []annotation.EventAnnotation, fileDuration float64, opts Options) (Result, error) {
	if fileDuration <= 0 {
		return Result{}, ErrDurationMissing
	}
	opts = opts.resolve()

	if fileDuration < opts.EpochDuration/2 {
		return Result{ConfusionMatrix: confmat.New()}, nil
	}

	augRef := sampling.Augment(ref, fileDuration, opts.NullClass)
	augHyp := sampling.Augment(hyp, fileDuration, opts.NullClass)
	times := sampling.SampleTimes(fileDuration, opts.EpochDuration)
	refSeq := sampling.LabelsAt(augRef, times)
	hypSeq := sampling.LabelsAt(augHyp, times)

	compressedRef, compressedHyp := compress(refSeq, hypSeq)

	// The confusion matrix is built from the raw, per-sample sequence, not
	// the compressed one: Invariants 6 and 7 require Σ(confusion matrix) to
	// equal the raw sample count, which only holds if every sample is
	// tallied. Joint compression still runs and its output is exposed via
	// CompressedRef/CompressedHyp, but it is an independent derived view,
	// not an input to the matrix.
	cm := confmat.New()
	for i := range refSeq {
		cm.Add(refSeq[i], hypSeq[i], 1)
	}

	hits, misses, falseAlarms := map[string]int64{}, map[string]int64{}, map[string]int64{}
	insertions, deletions := map[string]int64{}, map[string]int64{}
	for _, label := range cm.Labels() {
		hits[label] = cm.At(label, label)
		falseAlarms[label] = cm.ColSum(label) - cm.At(label, label)
		misses[label] = cm.RowSum(label) - cm.At(label, label)
		insertions[label] = cm.At(opts.NullClass, label)
		deletions[label] = cm.At(label, opts.NullClass)
	}

	return Result{
		ConfusionMatrix: cm,
		CompressedRef:   compressedRef,
		CompressedHyp:   compressedHyp,
		TP:              cm.At(annotation.LabelSeizure, annotation.LabelSeizure),
		FP:              cm.At(annotation.LabelBackground, annotation.LabelSeizure),
		FN:              cm.At(annotation.LabelSeizure, annotation.LabelBackground),
		Hits:            hits,
		Misses:          misses,
		FalseAlarms:     falseAlarms,
		Insertions:      insertions,
		Deletions:       deletions,
	}, nil
}

// compress keeps position 0 and every position k where refSeq[k] != refSeq[k-1]
// or hypSeq[k] != hypSeq[k-1], preserving alignment while collapsing runs of
// identical paired states.
func compress(refSeq, hypSeq []string) (cRef, cHyp []string) {
	if len(refSeq) == 0 {
		return nil, nil
	}

	cRef = append(cRef, refSeq[0])
	cHyp = append(cHyp, hypSeq[0])

	for k := 1; k < len(refSeq); k++ {
		if refSeq[k] != refSeq[k-1] || hypSeq[k] != hypSeq[k-1] {
			cRef = append(cRef, refSeq[k])
			cHyp = append(cHyp, hypSeq[k])
		}
	}

	return cRef, cHyp
}
