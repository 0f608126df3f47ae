// Package dpalign implements edit-distance sequence alignment between label
// sequences, with configurable deletion/insertion/substitution penalties and
// a fixed tie-break order for reconstructing the optimal path.
//
// The engine fills a cost matrix forward, then backtraces from the
// bottom-right corner to the origin, applying a fixed deletion-then-
// insertion-then-substitution tie-break order at every cell.
package dpalign

import (
	"math"

	"github.com/nedc-bench/scoring-core/annotation"
)

// Options controls the per-operation penalties used by the alignment DP.
type Options struct {
	PDel float64 // cost of a deletion (ref label with no hyp counterpart)
	PIns float64 // cost of an insertion (hyp label with no ref counterpart)
	PSub float64 // cost of substituting a mismatched non-NULL pair
}

// DefaultOptions returns the canonical {1, 1, 1} penalty set.
func DefaultOptions() Options {
	return Options{PDel: 1, PIns: 1, PSub: 1}
}

// Validate rejects negative penalties.
func (o Options) Validate() error {
	if o.PDel < 0 || o.PIns < 0 || o.PSub < 0 {
		return ErrBadOptions
	}
	return nil
}

// Result carries the full alignment outcome: per-label hit/insertion/
// deletion counts, the substitution matrix, the reconstructed aligned
// sequences (NULL-padded gaps, boundary sentinels stripped), and the
// seizure-class TP/FP/FN convenience views.
type Result struct {
	Hits               map[string]int64            `json:"hits"`
	Insertions         map[string]int64            `json:"insertions"`
	Deletions          map[string]int64             `json:"deletions"`
	Substitutions      int64                        `json:"substitutions"`
	SubstitutionMatrix map[string]map[string]int64 `json:"substitution_matrix"`
	AlignedRef         []string                     `json:"aligned_ref"`
	AlignedHyp         []string                     `json:"aligned_hyp"`
	TruePositives      int64                        `json:"true_positives"`
	FalsePositives     int64                        `json:"false_positives"`
	FalseNegatives     int64                        `json:"false_negatives"`
}

// TargetLabel is the positive class exposed via TruePositives/FalsePositives/
// FalseNegatives.
const TargetLabel = annotation.LabelSeizure

// tieEps is the floating-point tolerance used when comparing DP cell costs
// during backtracking.
const tieEps = 1e-9

// Align computes the optimal edit-distance alignment between refLabels and
// hypLabels. Callers must NOT include the NULL sentinel in their input
// sequences; Align pads internally.
func Align(refLabels, hypLabels []string, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	refP := padded(refLabels)
	hypP := padded(hypLabels)
	m := len(refP)
	n := len(hypP)

	// d[i][j] is the min-cost alignment of refP[:i] with hypP[:j].
	d := make([][]float64, m+1)
	for i := range d {
		d[i] = make([]float64, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = float64(i) * opts.PDel
	}
	for j := 0; j <= n; j++ {
		d[0][j] = float64(j) * opts.PIns
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			subCost := d[i-1][j-1]
			if refP[i-1] != hypP[j-1] {
				subCost += opts.PSub
			}
			d[i][j] = min3(d[i-1][j]+opts.PDel, d[i][j-1]+opts.PIns, subCost)
		}
	}

	alignedRef, alignedHyp := backtrack(d, refP, hypP, opts)

	// Strip the boundary NULL-NULL pair forced by padding at both ends.
	if len(alignedRef) >= 2 {
		alignedRef = alignedRef[1 : len(alignedRef)-1]
		alignedHyp = alignedHyp[1 : len(alignedHyp)-1]
	}

	res := categorize(alignedRef, alignedHyp)
	return res, nil
}

// padded wraps labels with a NULL sentinel at the start and end, lower-casing
// and trimming each label along the way.
func padded(labels []string) []string {
	out := make([]string, 0, len(labels)+2)
	out = append(out, annotation.LabelNull)
	for _, l := range labels {
		out = append(out, annotation.NormalizeLabel(l))
	}
	out = append(out, annotation.LabelNull)
	return out
}

// backtrack reconstructs the aligned sequences from (m,n) to (0,0), applying
// the fixed deletion-then-insertion-then-substitution tie-break order at
// every cell.
func backtrack(d [][]float64, refP, hypP []string, opts Options) (alignedRef, alignedHyp []string) {
	i, j := len(refP), len(hypP)
	alignedRef = make([]string, 0, i+j)
	alignedHyp = make([]string, 0, i+j)

	for i > 0 || j > 0 {
		switch {
		case i > 0 && almostEqual(d[i][j], d[i-1][j]+opts.PDel):
			alignedRef = append(alignedRef, refP[i-1])
			alignedHyp = append(alignedHyp, annotation.LabelNull)
			i--
		case j > 0 && almostEqual(d[i][j], d[i][j-1]+opts.PIns):
			alignedRef = append(alignedRef, annotation.LabelNull)
			alignedHyp = append(alignedHyp, hypP[j-1])
			j--
		case i > 0 && j > 0:
			alignedRef = append(alignedRef, refP[i-1])
			alignedHyp = append(alignedHyp, hypP[j-1])
			i--
			j--
		default:
			// Unreachable: the DP matrix is total for i,j >= 0.
			i, j = 0, 0
		}
	}

	reverse(alignedRef)
	reverse(alignedHyp)

	return alignedRef, alignedHyp
}

// categorize counts hits, insertions, deletions, and substitutions from an
// aligned pair of sequences, per the rules in the specification: a NULL-NULL
// pair (boundary artifacts aside) contributes to no category.
func categorize(alignedRef, alignedHyp []string) Result {
	hits := map[string]int64{}
	insertions := map[string]int64{}
	deletions := map[string]int64{}
	subMatrix := map[string]map[string]int64{}
	var substitutions int64

	for k := range alignedRef {
		rl, hl := alignedRef[k], alignedHyp[k]
		switch {
		case rl == annotation.LabelNull && hl == annotation.LabelNull:
			continue
		case rl == hl:
			hits[rl]++
		case rl == annotation.LabelNull:
			insertions[hl]++
		case hl == annotation.LabelNull:
			deletions[rl]++
		default:
			substitutions++
			row, ok := subMatrix[rl]
			if !ok {
				row = map[string]int64{}
				subMatrix[rl] = row
			}
			row[hl]++
		}
	}

	fn := deletions[TargetLabel]
	for _, count := range subMatrix[TargetLabel] {
		fn += count
	}

	return Result{
		Hits:               hits,
		Insertions:         insertions,
		Deletions:          deletions,
		Substitutions:      substitutions,
		SubstitutionMatrix: subMatrix,
		AlignedRef:         alignedRef,
		AlignedHyp:         alignedHyp,
		TruePositives:      hits[TargetLabel],
		FalsePositives:     insertions[TargetLabel],
		FalseNegatives:     fn,
	}
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tieEps
}

func reverse(s []string) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
