package ira

import (
	"github.com/nedc-bench/scoring-core/confmat"
	"gonum.org/v1/gonum/stat"
)

// CohenKappaRef independently recomputes multi-class kappa from m using
// gonum's weighted-mean machinery as a cross-check oracle against
// multiClassKappa. It is not part of the scoring pipeline; it exists so the
// test suite can assert the two independent derivations agree to 1e-9.
func CohenKappaRef(m *confmat.Matrix) float64 {
	labels := m.Labels()
	k := len(labels)
	if k == 0 {
		return 0.0
	}

	row := make([]float64, k)
	col := make([]float64, k)
	weights := make([]float64, 0, k*k)
	indicator := make([]float64, 0, k*k)

	var n float64
	for i, r := range labels {
		for j, h := range labels {
			v := float64(m.At(r, h))
			weights = append(weights, v)
			if i == j {
				indicator = append(indicator, 1.0)
			} else {
				indicator = append(indicator, 0.0)
			}
			row[i] += v
			col[j] += v
			n += v
		}
	}
	if n == 0 {
		return 0.0
	}

	// stat.Mean(indicator, weights) == Σ(diagonal cell mass) / Σ(all cell
	// mass), i.e. observed agreement, since indicator is 1 only on the
	// diagonal and weights are the raw cell counts.
	pObserved := stat.Mean(indicator, weights)

	var pExpected float64
	for i := range labels {
		pExpected += (row[i] / n) * (col[i] / n)
	}

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
