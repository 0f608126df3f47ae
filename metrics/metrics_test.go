package metrics_test

import (
	"testing"

	"github.com/nedc-bench/scoring-core/metrics"
	"github.com/stretchr/testify/assert"
)

func TestSensitivity(t *testing.T) {
	assert.Equal(t, 0.0, metrics.Sensitivity(metrics.Counts{}))
	assert.InDelta(t, 0.75, metrics.Sensitivity(metrics.Counts{TP: 3, FN: 1}), 1e-9)
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, 0.0, metrics.Precision(metrics.Counts{}))
	assert.InDelta(t, 0.6, metrics.Precision(metrics.Counts{TP: 3, FP: 2}), 1e-9)
}

func TestF1(t *testing.T) {
	c := metrics.Counts{TP: 3, FP: 2, FN: 1}
	p := metrics.Precision(c)
	r := metrics.Sensitivity(c)
	want := 2 * p * r / (p + r)
	assert.InDelta(t, want, metrics.F1(c), 1e-9)
	assert.Equal(t, 0.0, metrics.F1(metrics.Counts{}))
}

func TestFAPer24h(t *testing.T) {
	epoch := 0.25
	got := metrics.FAPer24h(4, 3600, &epoch)
	want := 4 * 0.25 / 3600 * 86400
	assert.InDelta(t, want, got, 1e-9)

	assert.Equal(t, 0.0, metrics.FAPer24h(4, 0, &epoch))
	assert.Equal(t, 0.0, metrics.FAPer24h(4, -1, &epoch))

	gotEventMode := metrics.FAPer24h(2, 3600, nil)
	wantEventMode := 2 * 1.0 / 3600 * 86400
	assert.InDelta(t, wantEventMode, gotEventMode, 1e-9)
}

// TestAggregate_SumsDurationsNotMax verifies Invariant 10: aggregate FA/24h
// must come from summed FP and summed duration, never from averaging each
// file's own FA/24h value, which silently introduces a large-factor error
// whenever file durations are unequal.
func TestAggregate_SumsDurationsNotMax(t *testing.T) {
	files := []struct {
		counts   metrics.Counts
		duration float64
	}{
		{metrics.Counts{TP: 1, FP: 10}, 60},
		{metrics.Counts{TP: 1, FP: 1}, 86400},
	}

	var agg metrics.Aggregate
	for _, f := range files {
		agg.Add(f.counts, f.duration)
	}
	summary := agg.Summarize(nil)

	naiveMean := (metrics.FAPer24h(10, 60, nil) + metrics.FAPer24h(1, 86400, nil)) / 2
	correct := metrics.FAPer24h(11, 86460, nil)

	assert.InDelta(t, correct, summary.FAPer24h, 1e-9)
	assert.NotEqual(t, naiveMean, summary.FAPer24h, "naive per-file averaging must diverge from the correct aggregate")
}

func TestAggregate_OrderIndependentSums(t *testing.T) {
	var a, b metrics.Aggregate
	a.Add(metrics.Counts{TP: 1, FP: 2, FN: 3}, 10)
	a.Add(metrics.Counts{TP: 4, FP: 5, FN: 6}, 20)

	b.Add(metrics.Counts{TP: 4, FP: 5, FN: 6}, 20)
	b.Add(metrics.Counts{TP: 1, FP: 2, FN: 3}, 10)

	assert.Equal(t, a.TP, b.TP)
	assert.Equal(t, a.FP, b.FP)
	assert.Equal(t, a.FN, b.FN)
	assert.Equal(t, a.TotalDurationSeconds, b.TotalDurationSeconds)
}
