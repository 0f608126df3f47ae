package fixtures_test

import (
	"testing"

	"github.com/nedc-bench/scoring-core/annotation"
	"github.com/nedc-bench/scoring-core/internal/fixtures"
	"github.com/stretchr/testify/assert"
)

func TestGenerateEventSequence_Deterministic(t *testing.T) {
	a := fixtures.GenerateEventSequence(60, fixtures.WithSeed(42), fixtures.WithEventCount(20))
	b := fixtures.GenerateEventSequence(60, fixtures.WithSeed(42), fixtures.WithEventCount(20))
	assert.Equal(t, a, b)
}

func TestGenerateEventSequence_DifferentSeedsDiffer(t *testing.T) {
	a := fixtures.GenerateEventSequence(60, fixtures.WithSeed(1), fixtures.WithEventCount(20))
	b := fixtures.GenerateEventSequence(60, fixtures.WithSeed(2), fixtures.WithEventCount(20))
	assert.NotEqual(t, a, b)
}

func TestGenerateEventSequence_NeverOverlapsOrExceedsDuration(t *testing.T) {
	const duration = 120.0
	events := fixtures.GenerateEventSequence(duration, fixtures.WithSeed(7), fixtures.WithEventCount(30))

	for i, e := range events {
		assert.GreaterOrEqual(t, e.StartTime, 0.0)
		assert.LessOrEqual(t, e.StopTime, duration)
		assert.Less(t, e.StartTime, e.StopTime)
		if i > 0 {
			assert.False(t, annotation.Overlaps(events[i-1], e), "generated events must not overlap")
		}
	}
}

func TestGenerateEventSequence_DegenerateInputs(t *testing.T) {
	assert.Nil(t, fixtures.GenerateEventSequence(0, fixtures.WithSeed(1)))
	assert.Nil(t, fixtures.GenerateEventSequence(-5, fixtures.WithSeed(1)))
}

func TestGeneratePair_SeedsAreIndependent(t *testing.T) {
	ref, hyp := fixtures.GeneratePair(60, 1, 2, fixtures.WithEventCount(15))
	assert.NotEqual(t, ref, hyp)
}
