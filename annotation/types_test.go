package annotation_test

import (
	"testing"

	"github.com/nedc-bench/scoring-core/annotation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventAnnotation_Valid(t *testing.T) {
	e, err := annotation.NewEventAnnotation("TERM", 10, 20, "SEIZ")
	require.NoError(t, err)
	assert.Equal(t, "seiz", e.Label, "label must be lower-cased")
	assert.Equal(t, 1.0, e.Confidence, "confidence defaults to 1.0")
}

func TestNewEventAnnotation_ExplicitConfidence(t *testing.T) {
	e, err := annotation.NewEventAnnotation("TERM", 0, 1, "bckg", 0.75)
	require.NoError(t, err)
	assert.Equal(t, 0.75, e.Confidence)
}

func TestNewEventAnnotation_Errors(t *testing.T) {
	_, err := annotation.NewEventAnnotation("TERM", 10, 5, "seiz")
	assert.ErrorIs(t, err, annotation.ErrInvalidTimeRange, "stop < start must error")

	_, err = annotation.NewEventAnnotation("TERM", -1, 5, "seiz")
	assert.ErrorIs(t, err, annotation.ErrInvalidTimeRange, "negative start must error")

	_, err = annotation.NewEventAnnotation("TERM", 0, 5, "  ")
	assert.ErrorIs(t, err, annotation.ErrEmptyLabel, "blank label must error")

	_, err = annotation.NewEventAnnotation("TERM", 0, 5, "seiz", 1.5)
	assert.ErrorIs(t, err, annotation.ErrInvalidConfidence, "confidence > 1 must error")
}

func TestOverlaps_Symmetry(t *testing.T) {
	a := must(t, 10, 20)
	b := must(t, 15, 25)
	c := must(t, 20, 30)

	assert.True(t, annotation.Overlaps(a, b))
	assert.True(t, annotation.Overlaps(b, a), "overlap must be symmetric")
	assert.False(t, annotation.Overlaps(a, c), "touching at the boundary is not an overlap")
	assert.False(t, annotation.Overlaps(c, a))
}

func TestSortEvents_TieBreak(t *testing.T) {
	events := []annotation.EventAnnotation{
		must(t, 10, 20, "seiz"),
		must(t, 0, 5, "bckg"),
		must(t, 0, 5, "seiz"),
		must(t, 0, 8, "bckg"),
	}
	annotation.SortEvents(events)

	require.Len(t, events, 4)
	assert.Equal(t, "bckg", events[0].Label)
	assert.Equal(t, 5.0, events[0].StopTime)
	assert.Equal(t, "seiz", events[1].Label)
	assert.Equal(t, 5.0, events[1].StopTime)
	assert.Equal(t, 8.0, events[2].StopTime)
	assert.Equal(t, 20.0, events[3].StartTime)
}

func TestAnnotationFile_Validate(t *testing.T) {
	f := annotation.AnnotationFile{
		Events:   []annotation.EventAnnotation{must(t, 0, 10), must(t, 10, 20)},
		Duration: 20,
	}
	assert.NoError(t, f.Validate())

	f.Duration = 15
	assert.ErrorIs(t, f.Validate(), annotation.ErrEventExceedsDuration)

	f.Duration = 0
	assert.ErrorIs(t, f.Validate(), annotation.ErrDurationMissing)

	unsorted := annotation.AnnotationFile{
		Events:   []annotation.EventAnnotation{must(t, 10, 20), must(t, 0, 10)},
		Duration: 20,
	}
	assert.ErrorIs(t, unsorted.Validate(), annotation.ErrUnsortedEvents)
}

func TestFilterLabel(t *testing.T) {
	events := []annotation.EventAnnotation{
		must(t, 0, 5, "bckg"),
		must(t, 5, 10, "seiz"),
		must(t, 10, 15, "seiz"),
	}
	seiz := annotation.FilterLabel(events, "SEIZ")
	assert.Len(t, seiz, 2)
	for _, e := range seiz {
		assert.Equal(t, "seiz", e.Label)
	}
}

func must(t *testing.T, start, stop float64, label ...string) annotation.EventAnnotation {
	t.Helper()
	l := "seiz"
	if len(label) > 0 {
		l = label[0]
	}
	e, err := annotation.NewEventAnnotation("TERM", start, stop, l)
	require.NoError(t, err)
	return e
}
