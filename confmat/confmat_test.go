package confmat_test

import (
	"encoding/json"
	"testing"

	"github.com/nedc-bench/scoring-core/confmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Basic(t *testing.T) {
	m := confmat.New()
	m.Add("seiz", "seiz", 6)
	m.Add("seiz", "bckg", 4)
	m.Add("bckg", "bckg", 24)

	assert.EqualValues(t, 6, m.At("seiz", "seiz"))
	assert.EqualValues(t, 0, m.At("bckg", "seiz"))
	assert.EqualValues(t, 10, m.RowSum("seiz"))
	assert.EqualValues(t, 28, m.ColSum("bckg"))
	assert.EqualValues(t, 34, m.Total())
	assert.Equal(t, []string{"bckg", "seiz"}, m.Labels())
}

func TestMatrix_RowColSumsAgreeWithBruteForce(t *testing.T) {
	m := confmat.New()
	m.Add("a", "a", 3)
	m.Add("a", "b", 2)
	m.Add("b", "a", 1)
	m.Add("b", "c", 5)

	for _, label := range m.Labels() {
		var bruteRow, bruteCol int64
		for _, other := range m.Labels() {
			bruteRow += m.At(label, other)
			bruteCol += m.At(other, label)
		}
		assert.Equal(t, bruteRow, m.RowSum(label))
		assert.Equal(t, bruteCol, m.ColSum(label))
	}
}

func TestMatrix_Empty(t *testing.T) {
	m := confmat.New()
	assert.Zero(t, m.Total())
	assert.Empty(t, m.Labels())
}

func TestMatrix_JSONRoundTrip(t *testing.T) {
	m := confmat.New()
	m.Add("seiz", "seiz", 6)
	m.Add("seiz", "bckg", 4)
	m.Add("bckg", "bckg", 20)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotEqual(t, "{}", string(data), "marshaling must not silently drop the unexported cell map")

	var decoded confmat.Matrix
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.EqualValues(t, 6, decoded.At("seiz", "seiz"))
	assert.EqualValues(t, 4, decoded.At("seiz", "bckg"))
	assert.EqualValues(t, 20, decoded.At("bckg", "bckg"))
	assert.Equal(t, m.Total(), decoded.Total())
}
