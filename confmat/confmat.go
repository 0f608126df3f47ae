// Package confmat provides a small, label-keyed confusion matrix shared by
// the epoch and IRA scorers. The label alphabet is small and open-ended
// (whatever labels appear in the corpus), not a fixed contiguous integer
// range, so a map of maps is the natural representation. Labels() returns a
// sorted view so callers can range over the matrix in a fixed, deterministic
// order.
package confmat

import (
	"encoding/json"
	"sort"
)

// Matrix counts (refLabel, hypLabel) co-occurrences.
type Matrix struct {
	cells map[string]map[string]int64
}

// New returns an empty Matrix.
func New() *Matrix {
	return &Matrix{cells: map[string]map[string]int64{}}
}

// Add increments the (refLabel, hypLabel) cell by n.
func (m *Matrix) Add(refLabel, hypLabel string, n int64) {
	row, ok := m.cells[refLabel]
	if !ok {
		row = map[string]int64{}
		m.cells[refLabel] = row
	}
	row[hypLabel] += n
}

// At returns the (refLabel, hypLabel) cell value, 0 if absent.
func (m *Matrix) At(refLabel, hypLabel string) int64 {
	row, ok := m.cells[refLabel]
	if !ok {
		return 0
	}
	return row[hypLabel]
}

// Labels returns every label that appears as either a row or a column key,
// sorted lexically for deterministic iteration.
func (m *Matrix) Labels() []string {
	seen := map[string]struct{}{}
	for r, row := range m.cells {
		seen[r] = struct{}{}
		for h := range row {
			seen[h] = struct{}{}
		}
	}

	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	return labels
}

// RowSum returns Σ_h M[label][h].
func (m *Matrix) RowSum(label string) int64 {
	var sum int64
	for _, n := range m.cells[label] {
		sum += n
	}
	return sum
}

// ColSum returns Σ_r M[r][label].
func (m *Matrix) ColSum(label string) int64 {
	var sum int64
	for _, row := range m.cells {
		sum += row[label]
	}
	return sum
}

// Total returns Σ_r Σ_h M[r][h], the sum of every cell.
func (m *Matrix) Total() int64 {
	var sum int64
	for _, row := range m.cells {
		for _, n := range row {
			sum += n
		}
	}
	return sum
}

// MarshalJSON serializes the matrix as its row-keyed cell map, since cells
// is unexported and would otherwise marshal to an empty object.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	if m.cells == nil {
		return json.Marshal(map[string]map[string]int64{})
	}
	return json.Marshal(m.cells)
}

// UnmarshalJSON populates the matrix from the row-keyed cell map produced by
// MarshalJSON.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	cells := map[string]map[string]int64{}
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	m.cells = cells
	return nil
}
