// Package stats computes read-only aggregate queries over tables:
// column-wise extrema, distinct-value censuses, and per-section
// summaries for the run ledger.
package stats

import (
	"fmt"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

// ColumnMax returns the maximum of each named column over all rows, one
// value per requested column in request order. All names are resolved
// before any value is computed, so an unknown name fails with
// ErrColumnNotFound and no partial result. Returns ErrEmptyTable when
// the table has no rows.
func ColumnMax(t *types.Table, names ...string) ([]float32, error) {
	return extrema(t, names, func(v, acc float32) bool { return v > acc })
}

// ColumnMin returns the minimum of each named column over all rows, with
// the same resolution and error semantics as ColumnMax.
func ColumnMin(t *types.Table, names ...string) ([]float32, error) {
	return extrema(t, names, func(v, acc float32) bool { return v < acc })
}

// extrema scans every row once, keeping the best value per requested
// column according to better.
func extrema(t *types.Table, names []string, better func(v, acc float32) bool) ([]float32, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		c, err := t.ColumnIndex(name)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
		idx[i] = c
	}

	rows, _ := t.Shape()
	if rows == 0 {
		return nil, types.ErrEmptyTable
	}

	out := make([]float32, len(names))
	for i, c := range idx {
		out[i] = t.Row(0)[c]
	}
	for r := 1; r < rows; r++ {
		row := t.Row(r)
		for i, c := range idx {
			if better(row[c], out[i]) {
				out[i] = row[c]
			}
		}
	}
	return out, nil
}

// DistinctCount returns the number of distinct values in the named
// column. Returns ErrColumnNotFound for an unknown name. A table with no
// rows has zero distinct values.
func DistinctCount(t *types.Table, name string) (int, error) {
	col, err := t.Column(name)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	seen := make(map[float32]struct{}, 8)
	for _, v := range col {
		seen[v] = struct{}{}
	}
	return len(seen), nil
}

// Summarize returns the min/max range of every column in storage order.
// Returns ErrEmptyTable when the table has no rows.
func Summarize(t *types.Table) ([]types.ColumnRange, error) {
	cols := t.Columns()
	maxs, err := ColumnMax(t, cols...)
	if err != nil {
		return nil, err
	}
	mins, err := ColumnMin(t, cols...)
	if err != nil {
		return nil, err
	}

	out := make([]types.ColumnRange, len(cols))
	for i, name := range cols {
		out[i] = types.ColumnRange{Column: name, Min: mins[i], Max: maxs[i]}
	}
	return out, nil
}

// SummarizeSection builds the ledger summary for one named table: shape,
// distinct category codes (when the table has a type column), and every
// column's range. A table with no rows summarizes to its shape alone.
func SummarizeSection(name string, t *types.Table) (types.SectionSummary, error) {
	rows, cols := t.Shape()
	s := types.SectionSummary{Name: name, Rows: rows, Cols: cols}
	if rows == 0 {
		return s, nil
	}

	ranges, err := Summarize(t)
	if err != nil {
		return types.SectionSummary{}, fmt.Errorf("summarize %s: %w", name, err)
	}
	s.Columns = ranges

	if _, err := t.ColumnIndex(types.ColAtomType); err == nil {
		n, err := DistinctCount(t, types.ColAtomType)
		if err != nil {
			return types.SectionSummary{}, fmt.Errorf("type census %s: %w", name, err)
		}
		s.TypeCount = n
	}
	return s, nil
}
