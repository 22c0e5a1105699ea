package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/topotab/pkg/synth"
	"github.com/mesh-intelligence/topotab/pkg/types"
)

// fixedTable builds a small table with known values for exact assertions.
func fixedTable(t *testing.T) *types.Table {
	t.Helper()
	tbl, err := types.NewTable([]string{"id", "x", "y"}, 4)
	require.NoError(t, err)

	data := [][]float32{
		{1, 3.5, -2},
		{2, -1, 7},
		{3, 0, 0.25},
		{4, 9, -8.5},
	}
	for i, vals := range data {
		copy(tbl.Row(i), vals)
	}
	return tbl
}

func TestColumnMax(t *testing.T) {
	tbl := fixedTable(t)

	got, err := ColumnMax(tbl, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []float32{9, 7}, got)
}

func TestColumnMin(t *testing.T) {
	tbl := fixedTable(t)

	got, err := ColumnMin(tbl, "y", "x", "id")
	require.NoError(t, err)
	assert.Equal(t, []float32{-8.5, -1, 1}, got)
}

func TestColumnMaxUnknownColumn(t *testing.T) {
	tbl := fixedTable(t)

	got, err := ColumnMax(tbl, "x", "w")
	assert.ErrorIs(t, err, types.ErrColumnNotFound)
	assert.Nil(t, got, "no partial result on unknown column")
}

func TestColumnMinEmptyTable(t *testing.T) {
	tbl, err := types.NewTable([]string{"x"}, 0)
	require.NoError(t, err)

	_, err = ColumnMin(tbl, "x")
	assert.ErrorIs(t, err, types.ErrEmptyTable)
}

func TestExtremaBoundEveryRow(t *testing.T) {
	tbl, err := synth.Atoms(400)
	require.NoError(t, err)

	maxs, err := ColumnMax(tbl, types.CoordColumns...)
	require.NoError(t, err)
	mins, err := ColumnMin(tbl, types.CoordColumns...)
	require.NoError(t, err)

	rows, _ := tbl.Shape()
	for i, name := range types.CoordColumns {
		c, err := tbl.ColumnIndex(name)
		require.NoError(t, err)
		for r := 0; r < rows; r++ {
			v := tbl.Row(r)[c]
			assert.LessOrEqual(t, v, maxs[i])
			assert.GreaterOrEqual(t, v, mins[i])
		}
	}
}

func TestDistinctCount(t *testing.T) {
	tbl, err := synth.Atoms(1200)
	require.NoError(t, err)

	n, err := DistinctCount(tbl, types.ColAtomType)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "bulk, head, and tail codes")

	_, err = DistinctCount(tbl, "charge")
	assert.ErrorIs(t, err, types.ErrColumnNotFound)
}

func TestSummarize(t *testing.T) {
	tbl := fixedTable(t)

	ranges, err := Summarize(tbl)
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	assert.Equal(t, types.ColumnRange{Column: "id", Min: 1, Max: 4}, ranges[0])
	assert.Equal(t, types.ColumnRange{Column: "x", Min: -1, Max: 9}, ranges[1])
	assert.Equal(t, types.ColumnRange{Column: "y", Min: -8.5, Max: 7}, ranges[2])
}

func TestSummarizeSection(t *testing.T) {
	tbl, err := synth.Atoms(300)
	require.NoError(t, err)

	s, err := SummarizeSection(types.SectionAtoms, tbl)
	require.NoError(t, err)

	assert.Equal(t, types.SectionAtoms, s.Name)
	assert.Equal(t, 300, s.Rows)
	assert.Equal(t, 6, s.Cols)
	assert.Equal(t, 3, s.TypeCount)
	require.Len(t, s.Columns, 6)
	assert.Equal(t, "id", s.Columns[0].Column)
	assert.Equal(t, float32(1), s.Columns[0].Min)
	assert.Equal(t, float32(300), s.Columns[0].Max)
}

func TestSummarizeSectionEmptyTable(t *testing.T) {
	tbl, err := types.NewTable([]string{"id"}, 0)
	require.NoError(t, err)

	s, err := SummarizeSection(types.SectionBonds, tbl)
	require.NoError(t, err)
	assert.Zero(t, s.Rows)
	assert.Equal(t, 1, s.Cols)
	assert.Zero(t, s.TypeCount)
	assert.Empty(t, s.Columns)
}
