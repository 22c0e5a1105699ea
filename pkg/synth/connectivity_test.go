package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

func TestBondsWraparound(t *testing.T) {
	const count = 120

	tbl, err := Bonds(count)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, count, rows)
	assert.Equal(t, 4, cols)

	// Interior rows chain i+1 -> i+2.
	row := tbl.Row(0)
	assert.Equal(t, []float32{1, 1, 1, 2}, row)

	// Last row wraps back to the first atom.
	last := tbl.Row(count - 1)
	assert.Equal(t, float32(count), last[0])
	assert.Equal(t, float32(count), last[2])
	assert.Equal(t, float32(1), last[3])
}

func TestAnglesWraparound(t *testing.T) {
	const count = 120

	tbl, err := Angles(count)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, count, rows)
	assert.Equal(t, 5, cols)

	// Second-to-last row references count-1, count, 1.
	row := tbl.Row(count - 2)
	assert.Equal(t, []float32{float32(count - 1), 1, float32(count - 1), float32(count), 1}, row)
}

func TestDihedralsWraparound(t *testing.T) {
	const count = 120

	tbl, err := Dihedrals(count)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, count, rows)
	assert.Equal(t, 6, cols)
	assert.Equal(t, []string{"id", "type", "a1", "a2", "a3", "a4"}, tbl.Columns())

	// Every atom reference stays within 1..count.
	for i := 0; i < count; i++ {
		row := tbl.Row(i)
		for m := 2; m < 6; m++ {
			assert.GreaterOrEqual(t, row[m], float32(1), "row %d member %d", i, m)
			assert.LessOrEqual(t, row[m], float32(count), "row %d member %d", i, m)
		}
	}

	// Last row chains count, 1, 2, 3.
	last := tbl.Row(count - 1)
	assert.Equal(t, []float32{float32(count), 1, float32(count), 1, 2, 3}, last)
}

func TestConnectivityNegativeCount(t *testing.T) {
	for _, build := range []func(int) (*types.Table, error){Bonds, Angles, Dihedrals} {
		_, err := build(-1)
		assert.ErrorIs(t, err, types.ErrInvalidCount)
	}
}
