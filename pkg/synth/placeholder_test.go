package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

func TestPlaceholder(t *testing.T) {
	const count, width = 1200, 4

	tbl, err := Placeholder(count, width)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Equal(t, count, rows)
	assert.Equal(t, width, cols)
	assert.Equal(t, []string{"id", "v1", "v2", "v3"}, tbl.Columns())

	for i := 0; i < count; i++ {
		row := tbl.Row(i)
		assert.Equal(t, float32(i+1), row[0], "identifier at row %d", i)
		for c := 1; c < width; c++ {
			assert.Equal(t, float32(1), row[c], "cell (%d,%d)", i, c)
		}
	}
}

func TestPlaceholderZeroRows(t *testing.T) {
	tbl, err := Placeholder(0, 3)
	require.NoError(t, err)

	rows, cols := tbl.Shape()
	assert.Zero(t, rows)
	assert.Equal(t, 3, cols)
}

func TestPlaceholderInvalidArguments(t *testing.T) {
	_, err := Placeholder(-1, 4)
	assert.ErrorIs(t, err, types.ErrInvalidCount)

	_, err = Placeholder(10, 0)
	assert.ErrorIs(t, err, types.ErrInvalidWidth)
}
