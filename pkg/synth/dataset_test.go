package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

func TestDatasetBoxLayout(t *testing.T) {
	g, err := New(Params{Atoms: 300})
	require.NoError(t, err)

	ds, err := g.Dataset()
	require.NoError(t, err)

	wantCols := map[string]int{
		types.SectionAtoms:     6,
		types.SectionBonds:     4,
		types.SectionAngles:    5,
		types.SectionDihedrals: 6,
	}
	for _, name := range types.SectionNames {
		tbl, ok := ds.Section(name)
		require.True(t, ok, "section %s", name)
		rows, cols := tbl.Shape()
		assert.Equal(t, 300, rows, "section %s", name)
		assert.Equal(t, wantCols[name], cols, "section %s", name)
	}

	// Box auxiliary tables are inert placeholders: everything past the
	// identifier column is 1.
	for i := 0; i < 300; i++ {
		row := ds.Bonds.Row(i)
		assert.Equal(t, float32(i+1), row[0])
		assert.Equal(t, float32(1), row[1])
		assert.Equal(t, float32(1), row[2])
		assert.Equal(t, float32(1), row[3])
	}
}

func TestDatasetRingLayout(t *testing.T) {
	g, err := New(Params{Atoms: 60, Layout: types.LayoutRing})
	require.NoError(t, err)

	ds, err := g.Dataset()
	require.NoError(t, err)

	rows, _ := ds.Atoms.Shape()
	assert.Equal(t, 60, rows)

	// Ring connectivity references wrap instead of staying constant.
	last := ds.Bonds.Row(59)
	assert.Equal(t, float32(60), last[2])
	assert.Equal(t, float32(1), last[3])
}

func TestDatasetUnknownSection(t *testing.T) {
	g, err := New(Params{Atoms: 10})
	require.NoError(t, err)

	ds, err := g.Dataset()
	require.NoError(t, err)

	_, ok := ds.Section("impropers")
	assert.False(t, ok)
}
