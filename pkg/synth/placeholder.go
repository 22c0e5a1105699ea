package synth

import (
	"fmt"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

// Placeholder builds a table of the given row count and column width with
// every cell set to 1, except the first column, which holds the
// contiguous identifier sequence 1..count. Columns are named "id",
// "v1", "v2", and so on. Returns ErrInvalidCount for count < 0 and
// ErrInvalidWidth for width < 1.
func Placeholder(count, width int) (*types.Table, error) {
	if width < 1 {
		return nil, types.ErrInvalidWidth
	}

	cols := make([]string, width)
	cols[0] = "id"
	for i := 1; i < width; i++ {
		cols[i] = fmt.Sprintf("v%d", i)
	}

	tbl, err := types.NewTable(cols, count)
	if err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		row := tbl.Row(i)
		row[0] = float32(i + 1)
		for c := 1; c < width; c++ {
			row[c] = 1
		}
	}
	return tbl, nil
}
