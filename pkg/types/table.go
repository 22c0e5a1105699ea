package types

// Table is a dense, ordered, rectangular collection of rows with named
// columns. Every cell is stored at a single numeric precision (float32);
// identifier and category columns hold integral values in that precision.
// Row order is insertion order. Tables are built once and only read
// afterward; aggregate queries never mutate them.
type Table struct {
	cols  []string
	index map[string]int
	rows  [][]float32
}

// NewTable allocates a zero-filled table with the given column names and
// row count. Returns ErrInvalidCount for a negative row count,
// ErrInvalidWidth when no columns are given, and ErrDuplicateColumn when
// a column name repeats.
func NewTable(columns []string, rowCount int) (*Table, error) {
	if rowCount < 0 {
		return nil, ErrInvalidCount
	}
	if len(columns) == 0 {
		return nil, ErrInvalidWidth
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	index := make(map[string]int, len(cols))
	for i, name := range cols {
		if _, ok := index[name]; ok {
			return nil, ErrDuplicateColumn
		}
		index[name] = i
	}

	rows := make([][]float32, rowCount)
	for i := range rows {
		rows[i] = make([]float32, len(cols))
	}

	return &Table{cols: cols, index: index, rows: rows}, nil
}

// Shape returns the table dimensions as (rowCount, columnCount).
func (t *Table) Shape() (int, int) {
	return len(t.rows), len(t.cols)
}

// Columns returns a copy of the column names in storage order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// ColumnIndex returns the storage index of the named column.
// Returns ErrColumnNotFound if no column has that name.
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, ErrColumnNotFound
	}
	return i, nil
}

// Row returns the backing slice for row i. Callers fill rows through this
// during construction; after that the row must be treated as read-only.
func (t *Table) Row(i int) []float32 {
	return t.rows[i]
}

// Column returns a copy of the named column's values in row order.
// Returns ErrColumnNotFound if no column has that name.
func (t *Table) Column(name string) ([]float32, error) {
	c, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[c]
	}
	return out, nil
}
