// Shared helpers for topotab CLI commands.
package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mesh-intelligence/topotab/internal/sqlite"
	"github.com/mesh-intelligence/topotab/pkg/types"
)

// attachStore resolves the data directory, creates a SQLite ledger, and
// attaches it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	config := types.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}

	store := sqlite.NewStore()
	if err := store.Attach(config); err != nil {
		return nil, fmt.Errorf("attach ledger: %w", err)
	}
	return store, nil
}

// renderRunSummary prints one run's section summaries as a terminal table.
func renderRunSummary(w io.Writer, rec *types.RunRecord) {
	fmt.Fprintf(w, "layout=%s atoms=%d", rec.Layout, rec.AtomCount)
	if rec.Seed != 0 {
		fmt.Fprintf(w, " seed=%d", rec.Seed)
	}
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"section", "rows", "cols", "types", "coordinate ranges"})
	for _, sec := range rec.Sections {
		t.AppendRow(table.Row{sec.Name, sec.Rows, sec.Cols, sec.TypeCount, coordRanges(sec)})
	}
	t.Render()
}

// coordRanges formats the x/y/z ranges of a section, or "-" when the
// section has no coordinate columns.
func coordRanges(sec types.SectionSummary) string {
	out := ""
	for _, r := range sec.Columns {
		switch r.Column {
		case types.ColX, types.ColY, types.ColZ:
			if out != "" {
				out += "  "
			}
			out += fmt.Sprintf("%s:[%.3f, %.3f]", r.Column, r.Min, r.Max)
		}
	}
	if out == "" {
		return "-"
	}
	return out
}

// renderPreview prints the first n rows of a table.
func renderPreview(w io.Writer, tbl *types.Table, n int) {
	rows, _ := tbl.Shape()
	if n > rows {
		n = rows
	}

	cols := tbl.Columns()
	header := make(table.Row, len(cols))
	for i, name := range cols {
		header[i] = name
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	for r := 0; r < n; r++ {
		row := make(table.Row, len(cols))
		for c, v := range tbl.Row(r) {
			row[c] = fmt.Sprintf("%g", v)
		}
		t.AppendRow(row)
	}
	t.Render()
	fmt.Fprintf(w, "(%d of %d rows)\n", n, rows)
}
