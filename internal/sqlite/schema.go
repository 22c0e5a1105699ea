package sqlite

// Schema DDL for the run ledger.
const (
	createRuns = `CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    atom_count INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    layout TEXT NOT NULL
);`

	createRunSections = `CREATE TABLE IF NOT EXISTS run_sections (
    run_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    section TEXT NOT NULL,
    row_count INTEGER NOT NULL,
    col_count INTEGER NOT NULL,
    type_count INTEGER NOT NULL,
    column_ranges TEXT NOT NULL,
    PRIMARY KEY (run_id, section),
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);`
)

// Index DDL for common queries.
const (
	idxRunsLayout     = `CREATE INDEX IF NOT EXISTS idx_runs_layout ON runs(layout);`
	idxRunSectionsRun = `CREATE INDEX IF NOT EXISTS idx_run_sections_run ON run_sections(run_id);`
)

// schemaDDL lists all schema statements in dependency order.
var schemaDDL = []string{
	createRuns,
	createRunSections,
	idxRunsLayout,
	idxRunSectionsRun,
}
