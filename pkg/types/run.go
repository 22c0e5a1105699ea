package types

import "time"

// Dataset layouts. A run places its atoms either in a random box or on a
// closed ring.
const (
	LayoutBox  = "box"
	LayoutRing = "ring"
)

// validLayouts is the set of recognized layout values.
var validLayouts = map[string]bool{
	LayoutBox:  true,
	LayoutRing: true,
}

// RunRecord summarizes one generation run for the ledger. The generated
// tables themselves stay in memory; only shapes, category censuses, and
// column ranges are recorded.
type RunRecord struct {
	RunID     string           `json:"run_id"`     // UUID v7, generated on save.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of the run.
	AtomCount int              `json:"atom_count"` // Number of atom rows generated.
	Seed      uint64           `json:"seed"`       // Random seed; 0 means unseeded.
	Layout    string           `json:"layout"`     // One of the Layout constants.
	Sections  []SectionSummary `json:"sections"`   // One entry per generated table.
}

// SectionSummary captures the shape and aggregate statistics of one
// generated table.
type SectionSummary struct {
	Name      string        `json:"name"`
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	TypeCount int           `json:"type_count"` // distinct category codes
	Columns   []ColumnRange `json:"columns"`
}

// ColumnRange holds the minimum and maximum of one column over all rows.
type ColumnRange struct {
	Column string  `json:"column"`
	Min    float32 `json:"min"`
	Max    float32 `json:"max"`
}

// Validate checks that the record is well-formed before it is saved.
// Returns ErrInvalidCount for a negative atom count and ErrInvalidLayout
// for an unrecognized layout.
func (r *RunRecord) Validate() error {
	if r.AtomCount < 0 {
		return ErrInvalidCount
	}
	if !validLayouts[r.Layout] {
		return ErrInvalidLayout
	}
	return nil
}
