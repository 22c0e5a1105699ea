// Run record persistence: dehydration to the runs and run_sections
// tables on save, hydration back to *types.RunRecord on read.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

// SaveRun persists a run record. If RunID is empty, a UUID v7 is
// generated; if CreatedAt is zero, the current time is used. Returns the
// actual run ID used.
func (s *Store) SaveRun(rec *types.RunRecord) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return "", types.ErrStoreDetached
	}

	if rec.RunID == "" {
		rec.RunID = generateUUID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, created_at, atom_count, seed, layout) VALUES (?, ?, ?, ?, ?)",
		rec.RunID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.AtomCount,
		int64(rec.Seed),
		rec.Layout,
	)
	if err != nil {
		return "", fmt.Errorf("insert run %s: %w", rec.RunID, err)
	}

	for ordinal, sec := range rec.Sections {
		ranges, err := json.Marshal(sec.Columns)
		if err != nil {
			return "", fmt.Errorf("marshal ranges for %s: %w", sec.Name, err)
		}
		_, err = tx.Exec(
			"INSERT INTO run_sections (run_id, ordinal, section, row_count, col_count, type_count, column_ranges) VALUES (?, ?, ?, ?, ?, ?, ?)",
			rec.RunID, ordinal, sec.Name, sec.Rows, sec.Cols, sec.TypeCount, string(ranges),
		)
		if err != nil {
			return "", fmt.Errorf("insert section %s: %w", sec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run %s: %w", rec.RunID, err)
	}
	return rec.RunID, nil
}

// GetRun retrieves a run record by ID, sections included.
// Returns ErrInvalidID if id is empty and ErrNotFound if no run exists.
func (s *Store) GetRun(id string) (*types.RunRecord, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	row := s.db.QueryRow(
		"SELECT run_id, created_at, atom_count, seed, layout FROM runs WHERE run_id = ?",
		id,
	)
	rec, err := hydrateRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting run %s: %w", id, err)
	}
	if err := s.hydrateSections(rec); err != nil {
		return nil, fmt.Errorf("hydrating sections for run %s: %w", id, err)
	}
	return rec, nil
}

// ListRuns returns all runs matching the filter, newest first, sections
// included. Recognized filter keys: "layout" (string), "atom_count"
// (int), "seeded" (bool). A filter value of the wrong type fails with
// ErrTypeMismatch; an empty filter returns every run.
func (s *Store) ListRuns(filter map[string]any) ([]*types.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.attached {
		return nil, types.ErrStoreDetached
	}

	query := "SELECT run_id, created_at, atom_count, seed, layout FROM runs"
	var (
		clauses []string
		args    []any
	)
	for key, value := range filter {
		switch key {
		case "layout":
			v, ok := value.(string)
			if !ok {
				return nil, types.ErrTypeMismatch
			}
			clauses = append(clauses, "layout = ?")
			args = append(args, v)
		case "atom_count":
			v, ok := value.(int)
			if !ok {
				return nil, types.ErrTypeMismatch
			}
			clauses = append(clauses, "atom_count = ?")
			args = append(args, v)
		case "seeded":
			v, ok := value.(bool)
			if !ok {
				return nil, types.ErrTypeMismatch
			}
			if v {
				clauses = append(clauses, "seed != 0")
			} else {
				clauses = append(clauses, "seed = 0")
			}
		default:
			return nil, fmt.Errorf("unknown filter key %q", key)
		}
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var records []*types.RunRecord
	for rows.Next() {
		rec, err := hydrateRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	for _, rec := range records {
		if err := s.hydrateSections(rec); err != nil {
			return nil, fmt.Errorf("hydrating sections for run %s: %w", rec.RunID, err)
		}
	}
	return records, nil
}

// DeleteRun removes a run and its sections.
// Returns ErrInvalidID if id is empty and ErrNotFound if no run exists.
func (s *Store) DeleteRun(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete run: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM run_sections WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("delete sections for run %s: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE run_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}

	return tx.Commit()
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateRun scans one runs row into a RunRecord without its sections.
func hydrateRun(row scanner) (*types.RunRecord, error) {
	var (
		rec       types.RunRecord
		createdAt string
		seed      int64
	)
	if err := row.Scan(&rec.RunID, &createdAt, &rec.AtomCount, &seed, &rec.Layout); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	rec.CreatedAt = ts
	rec.Seed = uint64(seed)
	return &rec, nil
}

// hydrateSections loads a run's section summaries in dataset order.
func (s *Store) hydrateSections(rec *types.RunRecord) error {
	rows, err := s.db.Query(
		"SELECT section, row_count, col_count, type_count, column_ranges FROM run_sections WHERE run_id = ? ORDER BY ordinal",
		rec.RunID,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sec    types.SectionSummary
			ranges string
		)
		if err := rows.Scan(&sec.Name, &sec.Rows, &sec.Cols, &sec.TypeCount, &ranges); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(ranges), &sec.Columns); err != nil {
			return fmt.Errorf("unmarshal ranges for %s: %w", sec.Name, err)
		}
		rec.Sections = append(rec.Sections, sec)
	}
	return rows.Err()
}
