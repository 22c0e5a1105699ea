// Tests for the SQLite run ledger lifecycle.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/topotab/pkg/types"
)

func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
}

func TestStore_Attach(t *testing.T) {
	s := NewStore()
	config := testConfig(t)

	if err := s.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer s.Detach()

	// Verify database file created
	dbPath := filepath.Join(config.DataDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("%s not created", dbFileName)
	}

	// Verify double attach fails
	if err := s.Attach(config); !errors.Is(err, types.ErrAlreadyAttached) {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestStore_AttachInvalidConfig(t *testing.T) {
	s := NewStore()

	err := s.Attach(types.Config{Backend: "postgres"})
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestStore_Detach(t *testing.T) {
	s := NewStore()
	if err := s.Attach(testConfig(t)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Verify idempotent
	if err := s.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Verify operations fail after detach
	if _, err := s.GetRun("some-id"); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
	if _, err := s.ListRuns(nil); !errors.Is(err, types.ErrStoreDetached) {
		t.Errorf("expected ErrStoreDetached, got %v", err)
	}
}

func TestStore_ReattachKeepsData(t *testing.T) {
	config := testConfig(t)

	s := NewStore()
	if err := s.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	id, err := s.SaveRun(&types.RunRecord{AtomCount: 10, Layout: types.LayoutBox})
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := s.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A second attach against the same data dir must still see the run.
	s2 := NewStore()
	if err := s2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer s2.Detach()

	if _, err := s2.GetRun(id); err != nil {
		t.Errorf("GetRun after reattach failed: %v", err)
	}
}
