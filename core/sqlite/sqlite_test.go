package sqlite

import (
	"path/filepath"
	"testing"
)

func TestDriverInfo(t *testing.T) {
	info := GetInfo()

	if info.DriverName == "" {
		t.Error("DriverName should not be empty")
	}
	if info.Package == "" {
		t.Error("Package should not be empty")
	}
	if info.DriverName != DriverName() {
		t.Errorf("DriverName mismatch: info=%s, func=%s", info.DriverName, DriverName())
	}
	if info.DriverType != DriverType() {
		t.Errorf("DriverType mismatch: info=%s, func=%s", info.DriverType, DriverType())
	}
	if info.IsCGO != IsCGO() {
		t.Errorf("IsCGO mismatch: info=%v, func=%v", info.IsCGO, IsCGO())
	}
}

func TestOpenFile(t *testing.T) {
	db, err := OpenFile(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE test (id INTEGER PRIMARY KEY, value TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO test (value) VALUES (?)`, "hello"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM test WHERE id = 1`).Scan(&value); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if value != "hello" {
		t.Errorf("expected 'hello', got '%s'", value)
	}
}

func TestOpenFileEnforcesForeignKeys(t *testing.T) {
	db, err := OpenFile(filepath.Join(t.TempDir(), "fk.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var on int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&on); err != nil {
		t.Fatalf("failed to read pragma: %v", err)
	}
	if on != 1 {
		t.Errorf("expected foreign_keys=1, got %d", on)
	}
}

func TestOpenFileMissingDirectory(t *testing.T) {
	if _, err := OpenFile(filepath.Join(t.TempDir(), "no", "such", "dir", "x.db")); err == nil {
		t.Error("expected error for missing directory")
	}
}
