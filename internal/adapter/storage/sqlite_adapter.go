package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSnapshotsDDL = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		store_name TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		payload BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`

// SQLiteAdapter is the default local store: a single file next to the binary
// unless configured otherwise.
type SQLiteAdapter struct {
	sqlStore
	path string
}

// OpenSQLite opens (creating if needed) the database file and its table.
func OpenSQLite(ctx context.Context, path, storeName string) (*SQLiteAdapter, error) {
	if path == "" {
		path = "inventory.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	a := NewSQLiteAdapter(db, storeName)
	a.path = path
	if err := a.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func NewSQLiteAdapter(db *sql.DB, storeName string) *SQLiteAdapter {
	return &SQLiteAdapter{sqlStore: sqlStore{
		db:        db,
		storeName: storeNameOrDefault(storeName),
		ddl:       sqliteSnapshotsDDL,
		selectSQL: `SELECT payload FROM inventory_snapshots WHERE store_name = ?`,
		upsertSQL: `
			INSERT INTO inventory_snapshots (store_name, version, payload, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(store_name) DO UPDATE SET
				version = excluded.version, payload = excluded.payload, updated_at = excluded.updated_at`,
	}}
}

func (a *SQLiteAdapter) Path() string { return a.path }
