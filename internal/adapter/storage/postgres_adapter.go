package storage

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

const postgresSnapshotsDDL = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		store_name TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		payload JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`

type PostgresAdapter struct {
	sqlStore
}

func NewPostgresAdapter(db *sql.DB, storeName string) *PostgresAdapter {
	return &PostgresAdapter{sqlStore{
		db:        db,
		storeName: storeNameOrDefault(storeName),
		ddl:       postgresSnapshotsDDL,
		selectSQL: `SELECT payload FROM inventory_snapshots WHERE store_name = $1`,
		upsertSQL: `
			INSERT INTO inventory_snapshots (store_name, version, payload, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (store_name) DO UPDATE SET
				version = EXCLUDED.version, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		asText: true,
	}}
}
