package storage

import (
	"database/sql"
)

const mysqlSnapshotsDDL = `
	CREATE TABLE IF NOT EXISTS inventory_snapshots (
		store_name VARCHAR(191) NOT NULL PRIMARY KEY,
		version INT NOT NULL,
		payload LONGBLOB NOT NULL,
		updated_at DATETIME(6) NOT NULL
	)`

type MySQLAdapter struct {
	sqlStore
}

func NewMySQLAdapter(db *sql.DB, storeName string) *MySQLAdapter {
	return &MySQLAdapter{sqlStore{
		db:        db,
		storeName: storeNameOrDefault(storeName),
		ddl:       mysqlSnapshotsDDL,
		selectSQL: `SELECT payload FROM inventory_snapshots WHERE store_name = ?`,
		upsertSQL: `
			INSERT INTO inventory_snapshots (store_name, version, payload, updated_at)
			VALUES (?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				version = VALUES(version), payload = VALUES(payload), updated_at = VALUES(updated_at)`,
	}}
}
