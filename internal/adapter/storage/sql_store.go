package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// sqlStore keeps one row per store name in the snapshots table. The
// dialect-specific statements are supplied by the MySQL, SQLite and
// Postgres adapters.
type sqlStore struct {
	db        *sql.DB
	storeName string
	ddl       string
	selectSQL string
	upsertSQL string
	asText    bool
}

func (s *sqlStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.ddl); err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

func (s *sqlStore) Load(ctx context.Context) (*domain.State, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, s.selectSQL, s.storeName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return DecodeSnapshot(payload)
}

func (s *sqlStore) Save(ctx context.Context, state domain.State) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}

	var payload any = data
	if s.asText {
		payload = string(data)
	}

	_, err = s.db.ExecContext(ctx, s.upsertSQL, s.storeName, SnapshotVersion, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// DB exposes the underlying sql.DB for test setup.
func (s *sqlStore) DB() *sql.DB { return s.db }

func storeNameOrDefault(name string) string {
	if name == "" {
		return DefaultStoreName
	}
	return name
}
