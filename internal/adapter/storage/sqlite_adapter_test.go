package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func TestSQLiteAdapter_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "inventory.db")

	adapter, err := OpenSQLite(ctx, path, "")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}

	state, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state for a fresh database")
	}

	first := sampleState()
	if err := adapter.Save(ctx, first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second := sampleState()
	second.Items = second.Items[:1]
	if err := adapter.Save(ctx, second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	adapter.DB().Close()

	// reopen to prove the snapshot survives a restart
	reopened, err := OpenSQLite(ctx, path, "")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.DB().Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if !reflect.DeepEqual(second, *got) {
		t.Errorf("expected latest snapshot, got %+v", *got)
	}

	var rows int
	reopened.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM inventory_snapshots`).Scan(&rows)
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
}

func TestSQLiteAdapter_StoreNamesAreIsolated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "inventory.db")

	a, err := OpenSQLite(ctx, path, "site-a")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer a.DB().Close()
	b := NewSQLiteAdapter(a.DB(), "site-b")

	if err := a.Save(ctx, sampleState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := b.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != nil {
		t.Error("expected site-b to be empty")
	}
}

func TestSQLiteAdapter_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	a, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "inventory.db"), "")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer a.DB().Close()

	_, err = a.DB().ExecContext(ctx, `
		INSERT INTO inventory_snapshots (store_name, version, payload, updated_at)
		VALUES (?, 1, ?, CURRENT_TIMESTAMP)`, DefaultStoreName, []byte(`{"state":`))
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, err := a.Load(ctx); !errors.Is(err, domain.ErrCorruptSnapshot) {
		t.Errorf("expected ErrCorruptSnapshot, got %v", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, closeFn, err := Open(context.Background(), Options{Driver: "etcd"})
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
	if closeFn() != nil {
		t.Error("close of failed open should be a no-op")
	}
}

func TestOpen_Memory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), Options{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*MemoryAdapter); !ok {
		t.Errorf("expected *MemoryAdapter, got %T", repo)
	}
}
