package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

func TestMemoryAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	state, err := adapter.Load(ctx)
	if err != nil || state != nil {
		t.Fatalf("expected empty store, got %v, %v", state, err)
	}

	want := sampleState()
	if err := adapter.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := adapter.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(want, *got) {
		t.Errorf("loaded state differs from saved state")
	}

	adapter.SetRaw([]byte("garbage"))
	if _, err := adapter.Load(ctx); !errors.Is(err, domain.ErrCorruptSnapshot) {
		t.Errorf("expected ErrCorruptSnapshot, got %v", err)
	}
}
