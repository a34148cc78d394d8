package storage

import (
	"context"
	"sync"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// MemoryAdapter keeps the encoded snapshot in process memory.
type MemoryAdapter struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{}
}

func (m *MemoryAdapter) Load(ctx context.Context) (*domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, nil
	}
	return DecodeSnapshot(m.data)
}

func (m *MemoryAdapter) Save(ctx context.Context, state domain.State) error {
	data, err := EncodeSnapshot(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

// SetRaw replaces the stored bytes verbatim.
func (m *MemoryAdapter) SetRaw(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
}
