package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/port"
)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

// recorder keeps every committed snapshot.
type recorder struct {
	mu     sync.Mutex
	states []domain.State
}

func (r *recorder) StateCommitted(state domain.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.states)
}

func newSeededService(observers ...port.StateObserver) *InventoryService {
	opts := []Option{WithClock(func() time.Time { return fixedNow })}
	for _, o := range observers {
		opts = append(opts, WithObservers(o))
	}
	return NewInventoryService(domain.SeedState(), &seqIDs{}, opts...)
}

// Mock SnapshotRepository
type mockSnapshotRepo struct {
	mu      sync.Mutex
	stored  *domain.State
	saves   int
	loadErr error
	saveErr error
	delay   time.Duration
}

func (m *mockSnapshotRepo) Load(ctx context.Context) (*domain.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.stored == nil {
		return nil, nil
	}
	s := m.stored.Clone()
	return &s, nil
}

func (m *mockSnapshotRepo) Save(ctx context.Context, state domain.State) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	s := state.Clone()
	m.stored = &s
	return nil
}

func (m *mockSnapshotRepo) snapshot() (*domain.State, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stored, m.saves
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
