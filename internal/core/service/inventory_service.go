package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/query"
	"github.com/rl1809/inventory-tracker/internal/port"
)

// DefaultUser is recorded on transactions that do not name a user.
const DefaultUser = "Admin"

// InventoryService owns the inventory state. Every mutation builds the next
// state from a private copy and swaps it in under the write lock, so readers
// only ever see committed states. Committed states are never modified in
// place, which lets observers keep the snapshot they are handed.
type InventoryService struct {
	mu        sync.RWMutex
	state     domain.State
	ids       port.IDGenerator
	now       func() time.Time
	validate  *validator.Validate
	observers []port.StateObserver
}

type Option func(*InventoryService)

func WithClock(now func() time.Time) Option {
	return func(s *InventoryService) { s.now = now }
}

func WithObservers(observers ...port.StateObserver) Option {
	return func(s *InventoryService) { s.observers = append(s.observers, observers...) }
}

func NewInventoryService(initial domain.State, ids port.IDGenerator, opts ...Option) *InventoryService {
	state := initial.Clone()
	state.Normalize()

	s := &InventoryService{
		state:    state,
		ids:      ids,
		now:      time.Now,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Observe registers an observer for subsequent commits.
func (s *InventoryService) Observe(o port.StateObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Snapshot returns a copy of the current state.
func (s *InventoryService) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *InventoryService) LowStockItems() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.LowStockItems(s.state)
}

func (s *InventoryService) FilteredItems() []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.FilteredItems(s.state)
}

func (s *InventoryService) SetSearchTerm(term string) {
	_ = s.update(func(next *domain.State) error {
		next.SearchTerm = term
		return nil
	})
}

func (s *InventoryService) SetDepartmentFilter(departmentID string) {
	_ = s.update(func(next *domain.State) error {
		next.DepartmentFilter = departmentID
		return nil
	})
}

// Refresh re-commits the current state unchanged.
func (s *InventoryService) Refresh() {
	_ = s.update(func(*domain.State) error { return nil })
}

func (s *InventoryService) update(fn func(next *domain.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next

	for _, o := range s.observers {
		o.StateCommitted(s.state)
	}
	return nil
}
