package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/port"
)

const snapshotSaveTimeout = 5 * time.Second

// SnapshotWriter persists committed states from a single background
// goroutine. Only the latest pending snapshot is kept, so a slow store never
// holds up the commit path. Save failures are logged and dropped.
type SnapshotWriter struct {
	repo   port.SnapshotRepository
	logger zerolog.Logger

	mu      sync.Mutex
	pending *domain.State
	closed  bool
	wake    chan struct{}
	done    chan struct{}
}

func NewSnapshotWriter(repo port.SnapshotRepository, logger zerolog.Logger) *SnapshotWriter {
	w := &SnapshotWriter{
		repo:   repo,
		logger: logger.With().Str("component", "snapshot_writer").Logger(),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *SnapshotWriter) StateCommitted(state domain.State) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Warn().Msg("snapshot dropped, writer closed")
		return
	}
	w.pending = &state

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Close writes the last pending snapshot and stops the writer.
func (w *SnapshotWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.wake)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *SnapshotWriter) loop() {
	defer close(w.done)
	for range w.wake {
		w.flush()
	}
	w.flush()
}

func (w *SnapshotWriter) flush() {
	w.mu.Lock()
	state := w.pending
	w.pending = nil
	w.mu.Unlock()

	if state == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), snapshotSaveTimeout)
	defer cancel()

	if err := w.repo.Save(ctx, *state); err != nil {
		w.logger.Error().Err(err).Msg("failed to save snapshot")
		return
	}
	w.logger.Debug().
		Int("items", len(state.Items)).
		Int("transactions", len(state.Transactions)).
		Msg("snapshot saved")
}

// LoadState reads the stored state. A missing or unreadable snapshot yields
// the seed dataset; errors reaching the store are returned.
func LoadState(ctx context.Context, repo port.SnapshotRepository, logger zerolog.Logger) (domain.State, error) {
	state, err := repo.Load(ctx)
	if errors.Is(err, domain.ErrCorruptSnapshot) {
		logger.Warn().Err(err).Msg("stored snapshot unreadable, starting from seed data")
		return domain.SeedState(), nil
	}
	if err != nil {
		return domain.State{}, err
	}
	if state == nil {
		logger.Info().Msg("no stored snapshot, starting from seed data")
		return domain.SeedState(), nil
	}

	state.Normalize()
	return *state, nil
}
