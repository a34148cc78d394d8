package port

import (
	"context"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

type SnapshotRepository interface {
	// Load returns the last saved state, or nil when nothing has been saved yet
	Load(ctx context.Context) (*domain.State, error)

	// Save replaces the stored state with a full snapshot
	Save(ctx context.Context, state domain.State) error
}
