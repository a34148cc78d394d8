package port

import "github.com/rl1809/inventory-tracker/internal/core/domain"

type StateObserver interface {
	// StateCommitted is called after every successful mutation, in commit order.
	// Implementations must not block and must not modify the snapshot.
	StateCommitted(state domain.State)
}
