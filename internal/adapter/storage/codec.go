package storage

import (
	"encoding/json"
	"fmt"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
)

// SnapshotVersion is written with every snapshot. Version 0 is the
// unversioned layout of the first release; it has the same shape.
const SnapshotVersion = 1

// DefaultStoreName is the fixed key the snapshot is stored under.
const DefaultStoreName = "inventory-store"

type envelope struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

func EncodeSnapshot(state domain.State) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return json.Marshal(envelope{State: raw, Version: SnapshotVersion})
}

// DecodeSnapshot parses a stored envelope. Any decoding problem is reported
// as domain.ErrCorruptSnapshot.
func DecodeSnapshot(data []byte) (*domain.State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	if env.Version < 0 || env.Version > SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", domain.ErrCorruptSnapshot, env.Version)
	}
	if len(env.State) == 0 || string(env.State) == "null" {
		return nil, fmt.Errorf("%w: missing state", domain.ErrCorruptSnapshot)
	}

	var state domain.State
	if err := json.Unmarshal(env.State, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	return &state, nil
}
