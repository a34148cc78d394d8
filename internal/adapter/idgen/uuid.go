package idgen

import "github.com/google/uuid"

// UUID generates random (version 4) identifiers.
type UUID struct{}

func NewUUID() UUID { return UUID{} }

func (UUID) NewID() string {
	return uuid.NewString()
}
