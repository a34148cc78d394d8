package idgen

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID_Unique(t *testing.T) {
	gen := NewUUID()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true

		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("id %q is not a uuid: %v", id, err)
		}
	}
}
