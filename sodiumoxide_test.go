package sodiumoxide

import "testing"

func TestInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Idempotent: calling again must succeed with the same result.
	if err := Init(); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
}
