package utils

import (
	"testing"
)

func TestGenerateMeetingIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateMeetingID()
		if len(id) != 10 {
			t.Fatalf("meeting ID %q has length %d, want 10", id, len(id))
		}
		for _, c := range id {
			if c < '0' || c > '9' {
				t.Fatalf("meeting ID %q contains non-digit %q", id, c)
			}
		}
	}
}

func TestGenerateMeetingIDVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[GenerateMeetingID()] = true
	}
	// Collisions are theoretically possible but 50 identical draws are not
	if len(seen) < 2 {
		t.Fatal("GenerateMeetingID returned the same ID repeatedly")
	}
}
