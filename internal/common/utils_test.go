package common

import "testing"

func TestGenerateUUID(t *testing.T) {
	id := GenerateUUID()
	if id == "" {
		t.Fatal("GenerateUUID() returned empty string")
	}

	if len(id) != 36 {
		t.Errorf("expected canonical UUID length 36, got %d", len(id))
	}
}

func TestGenerateUUIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateUUID()
		if seen[id] {
			t.Fatalf("GenerateUUID() produced duplicate: %s", id)
		}
		seen[id] = true
	}
}
