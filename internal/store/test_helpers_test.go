package store

import (
	"path/filepath"
	"testing"
)

// createTestStore opens a fresh store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() {
		if !s.closed {
			s.Close()
		}
	})
	return s
}

// createTestReservation returns a reservation with every required field set.
func createTestReservation(name string) NewReservation {
	return NewReservation{
		CustomerName: name,
		Phone:        Int64(5551234567),
		Email:        "guest@example.com",
		Date:         "10-01-2025",
	}
}
