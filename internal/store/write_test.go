package store

import (
	"context"
	"errors"
	"testing"
)

func TestAddReservation_Basic(t *testing.T) {
	s := createTestStore(t)

	in := NewReservation{
		CustomerName: "Test Person",
		Phone:        Int64(1234567890),
		Email:        "test@test.com",
		Date:         "10-01-2025",
		StartTime:    Int64(1500),
		PartySize:    Int64(4),
		Notes:        "Anniversary Party",
	}

	id, err := s.AddReservation(context.Background(), in)
	if err != nil {
		t.Fatalf("AddReservation() failed: %v", err)
	}
	if id != 1 {
		t.Errorf("id = %d, want 1", id)
	}

	// Verify stored correctly
	var (
		name, email, date, notes string
		phone, start, party      int64
	)
	err = s.db.QueryRow(`
		SELECT customerName, phone, email, date, startTime, partySize, notes
		FROM reservations
		WHERE id = ?
	`, id).Scan(&name, &phone, &email, &date, &start, &party, &notes)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if name != in.CustomerName {
		t.Errorf("customerName = %q, want %q", name, in.CustomerName)
	}
	if phone != *in.Phone {
		t.Errorf("phone = %d, want %d", phone, *in.Phone)
	}
	if email != in.Email {
		t.Errorf("email = %q, want %q", email, in.Email)
	}
	if date != in.Date {
		t.Errorf("date = %q, want %q", date, in.Date)
	}
	if start != 1500 || party != 4 {
		t.Errorf("startTime, partySize = %d, %d, want 1500, 4", start, party)
	}
	if notes != in.Notes {
		t.Errorf("notes = %q, want %q", notes, in.Notes)
	}
}

func TestAddReservation_OptionalDefaults(t *testing.T) {
	s := createTestStore(t)

	id, err := s.AddReservation(context.Background(), createTestReservation("Alice"))
	if err != nil {
		t.Fatalf("AddReservation() failed: %v", err)
	}

	var startNull, partyNull, notesNull bool
	var notes string
	err = s.db.QueryRow(`
		SELECT startTime IS NULL, partySize IS NULL, notes IS NULL, COALESCE(notes, '')
		FROM reservations WHERE id = ?
	`, id).Scan(&startNull, &partyNull, &notesNull, &notes)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if !startNull {
		t.Error("startTime should be NULL when omitted")
	}
	if !partyNull {
		t.Error("partySize should be NULL when omitted")
	}
	if notesNull || notes != "" {
		t.Errorf("notes = %q (null=%v), want empty text", notes, notesNull)
	}
}

func TestAddReservation_AssignsIncreasingIDs(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := s.AddReservation(ctx, createTestReservation("Guest"))
		if err != nil {
			t.Fatalf("AddReservation() %d failed: %v", i, err)
		}
		if id <= last {
			t.Errorf("id %d not greater than previous %d", id, last)
		}
		last = id
	}
}

func TestAddReservation_IDsNotReused(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.AddReservation(ctx, createTestReservation("Alice"))
	if err != nil {
		t.Fatalf("AddReservation() failed: %v", err)
	}

	// Rows are only removed externally; AUTOINCREMENT must not hand the id out again.
	if _, err := s.db.Exec("DELETE FROM reservations WHERE id = ?", first); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	second, err := s.AddReservation(ctx, createTestReservation("Bob"))
	if err != nil {
		t.Fatalf("AddReservation() failed: %v", err)
	}
	if second == first {
		t.Errorf("id %d reused after external delete", second)
	}
}

func TestAddReservation_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewReservation)
	}{
		{"missing customerName", func(r *NewReservation) { r.CustomerName = "" }},
		{"missing phone", func(r *NewReservation) { r.Phone = nil }},
		{"missing email", func(r *NewReservation) { r.Email = "" }},
		{"missing date", func(r *NewReservation) { r.Date = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)
			ctx := context.Background()

			in := createTestReservation("Alice")
			tt.mutate(&in)

			_, err := s.AddReservation(ctx, in)
			if !errors.Is(err, ErrConstraintViolation) {
				t.Fatalf("AddReservation() = %v, want ErrConstraintViolation", err)
			}

			got, err := s.Reservations(ctx)
			if err != nil {
				t.Fatalf("Reservations() failed: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("rejected insert left %d rows", len(got))
			}
		})
	}
}

func TestAddReservation_PhoneZeroRoundTrips(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	in := createTestReservation("Zero Phone")
	in.Phone = Int64(0)

	if _, err := s.AddReservation(ctx, in); err != nil {
		t.Fatalf("AddReservation() with phone 0 failed: %v", err)
	}

	got, err := s.Reservations(ctx)
	if err != nil {
		t.Fatalf("Reservations() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Phone != 0 {
		t.Errorf("phone = %d, want 0", got[0].Phone)
	}
	assertMatches(t, got[0], in)
}

func TestAddReservation_NoValidation(t *testing.T) {
	s := createTestStore(t)

	// Accepted as-is: malformed email, negative party size, nonsense date.
	in := NewReservation{
		CustomerName: "Odd Guest",
		Phone:        Int64(-1),
		Email:        "not-an-email",
		Date:         "someday",
		StartTime:    Int64(9999),
		PartySize:    Int64(-3),
	}

	if _, err := s.AddReservation(context.Background(), in); err != nil {
		t.Fatalf("AddReservation() rejected unvalidated input: %v", err)
	}
}
