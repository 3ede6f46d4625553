package store

import (
	"context"
	"fmt"
)

const insertReservationSQL = `
	INSERT INTO reservations
	(customerName, phone, email, date, startTime, partySize, notes)
	VALUES (:customerName, :phone, :email, :date, :startTime, :partySize, :notes)
`

// AddReservation inserts a reservation and returns the id the engine assigned.
//
// The insert is a single auto-committed statement: on success the row is
// durable and visible to the next Reservations call; on failure no row is
// written. A zero required field fails with ErrConstraintViolation.
func (s *Store) AddReservation(ctx context.Context, r NewReservation) (int64, error) {
	if s.closed {
		return 0, closedError("add reservation")
	}

	result, err := s.db.NamedExecContext(ctx, insertReservationSQL, newRow(r))
	if err != nil {
		return 0, classify("add reservation", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, classify("add reservation", fmt.Errorf("last insert id: %w", err))
	}

	s.log.Debug("reservation added", "id", id)
	return id, nil
}
