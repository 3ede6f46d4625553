package store

import "context"

// Reservations returns every stored reservation ordered by id.
// The result is fully materialized; it is empty (not nil) for an empty table.
func (s *Store) Reservations(ctx context.Context) ([]Reservation, error) {
	if s.closed {
		return nil, closedError("get reservations")
	}

	var rows []reservationRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, customerName, phone, email, date, startTime, partySize, notes
		FROM reservations
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, classify("get reservations", err)
	}

	reservations := make([]Reservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, row.reservation())
	}

	s.log.Debug("reservations read", "count", len(reservations))
	return reservations, nil
}
