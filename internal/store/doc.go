// Package store provides SQLite-backed durable storage for reservation records.
//
// A Store owns a single connection to one database file and mediates all
// access to the reservations table:
//   - Open: create or open the file and ensure the table exists
//   - AddReservation: insert one row, auto-committed before returning
//   - Reservations: read every row, ordered by id
//   - Close: release the connection; the store cannot be reopened
//
// # Errors
//
// Every failure is a *Error carrying one of three codes, matched with
// errors.Is against ErrStorageUnavailable, ErrConstraintViolation or
// ErrStoreClosed. Nothing is retried.
//
// # Required Fields
//
// customerName, phone, email and date are NOT NULL columns. A zero value
// ("" or 0) for one of them is bound as NULL, so the engine rejects the
// insert and no row is written. No other validation is performed.
//
// # Database Configuration
//
//   - WAL mode
//   - synchronous=FULL: each committed insert survives power loss
//   - busy_timeout=5000: wait for locks held by other processes
//   - one open connection for the lifetime of the store
package store
