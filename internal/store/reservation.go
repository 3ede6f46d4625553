package store

import "database/sql"

// DefaultPath is the backing file used when Open is given an empty path.
const DefaultPath = "prototype_A.db"

// Reservation is a stored booking record.
// ID is assigned by the engine on insert and never changes.
type Reservation struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        int64  `json:"phone"`
	Email        string `json:"email"`
	Date         string `json:"date"`
	StartTime    *int64 `json:"startTime"`
	PartySize    *int64 `json:"partySize"`
	Notes        string `json:"notes"`
}

// NewReservation holds the fields supplied to AddReservation.
//
// CustomerName, Phone, Email and Date are required: an empty name, email or
// date and a nil Phone are written as NULL and rejected by the engine. Any
// Phone value, 0 included, is stored as given. StartTime and PartySize are
// absent when nil. Notes defaults to the empty string.
type NewReservation struct {
	CustomerName string `yaml:"customerName"`
	Phone        *int64 `yaml:"phone"`
	Email        string `yaml:"email"`
	Date         string `yaml:"date"`
	StartTime    *int64 `yaml:"startTime,omitempty"`
	PartySize    *int64 `yaml:"partySize,omitempty"`
	Notes        string `yaml:"notes,omitempty"`
}

// Int64 returns a pointer to v, for the pointer fields of NewReservation.
func Int64(v int64) *int64 {
	return &v
}

// reservationRow is the column mapping used by sqlx for both directions.
type reservationRow struct {
	ID           int64          `db:"id"`
	CustomerName sql.NullString `db:"customerName"`
	Phone        sql.NullInt64  `db:"phone"`
	Email        sql.NullString `db:"email"`
	Date         sql.NullString `db:"date"`
	StartTime    sql.NullInt64  `db:"startTime"`
	PartySize    sql.NullInt64  `db:"partySize"`
	Notes        sql.NullString `db:"notes"`
}

// newRow binds empty required text and a nil phone as NULL so NOT NULL
// applies to them.
func newRow(r NewReservation) reservationRow {
	return reservationRow{
		CustomerName: sql.NullString{String: r.CustomerName, Valid: r.CustomerName != ""},
		Phone:        nullInt(r.Phone),
		Email:        sql.NullString{String: r.Email, Valid: r.Email != ""},
		Date:         sql.NullString{String: r.Date, Valid: r.Date != ""},
		StartTime:    nullInt(r.StartTime),
		PartySize:    nullInt(r.PartySize),
		Notes:        sql.NullString{String: r.Notes, Valid: true},
	}
}

func (r reservationRow) reservation() Reservation {
	return Reservation{
		ID:           r.ID,
		CustomerName: r.CustomerName.String,
		Phone:        r.Phone.Int64,
		Email:        r.Email.String,
		Date:         r.Date.String,
		StartTime:    intPtr(r.StartTime),
		PartySize:    intPtr(r.PartySize),
		Notes:        r.Notes.String,
	}
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return Int64(n.Int64)
}
