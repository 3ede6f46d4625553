package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/tablebook/internal/store"
)

// csvHeader matches the column names of the reservations table.
var csvHeader = []string{"id", "customerName", "phone", "email", "date", "startTime", "partySize", "notes"}

// Reservations writes rs in the configured format.
func (f *OutputFormatter) Reservations(rs []store.Reservation) error {
	switch f.Format {
	case "json":
		return f.Success(map[string][]store.Reservation{"reservations": rs}, "")
	case "csv":
		return writeCSV(f.Writer, rs)
	default:
		return writeTuples(f.Writer, rs)
	}
}

// writeTuples prints one row per line as a tuple:
//
//	(1, 'Test Person', 1234567890, 'test@test.com', '10-01-2025', 1500, 4, 'Anniversary Party')
//
// Absent values print as None.
func writeTuples(w io.Writer, rs []store.Reservation) error {
	if len(rs) == 0 {
		_, err := fmt.Fprintln(w, "No reservations yet.")
		return err
	}
	for _, r := range rs {
		_, err := fmt.Fprintf(w, "(%d, %s, %d, %s, %s, %s, %s, %s)\n",
			r.ID,
			quote(r.CustomerName),
			r.Phone,
			quote(r.Email),
			quote(r.Date),
			optional(r.StartTime, "None"),
			optional(r.PartySize, "None"),
			quote(r.Notes),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, rs []store.Reservation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rs {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.CustomerName,
			strconv.FormatInt(r.Phone, 10),
			r.Email,
			r.Date,
			optional(r.StartTime, ""),
			optional(r.PartySize, ""),
			r.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// quote single-quotes s, switching to double quotes when s holds a single
// quote and no double quote. Control characters are escaped so every
// reservation stays on one line.
func quote(s string) string {
	delim := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		delim = '"'
	}

	var b strings.Builder
	b.WriteRune(delim)
	for _, r := range s {
		switch {
		case r == delim || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(delim)
	return b.String()
}

func optional(p *int64, absent string) string {
	if p == nil {
		return absent
	}
	return strconv.FormatInt(*p, 10)
}
