package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/tablebook/internal/store"
)

// SeedFile is the YAML document accepted by the import command.
//
//	reservations:
//	  - customerName: Test Person
//	    phone: 1234567890
//	    email: test@test.com
//	    date: 10-01-2025
//	    startTime: 1500
//	    partySize: 4
//	    notes: Anniversary Party
type SeedFile struct {
	Reservations []store.NewReservation `yaml:"reservations"`
}

// LoadSeed reads and parses a seed file.
// Unknown fields are rejected; missing required reservation fields are not,
// since the database enforces those on insert.
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &seed, nil
}
