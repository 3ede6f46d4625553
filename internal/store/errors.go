package store

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrorCode categorizes store errors.
type ErrorCode string

const (
	// CodeStorageUnavailable indicates the backing file or connection failed.
	CodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"

	// CodeConstraintViolation indicates the engine rejected a write,
	// typically a NOT NULL column bound to NULL.
	CodeConstraintViolation ErrorCode = "CONSTRAINT_VIOLATION"

	// CodeStoreClosed indicates an operation on a closed store.
	CodeStoreClosed ErrorCode = "STORE_CLOSED"
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its code.
var (
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStoreClosed         = errors.New("store closed")
)

// Error is returned by every Store operation that fails.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the failed operation (e.g. "add reservation").
	Op string

	// Err is the underlying driver error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Op)
}

// Unwrap returns the underlying driver error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Code.
func (e *Error) Is(target error) bool {
	return target == e.Code.sentinel()
}

func (c ErrorCode) sentinel() error {
	switch c {
	case CodeStorageUnavailable:
		return ErrStorageUnavailable
	case CodeConstraintViolation:
		return ErrConstraintViolation
	case CodeStoreClosed:
		return ErrStoreClosed
	}
	return nil
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// classify wraps a driver error with the store code it maps to.
// SQLITE_CONSTRAINT (any extended code) is a constraint violation;
// everything else is treated as the storage being unavailable.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return &Error{Code: CodeConstraintViolation, Op: op, Err: err}
	}
	return &Error{Code: CodeStorageUnavailable, Op: op, Err: err}
}

func closedError(op string) error {
	return &Error{Code: CodeStoreClosed, Op: op}
}
