package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "not null constraint",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			want: CodeConstraintViolation,
		},
		{
			name: "wrapped constraint",
			err:  fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrConstraint}),
			want: CodeConstraintViolation,
		},
		{
			name: "disk full",
			err:  sqlite3.Error{Code: sqlite3.ErrFull},
			want: CodeStorageUnavailable,
		},
		{
			name: "cannot open",
			err:  sqlite3.Error{Code: sqlite3.ErrCantOpen},
			want: CodeStorageUnavailable,
		},
		{
			name: "non driver error",
			err:  errors.New("boom"),
			want: CodeStorageUnavailable,
		},
		{
			name: "already classified",
			err:  closedError("add reservation"),
			want: CodeStoreClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if code := CodeOf(got); code != tt.want {
				t.Errorf("CodeOf(classify()) = %q, want %q", code, tt.want)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	if err := classify("op", nil); err != nil {
		t.Errorf("classify(nil) = %v, want nil", err)
	}
}

func TestError_IsMatchesOnlyItsSentinel(t *testing.T) {
	err := fmt.Errorf("cli: %w", &Error{Code: CodeConstraintViolation, Op: "add reservation"})

	if !errors.Is(err, ErrConstraintViolation) {
		t.Error("errors.Is(err, ErrConstraintViolation) = false")
	}
	if errors.Is(err, ErrStorageUnavailable) {
		t.Error("errors.Is(err, ErrStorageUnavailable) = true")
	}
	if errors.Is(err, ErrStoreClosed) {
		t.Error("errors.Is(err, ErrStoreClosed) = true")
	}
}

func TestError_Message(t *testing.T) {
	withCause := &Error{Code: CodeStorageUnavailable, Op: "open", Err: errors.New("disk I/O error")}
	if got, want := withCause.Error(), "STORAGE_UNAVAILABLE: open: disk I/O error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := closedError("close")
	if got, want := bare.Error(), "STORE_CLOSED: close"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodeOf_NonStoreError(t *testing.T) {
	if code := CodeOf(errors.New("other")); code != "" {
		t.Errorf("CodeOf() = %q, want empty", code)
	}
}
