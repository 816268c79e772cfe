package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "rule set", ID: "ara/Arabic"},
			wantMsg:  "rule set not found: ara/Arabic",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "cache entry"},
			wantMsg:  "cache entry not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "rule pack", ID: "extra.txt", Err: underlyingErr}
		if got := err.Error(); got != "rule pack not found: extra.txt" {
			t.Errorf("Error() = %q, want %q", got, "rule pack not found: extra.txt")
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     &ValidationError{Field: "format", Message: "must be str or edges"},
			wantMsg: "validation failed for format: must be str or edges",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "empty request"},
			wantMsg: "validation failed: empty request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("expected errors.Is(err, ErrInvalidInput) to be true")
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path and line",
			err:     &ParseError{Format: "rule file", Path: "romrules.txt", Line: 42, Message: "missing ::t field"},
			wantMsg: "failed to parse rule file at romrules.txt:42: missing ::t field",
		},
		{
			name:    "with path only",
			err:     &ParseError{Format: "rule file", Path: "extra.txt", Message: "empty source"},
			wantMsg: "failed to parse rule file at extra.txt: empty source",
		},
		{
			name:    "without path",
			err:     &ParseError{Format: "JSON", Message: "unexpected end"},
			wantMsg: "failed to parse JSON: unexpected end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("expected ParseError to unwrap to ErrInvalidInput")
			}
		})
	}
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := &IOError{Operation: "open", Path: "/data/cache.db", Err: underlying}
	want := "failed to open /data/cache.db: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := &UnsupportedError{Feature: "format", Reason: "lattice output is not implemented"}
	want := "unsupported format: lattice output is not implemented"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected errors.Is(err, ErrUnsupported) to be true")
	}
}

func TestHelpers(t *testing.T) {
	if err := NewNotFound("script", "Xyzz"); err.Resource != "script" || err.ID != "Xyzz" {
		t.Errorf("NewNotFound did not populate fields: %+v", err)
	}
	if err := NewValidation("lcode", "too long"); err.Field != "lcode" {
		t.Errorf("NewValidation did not populate fields: %+v", err)
	}
	if err := NewParseLine("rule file", "romrules.txt", 7, "bad codepoint"); err.Line != 7 {
		t.Errorf("NewParseLine did not populate line: %+v", err)
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	base := errors.New("base failure")
	wrapped := Wrap(base, "loading rules")
	if wrapped == nil {
		t.Fatal("Wrap returned nil for non-nil error")
	}
	if want := "loading rules: base failure"; wrapped.Error() != want {
		t.Errorf("Wrap() = %q, want %q", wrapped.Error(), want)
	}
	if !errors.Is(wrapped, base) {
		t.Errorf("wrapped error should match base via errors.Is")
	}

	wrappedf := Wrapf(base, "resolving %s/%s", "ara", "Arabic")
	if want := "resolving ara/Arabic: base failure"; wrappedf.Error() != want {
		t.Errorf("Wrapf() = %q, want %q", wrappedf.Error(), want)
	}
	if got := Wrapf(nil, "x %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}
