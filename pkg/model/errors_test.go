package model

import "testing"

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "run 'run_123' not found"}
	want := "NOT_FOUND: run 'run_123' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("run", "run_abc")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "run 'run_abc' not found" {
		t.Errorf("Message = %q, want %q", err.Message, "run 'run_abc' not found")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Invalid job set",
		FieldError{Field: "deadline", Path: "jobs[0].deadline", Message: "must be >= 1"},
		FieldError{Field: "id", Path: "jobs[3].id", Message: "duplicate id \"a\""},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(err.Details))
	}
}

func TestNewInternalError(t *testing.T) {
	err := NewInternalError("store unavailable")
	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
}

func TestFieldError_String(t *testing.T) {
	tests := []struct {
		in   FieldError
		want string
	}{
		{FieldError{Path: "jobs[1].deadline", Message: "must be >= 1"}, "jobs[1].deadline: must be >= 1"},
		{FieldError{Message: "no jobs"}, "no jobs"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
