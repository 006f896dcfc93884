package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New(CodeEnvelopeNotFound, "envelope not found", http.StatusNotFound),
			want: "ENVELOPE_NOT_FOUND: envelope not found",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("db error"), CodeStorageFailed, "storage failure", http.StatusInternalServerError),
			want: "STORAGE_FAILED: storage failure: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg", 500)

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := ErrSignerNotFound()
	wrapped := fmt.Errorf("wrapped: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != CodeSignerNotFound {
		t.Errorf("Code = %q, want %q", got.Code, CodeSignerNotFound)
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"NotFound", NotFound("C", "m"), http.StatusNotFound},
		{"BadRequest", BadRequest("C", "m"), http.StatusBadRequest},
		{"Unauthorized", Unauthorized("C", "m"), http.StatusUnauthorized},
		{"Forbidden", Forbidden("C", "m"), http.StatusForbidden},
		{"Conflict", Conflict("C", "m"), http.StatusConflict},
		{"Internal", Internal("C", "m"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", tt.err.HTTPStatus, tt.wantStatus)
			}
		})
	}
}

func TestSignTokenInvalidIsOpaque(t *testing.T) {
	err := ErrSignTokenInvalid()
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("HTTPStatus = %d, want 403", err.HTTPStatus)
	}
	// The message must not reveal which verification step failed.
	if err.Message != "signing link is not valid" {
		t.Errorf("unexpected message %q", err.Message)
	}
}
