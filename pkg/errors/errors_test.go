package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := NewAppError(ErrCodeInvalidInput, "test error", 400)
	expected := "INVALID_INPUT: test error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestAppError_WithCause(t *testing.T) {
	originalErr := errors.New("original error")
	err := WrapError(originalErr, ErrCodeInternal, "wrapped error", 500)

	if err.Cause != originalErr {
		t.Errorf("Cause = %v, want %v", err.Cause, originalErr)
	}

	if !strings.Contains(err.Error(), "original error") {
		t.Errorf("Error() should contain cause, got: %v", err.Error())
	}

	if !errors.Is(err, originalErr) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "username", Issue: "username is required"},
		{Field: "email", Issue: "invalid email format"},
	})

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}
	if err.HTTPStatus != 400 {
		t.Errorf("HTTPStatus = %v, want 400", err.HTTPStatus)
	}
	if len(err.Fields) != 2 {
		t.Errorf("Fields = %d entries, want 2", len(err.Fields))
	}
}

func TestNewConflictError_RespondsBadRequest(t *testing.T) {
	err := NewConflictError("Connection request already exists.")
	if err.Code != ErrCodeConflict {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeConflict)
	}
	if err.HTTPStatus != 400 {
		t.Errorf("HTTPStatus = %v, want 400", err.HTTPStatus)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Post not found.")
	if err.Code != ErrCodeNotFound {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNotFound)
	}
	if err.HTTPStatus != 404 {
		t.Errorf("HTTPStatus = %v, want 404", err.HTTPStatus)
	}
}

func TestGetAppError(t *testing.T) {
	appErr := NewForbiddenError("You are not authorized to delete this post.")
	wrapped := errors.Join(errors.New("outer"), appErr)

	got := GetAppError(wrapped)
	if got == nil || got.Code != ErrCodeForbidden {
		t.Errorf("GetAppError = %v, want forbidden error", got)
	}

	if GetAppError(errors.New("plain")) != nil {
		t.Error("GetAppError on plain error should be nil")
	}
	if GetAppError(nil) != nil {
		t.Error("GetAppError(nil) should be nil")
	}
}
