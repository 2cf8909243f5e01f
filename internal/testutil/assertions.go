package testutil

import (
	"errors"
	"testing"

	apperrors "moneytracker/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	appErr := requireAppError(t, err, expectedCode)
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertAppErrorIs checks that err matches sentinel under errors.Is, carries
// the sentinel's HTTP status and has a message a caller can show. Wrapped and
// re-messaged variants of the sentinel match.
func AssertAppErrorIs(t *testing.T, err error, sentinel *apperrors.AppError) {
	t.Helper()

	appErr := requireAppError(t, err, sentinel.Code)
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected %s, got %s (message: %s)", sentinel.Code, appErr.Code, appErr.Message)
	}
	if appErr.StatusCode != sentinel.StatusCode {
		t.Errorf("expected status %d for %s, got %d", sentinel.StatusCode, sentinel.Code, appErr.StatusCode)
	}
	if appErr.Message == "" {
		t.Errorf("expected a message on %s", appErr.Code)
	}
}

func requireAppError(t *testing.T, err error, want string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", want)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
