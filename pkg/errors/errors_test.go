package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCoordinate, "test message: %s", "value")

	if err.Code != ErrCodeInvalidCoordinate {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCoordinate)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_COORDINATE: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeTransport, cause, "failed to send request")

	if err.Code != ErrCodeTransport {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeTransport)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidCoordinate, "test"),
			code:     ErrCodeInvalidCoordinate,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidCoordinate, "test"),
			code:     ErrCodeDecode,
			expected: false,
		},
		{
			name:     "wrapped structured error",
			err:      fmt.Errorf("outer: %w", New(ErrCodeDecode, "inner")),
			code:     ErrCodeDecode,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeDecode,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeHTTPStatus, "test")); got != ErrCodeHTTPStatus {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeHTTPStatus)
	}
	if got := GetCode(errors.New("plain")); got != Code("") {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidShape, "unknown shape 'npm'")
	if got := UserMessage(err); got != "unknown shape 'npm'" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestStatus(t *testing.T) {
	err := Status(503)

	if err.Code != ErrCodeHTTPStatus {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeHTTPStatus)
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatal("expected error chain to contain *StatusError")
	}
	if se.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", se.StatusCode)
	}
	if se.Error() != "unexpected status 503" {
		t.Errorf("Error() = %q", se.Error())
	}
	if se.Code() != ErrCodeHTTPStatus {
		t.Errorf("Code() = %v, want %v", se.Code(), ErrCodeHTTPStatus)
	}
}
