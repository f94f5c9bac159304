package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeOverflow, "fixed sizes %d exceed extent %d", 990, 900)

	if err.Code != ErrCodeOverflow {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeOverflow)
	}

	if err.Message != "fixed sizes 990 exceed extent 900" {
		t.Errorf("Message = %v, want %v", err.Message, "fixed sizes 990 exceed extent 900")
	}

	expected := "LAYOUT_OVERFLOW: fixed sizes 990 exceed extent 900"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidDocument, cause, "decode layout.toml")

	if err.Code != ErrCodeInvalidDocument {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDocument)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_DOCUMENT: decode layout.toml: unexpected EOF"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeState, "test"),
			code:     ErrCodeState,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeState, "test"),
			code:     ErrCodeIndex,
			expected: false,
		},
		{
			name:     "wrapped by fmt",
			err:      fmt.Errorf("resolve: %w", New(ErrCodeOverflow, "inner")),
			code:     ErrCodeOverflow,
			expected: true,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeInvalidDocument, New(ErrCodeInvalidUnit, "inner"), "outer"),
			code:     ErrCodeInvalidDocument,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeStructure, "test"),
			expected: ErrCodeStructure,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "nested Error",
			err:      Wrap(ErrCodeInvalidDocument, New(ErrCodeInvalidUnit, "bad unit \"3x\""), "node header"),
			expected: "node header: bad unit \"3x\"",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsLayout(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeOverflow, "x"), true},
		{New(ErrCodeStructure, "x"), true},
		{New(ErrCodeState, "x"), true},
		{New(ErrCodeIndex, "x"), true},
		{New(ErrCodeInvalidUnit, "x"), true},
		{New(ErrCodeInvalidInput, "x"), false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsLayout(tt.err); got != tt.want {
			t.Errorf("IsLayout(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
