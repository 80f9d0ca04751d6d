package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "bad spec: %s", "latex")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidFormat)
	}

	if err.Message != "bad spec: latex" {
		t.Errorf("Message = %v, want %v", err.Message, "bad spec: latex")
	}

	expected := "INVALID_FORMAT: bad spec: latex"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if err.Code != ErrCodeInternal {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternal)
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
			err:      New(ErrCodeSizeNotFound, "test"),
			code:     ErrCodeSizeNotFound,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeSizeNotFound, "test"),
			code:     ErrCodeStyleNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInternal, New(ErrCodeNoFigure, "inner"), "outer"),
			code:     ErrCodeInternal,
			expected: true,
		},
		{
			name:     "wrapped inner code does not match outer",
			err:      Wrap(ErrCodeInternal, New(ErrCodeNoFigure, "inner"), "outer"),
			code:     ErrCodeNoFigure,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "fmt wrapped structured error",
			err:      fmt.Errorf("context: %w", New(ErrCodeUnsupported, "ext")),
			code:     ErrCodeUnsupported,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is(%v, %v) = %v, want %v", tt.err, tt.code, got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeNoFigure, "no figure")); code != ErrCodeNoFigure {
		t.Errorf("GetCode = %v, want %v", code, ErrCodeNoFigure)
	}

	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode(plain) = %v, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeStyleNotFound, "style %q not registered", "bogus")
	if msg := UserMessage(err); msg != `style "bogus" not registered` {
		t.Errorf("UserMessage = %q", msg)
	}

	plain := errors.New("plain message")
	if msg := UserMessage(plain); msg != "plain message" {
		t.Errorf("UserMessage(plain) = %q", msg)
	}
}
