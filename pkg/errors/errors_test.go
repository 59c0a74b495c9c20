package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPoint, "invalid point %q", "Z9")

	if err.Code != ErrCodeInvalidPoint {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidPoint)
	}

	if err.Message != `invalid point "Z9"` {
		t.Errorf("Message = %v, want %v", err.Message, `invalid point "Z9"`)
	}

	expected := `INVALID_POINT: invalid point "Z9"`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
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
			err:      New(ErrCodeFreeSpace, "test"),
			code:     ErrCodeFreeSpace,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeNotMarked, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("decode: %w", New(ErrCodeCorruptRecord, "inner")),
			code:     ErrCodeCorruptRecord,
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
		{"Error type", New(ErrCodeNotFound, "test"), ErrCodeNotFound},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
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
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"with cause", Wrap(ErrCodeNetwork, errors.New("timeout"), "fetch emote"), "fetch emote: timeout"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"invalid point", New(ErrCodeInvalidPoint, "x"), 1},
		{"free space", New(ErrCodeFreeSpace, "x"), 1},
		{"corrupt record", New(ErrCodeCorruptRecord, "x"), 1},
		{"not found", New(ErrCodeNotFound, "x"), 2},
		{"wrapped not found", fmt.Errorf("mark: %w", New(ErrCodeNotFound, "x")), 2},
		{"network", New(ErrCodeNetwork, "x"), 1},
		{"canceled", fmt.Errorf("fetch: %w", context.Canceled), 130},
		{"plain", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{ErrCodeInvalidPoint, http.StatusBadRequest},
		{ErrCodeFreeSpace, http.StatusBadRequest},
		{ErrCodeNotMarked, http.StatusBadRequest},
		{ErrCodeCorruptRecord, http.StatusBadRequest},
		{ErrCodeTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeNetwork, http.StatusBadGateway},
		{ErrCodeInternal, http.StatusInternalServerError},
		{"", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatus(tt.code); got != tt.want {
				t.Errorf("HTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}
