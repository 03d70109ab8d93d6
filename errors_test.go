package agentchat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrEmptyInput(t *testing.T) {
	t.Run("is a sentinel error", func(t *testing.T) {
		assert.Error(t, ErrEmptyInput)
		assert.Equal(t, "empty input", ErrEmptyInput.Error())
	})

	t.Run("can be compared with errors.Is", func(t *testing.T) {
		err := ErrEmptyInput
		assert.True(t, errors.Is(err, ErrEmptyInput))
	})
}

func TestError(t *testing.T) {
	t.Run("Error includes cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewTransientError("request failed", 0, cause)
		assert.Equal(t, "request failed: connection refused", err.Error())
	})

	t.Run("Error without cause", func(t *testing.T) {
		err := NewPermanentError("Unauthorized", 401, nil)
		assert.Equal(t, "Unauthorized", err.Error())
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewTransientError("request failed", 0, cause)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		category  ErrorCategory
		retryable bool
	}{
		{"transient", NewTransientError("overloaded", 503, nil), ErrorTransient, true},
		{"permanent", NewPermanentError("bad key", 401, nil), ErrorPermanent, false},
		{"user input", NewUserInputError("bad request", 400, nil), ErrorUserInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestCategoryPredicates(t *testing.T) {
	t.Run("IsTransient sees wrapped errors", func(t *testing.T) {
		inner := NewTransientError("rate limited", 429, nil)
		wrapped := &Error{Msg: "chat failed", Cat: ErrorPermanent, Cause: inner}
		// The outer category wins for errors.As on the first match.
		assert.False(t, IsTransient(wrapped))
		assert.True(t, IsTransient(inner))
	})

	t.Run("predicates are false for plain errors", func(t *testing.T) {
		err := errors.New("plain")
		assert.False(t, IsTransient(err))
		assert.False(t, IsPermanent(err))
		assert.False(t, IsUserInput(err))
	})

	t.Run("StatusCodeOf extracts code", func(t *testing.T) {
		err := NewPermanentError("not found", 404, nil)
		assert.Equal(t, 404, StatusCodeOf(err))
		assert.Equal(t, 0, StatusCodeOf(errors.New("plain")))
	})
}

func TestProtocolError(t *testing.T) {
	t.Run("Error with message", func(t *testing.T) {
		err := &ProtocolError{Code: 500, Message: "boom", Raw: `{"statusCode":500,"message":"boom"}`}
		assert.Equal(t, "agent error 500: boom", err.Error())
	})

	t.Run("Error falls back to raw payload", func(t *testing.T) {
		err := &ProtocolError{Code: 429, Raw: `{"statusCode":429}`}
		assert.Equal(t, `agent error 429: {"statusCode":429}`, err.Error())
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error returns formatted message", func(t *testing.T) {
		cause := errors.New("unexpected end of JSON input")
		err := &ParseError{Raw: "{broken", Err: cause}
		assert.Equal(t, `parse stream frame "{broken": unexpected end of JSON input`, err.Error())
	})

	t.Run("Unwrap returns underlying error", func(t *testing.T) {
		cause := errors.New("bad json")
		err := &ParseError{Raw: "{", Err: cause}
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})
}
