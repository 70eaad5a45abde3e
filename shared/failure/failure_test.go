package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"tasker/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("title cannot be empty"),
			code:    http.StatusBadRequest,
			message: "title cannot be empty",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("Invalid session token"),
			code:    http.StatusUnauthorized,
			message: "Invalid session token",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("todo not found"),
			code:    http.StatusNotFound,
			message: "todo not found",
		},
		{
			name:    "Upstream",
			err:     failure.Upstream("model call failed"),
			code:    http.StatusBadGateway,
			message: "model call failed",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			if !errors.As(tt.err, &fail) {
				t.Fatalf("expected a *failure.Failure, got %T", tt.err)
			}
			if fail.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, fail.Code)
			}
			if fail.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, fail.Message)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	if err := failure.InternalError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("conversation not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("failed to get conversation: %w", failure.NotFound("conversation not found")),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error",
			err:      errors.New("something broke"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}
