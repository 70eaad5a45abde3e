package shared_test

import (
	"tasker/shared"
	"tasker/shared/constant"
	"testing"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "not-a-bool",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil || *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, result)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "short message keeps all words without ellipsis",
			input:    "Plan my week",
			expected: "Plan my week",
		},
		{
			name:     "exactly five words has no ellipsis",
			input:    "one two three four five",
			expected: "one two three four five",
		},
		{
			name:     "long message truncates with ellipsis",
			input:    "Remind me to buy milk tomorrow morning",
			expected: "Remind me to buy milk...",
		},
		{
			name:     "collapses repeated whitespace",
			input:    "  hello   world  ",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.TruncateWords(tt.input, constant.TitleMaxWords, constant.TitleEllipsis)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("session", "abc"); got != "session:abc" {
		t.Errorf("expected session:abc, got %s", got)
	}
}

func TestFilterByOwner(t *testing.T) {
	group := shared.FilterByOwner("todo-1", "user-1", "id", "user_id", "todos")

	where, args := group.GetWhereClause()

	expected := "(todos.id = :id AND todos.user_id = :user_id)"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}

	if args["id"] != "todo-1" || args["user_id"] != "user-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
