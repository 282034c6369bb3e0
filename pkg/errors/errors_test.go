package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wraps sentinel with context",
			err:      ErrListingFailed,
			msg:      "directory '2020/114/16/'",
			expected: "directory '2020/114/16/': failed to list remote directory",
		},
		{
			name: "nil error stays nil",
			err:  nil,
			msg:  "ignored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Fatalf("expected nil, got %v", result)
				}
				return
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("wrapped error does not match original: %v", result)
			}
			if result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "formats context before sentinel",
			err:      ErrInvalidToken,
			format:   "origin '%s'",
			args:     []interface{}{"G19"},
			expected: "origin 'G19': invalid token value",
		},
		{
			name:   "nil error stays nil",
			err:    nil,
			format: "ignored",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrapf(tt.err, tt.format, tt.args...)
			if tt.err == nil {
				if result != nil {
					t.Fatalf("expected nil, got %v", result)
				}
				return
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("wrapped error does not match original: %v", result)
			}
			if result.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result.Error())
			}
		})
	}
}
