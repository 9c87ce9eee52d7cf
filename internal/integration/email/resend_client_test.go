package email

import (
	"errors"
	"testing"
)

func TestIsRejectedByProvider(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unauthorized", errors.New("401 Unauthorized"), true},
		{"forbidden", errors.New("403 Forbidden"), true},
		{"validation failure", errors.New("422 validation_error: missing to"), true},
		{"invalid payload", errors.New("Invalid `from` field"), true},
		{"rate limited", errors.New("429 Too Many Requests"), false},
		{"server error", errors.New("500 Internal Server Error"), false},
		{"network timeout", errors.New("dial tcp: i/o timeout"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRejectedByProvider(tt.err); got != tt.want {
				t.Errorf("isRejectedByProvider(%q) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
