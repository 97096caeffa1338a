package utils

import (
	"testing"
	"time"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	t.Parallel()

	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("NewULIDFromTimestamp() error = %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("ULID length = %d, want 26", len(id))
	}
}

func TestStripDataURLPrefix(t *testing.T) {
	t.Parallel()

	u := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"jpeg data url", "data:image/jpeg;base64,abc123", "abc123"},
		{"png data url", "data:image/png;base64,xyz==", "xyz=="},
		{"raw base64 untouched", "abc123", "abc123"},
		{"base64 marker without data prefix untouched", "something;base64,abc", "something;base64,abc"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := u.StripDataURLPrefix(tt.input); got != tt.want {
				t.Fatalf("StripDataURLPrefix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
