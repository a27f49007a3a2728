package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Fix The LOGIN Bug", "fix the login bug"},
		{"trims", "  fix the login bug  ", "fix the login bug"},
		{"collapses runs", "fix\tthe   login\n\nbug", "fix the login bug"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash("Fix the login bug")
	b := ContentHash("  fix   THE login\nbug ")
	c := ContentHash("fix the logout bug")

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
