package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Batman", 10, "Batman"},
		{"Batman Begins", 8, "Batma..."},
		{"Batman", 2, "Ba"},
		{"Amélie", 5, "Am..."},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "Truncate(%q, %d)", tt.in, tt.width)
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Heat  ", Pad("Heat", 6))
	assert.Equal(t, "He", Pad("Heat", 2))
}
