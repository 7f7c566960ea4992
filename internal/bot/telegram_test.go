package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"empty", "", 10, []string{""}},
		{"on newline", "aaaa\nbbbb\ncccc", 10, []string{"aaaa\nbbbb\n", "cccc"}},
		{"no newline", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"multibyte", "🏈🏈🏈", 2, []string{"🏈🏈", "🏈"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitMessage(tt.text, tt.limit))
		})
	}
}

func TestSplitMessageKeepsText(t *testing.T) {
	text := strings.Repeat("Alpha 101.00 - 99.00 Bravo\n", 400)
	parts := splitMessage(text, maxMessageLen)
	assert.Greater(t, len(parts), 1)
	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, len([]rune(p)), maxMessageLen)
	}
}
