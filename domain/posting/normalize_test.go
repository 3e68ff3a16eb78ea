package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHTML(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{
			name:   "empty input",
			markup: "",
			want:   "",
		},
		{
			name:   "plain text passes through",
			markup: "Just a sentence.",
			want:   "Just a sentence.",
		},
		{
			name:   "paragraphs become newlines",
			markup: "<p>First paragraph.</p><p>Second paragraph.</p>",
			want:   "First paragraph.\nSecond paragraph.",
		},
		{
			name:   "line breaks preserved",
			markup: "line one<br>line two<br/>line three",
			want:   "line one\nline two\nline three",
		},
		{
			name:   "list items become bullets",
			markup: "<ul><li>Build things</li><li>Ship things</li></ul>",
			want:   "• Build things\n• Ship things",
		},
		{
			name:   "entities decoded",
			markup: "<p>Sales &amp; Marketing &lt;team&gt;</p>",
			want:   "Sales & Marketing <team>",
		},
		{
			name:   "excess newlines collapse",
			markup: "<p></p><p></p><p></p><p>After a gap</p>",
			want:   "After a gap",
		},
		{
			name:   "surrounding whitespace trimmed",
			markup: "  <p>  padded  </p>  ",
			want:   "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHTML(tt.markup))
		})
	}
}
