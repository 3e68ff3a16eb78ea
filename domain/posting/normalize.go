package posting

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// NormalizeHTML renders markup as plain text. Line breaks and list bullets
// become "\n" / "\n• " before tags are dropped, so paragraph and list
// boundaries survive tag removal. Entities are decoded, runs of three or
// more newlines collapse to two, and the result is trimmed.
// Empty input yields an empty string, never an error.
func NormalizeHTML(markup string) string {
	if markup == "" {
		return ""
	}

	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(markup))

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// io.EOF or malformed tail; either way we keep what we have.
			break
		}
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			switch string(name) {
			case "br", "p":
				b.WriteString("\n")
			case "li":
				b.WriteString("\n• ")
			}
		case html.TextToken:
			// Token() decodes entities in text nodes.
			b.WriteString(tokenizer.Token().Data)
		}
	}

	text := excessNewlines.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(text)
}
