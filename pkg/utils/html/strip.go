// ABOUTME: HTML utilities for turning rendered article bodies into plain text
// ABOUTME: Provides tag stripping and word-boundary excerpts built on goquery

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const ellipsis = "..."

// StripHTML removes tags, script and style content, decodes entities and
// collapses whitespace. Input that fails to parse is returned trimmed.
func StripHTML(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	doc.Find("script, style, noscript").Remove()

	// Block elements would otherwise glue neighbouring words together
	doc.Find("p, div, br, li, h1, h2, h3, h4, h5, h6, blockquote, pre, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt returns at most maxRunes runes of the plain text of html, cut on a
// word boundary and suffixed with "..." when truncated.
func Excerpt(html string, maxRunes int) string {
	text := StripHTML(html)
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if runes[maxRunes] != ' ' {
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
	}

	return strings.TrimRight(cut, " ,.;:") + ellipsis
}
