package common

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Ellipsis marks a shortened title.
const Ellipsis = "..."

// ShortenTitle collapses runs of whitespace and, when the result is longer
// than width characters, keeps as many leading whole words as fit with the
// ellipsis appended. If not even the first word fits, only the ellipsis is
// returned.
func ShortenTitle(title string, width int) string {
	words := strings.Fields(title)
	collapsed := strings.Join(words, " ")
	if utf8.RuneCountInString(collapsed) <= width {
		return collapsed
	}

	budget := width - len(Ellipsis)
	var b strings.Builder
	n := 0
	for _, w := range words {
		wl := utf8.RuneCountInString(w)
		sep := 0
		if n > 0 {
			sep = 1
		}
		if n+sep+wl > budget {
			break
		}
		if sep == 1 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		n += sep + wl
	}
	return b.String() + Ellipsis
}

// Hostname returns the lower-cased host of rawURL with one leading "www."
// removed, or "" when rawURL has no host.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
