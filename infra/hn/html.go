package hn

import (
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var (
	paragraphRe = regexp.MustCompile(`(?i)<p\s*/?>|</p>`)
	lineBreakRe = regexp.MustCompile(`(?i)<br\s*/?>`)
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// PlainText reduces an item body to plain text: paragraphs become blank
// lines, tags are dropped, entities are decoded, and anything that could
// drive the terminal is removed.
func PlainText(s string) string {
	s = paragraphRe.ReplaceAllString(s, "\n\n")
	s = lineBreakRe.ReplaceAllString(s, "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = sanitizeForTerminal(s)
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// sanitizeForTerminal drops escape sequences and control characters other
// than newlines and tabs.
func sanitizeForTerminal(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = ansi.Strip(ln)
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0) {
			return -1
		}
		return r
	}, strings.Join(lines, "\n"))
}
