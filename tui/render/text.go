package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// indentUnit is the per-level comment indentation.
const indentUnit = "   "

// Indent returns the prefix for a comment at depth.
func Indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// WrapBody word-wraps plain text to width columns and prefixes every line
// with indent. Whitespace inside a paragraph is collapsed; paragraphs are
// separated by an empty line. Words longer than width are broken.
func WrapBody(text string, width int, indent string) string {
	var lines []string
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.Join(strings.Fields(para), " ")
		if para == "" {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, ln := range strings.Split(ansi.Wrap(para, width, ""), "\n") {
			ln = strings.TrimSpace(ln)
			if ln == "" {
				continue
			}
			lines = append(lines, indent+ln)
		}
	}
	return strings.Join(lines, "\n")
}
