package common

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the styles used for command output. Each set is bound to
// a renderer, so colour is only emitted when the writer is a terminal.
type Styles struct {
	// Rank styles the "NN." prefix of a listing line.
	Rank lipgloss.Style
	// Title styles story titles.
	Title lipgloss.Style
	// Host styles the "(example.com)" suffix.
	Host lipgloss.Style
	// Meta styles the points/author line under a story title.
	Meta lipgloss.Style
	// Author styles comment authors.
	Author lipgloss.Style
	// Timestamp styles relative times.
	Timestamp lipgloss.Style
	// Rule styles the separator under a story header.
	Rule lipgloss.Style
	// Status styles the pager's bottom line.
	Status lipgloss.Style
}

// NewStyles builds the palette for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Rank: r.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5")),
		Host: r.NewStyle().
			Foreground(lipgloss.Color("#555555")). // Dimmed grey
			Italic(true),
		Meta: r.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
		Author: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6600")),
		Timestamp: r.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
		Rule: r.NewStyle().
			Foreground(lipgloss.Color("#45475A")),
		Status: r.NewStyle().
			Foreground(lipgloss.Color("#6E738D")),
	}
}

// StylesFor builds the palette for output written to w. With noColor set
// every style renders its input unchanged.
func StylesFor(w io.Writer, noColor bool) Styles {
	if noColor {
		return NewStyles(lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii)))
	}
	return NewStyles(lipgloss.NewRenderer(w))
}

// PlainStyles returns styles that never add escape sequences.
func PlainStyles() Styles {
	return StylesFor(io.Discard, true)
}
