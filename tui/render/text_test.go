package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	require.Equal(t, "", Indent(0))
	require.Equal(t, "      ", Indent(2))
}

func TestWrapBody_RespectsWidthAndIndent(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	got := WrapBody(text, 70, "   ")

	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 1, "expected several lines, got %q", got)
	for _, ln := range lines {
		require.True(t, strings.HasPrefix(ln, "   "), "line missing indent: %q", ln)
		require.LessOrEqual(t, ansi.StringWidth(strings.TrimPrefix(ln, "   ")), 70, "line too wide: %q", ln)
	}
	require.Equal(t, strings.TrimSpace(text), strings.Join(strings.Fields(got), " "), "wrapping must not drop or reorder words")
}

func TestWrapBody_KeepsParagraphs(t *testing.T) {
	require.Equal(t, "first para\n\nsecond para", WrapBody("first   para\n\nsecond\npara", 70, ""))
}

func TestWrapBody_Empty(t *testing.T) {
	require.Equal(t, "", WrapBody("  \n\n ", 70, "   "))
}
