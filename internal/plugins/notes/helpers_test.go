package notes

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func contains(rendered, s string) bool {
	return strings.Contains(ansi.Strip(rendered), s)
}

// cells returns the plain text inside a screen rectangle, one line per row.
func cells(rendered string, x, y, w, h int) string {
	lines := strings.Split(ansi.Strip(rendered), "\n")
	var b strings.Builder
	for row := y; row < y+h && row < len(lines); row++ {
		b.WriteString(ansi.Cut(lines[row], x, x+w))
		b.WriteString("\n")
	}
	return b.String()
}
