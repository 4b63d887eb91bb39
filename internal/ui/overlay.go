// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle applies a dim gray color to background content behind modals.
// We strip existing ANSI codes and apply gray because SGR 2 (faint) doesn't
// reliably combine with existing color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		w := ansi.StringWidth(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and applies dim gray styling.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow overlays fgLine onto bgLine at position startX. With dim set
// the background is stripped and grayed, otherwise its styling is kept.
func compositeRow(bgLine, fgLine string, startX, fgWidth, totalWidth int, dim bool) string {
	var result strings.Builder

	bg := bgLine
	if dim {
		bg = ansi.Strip(bgLine)
	}
	bgWidth := ansi.StringWidth(bg)
	paint := func(s string) string {
		if dim {
			return DimStyle.Render(s)
		}
		return s
	}

	// Left segment from 0 to startX
	if startX > 0 {
		leftSeg := ansi.Truncate(bg, startX, "")
		leftWidth := ansi.StringWidth(leftSeg)
		result.WriteString(paint(leftSeg))
		// Pad if background is shorter than the overlay position
		if leftWidth < startX {
			result.WriteString(strings.Repeat(" ", startX-leftWidth))
		}
	}

	result.WriteString(fgLine)

	// Right segment after the overlay
	rightStartX := startX + fgWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		rightSeg := ansi.Cut(bg, rightStartX, bgWidth)
		result.WriteString(paint(rightSeg))
	}

	return result.String()
}

// composite places fg at (x, y) over background, clipping to height rows.
func composite(background, fg string, x, y, width, height int, dim bool) string {
	bgLines := strings.Split(background, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := maxLineWidth(fgLines)

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	result := make([]string, 0, height)
	for row := 0; row < height; row++ {
		bgLine := bgLines[row]
		fgRow := row - y
		switch {
		case fgRow >= 0 && fgRow < len(fgLines):
			result = append(result, compositeRow(bgLine, fgLines[fgRow], x, fgWidth, width, dim))
		case dim:
			result = append(result, dimLine(bgLine))
		default:
			result = append(result, bgLine)
		}
	}

	return strings.Join(result, "\n")
}

// OverlayModal composites a modal on top of a dimmed background.
// The modal is centered, with dimmed background visible on all sides.
func OverlayModal(background, modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")
	startX := (width - maxLineWidth(modalLines)) / 2
	startY := (height - len(modalLines)) / 2
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}
	return composite(background, modal, startX, startY, width, height, true)
}

// OverlayAt draws fg at (x, y) without dimming the background.
func OverlayAt(background, fg string, x, y, width, height int) string {
	if x < 0 {
		x = 0
	}
	return composite(background, fg, x, y, width, height, false)
}

// OverlayBottom centers bar horizontally, margin rows above the bottom
// edge, and returns the composite plus the bar's origin for hit testing.
func OverlayBottom(background, bar string, width, height, margin int) (string, int, int) {
	barLines := strings.Split(bar, "\n")
	x := (width - maxLineWidth(barLines)) / 2
	if x < 0 {
		x = 0
	}
	y := height - margin - len(barLines)
	if y < 0 {
		y = 0
	}
	return composite(background, bar, x, y, width, height, false), x, y
}
