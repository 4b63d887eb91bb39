package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderTab renders a tab label with a gradient background.
// tabIndex is the 0-based index of this tab, totalTabs is the total count.
func RenderTab(label string, tabIndex, totalTabs int, isActive bool) string {
	if totalTabs == 0 {
		totalTabs = 1
	}

	// Calculate position in the gradient (0.0 to 1.0 across all tabs)
	tabWidth := 1.0 / float64(totalTabs)
	startPos := float64(tabIndex) * tabWidth
	endPos := startPos + tabWidth

	padded := "  " + label + "  "
	chars := []rune(padded)
	result := ""

	for i, ch := range chars {
		charPos := startPos + (endPos-startPos)*float64(i)/float64(len(chars))
		r, g, b := interpolateColors(charPos, TabColors)

		// Mute colors for inactive tabs
		if !isActive {
			r = uint8(float64(r)*0.35 + 30)
			g = uint8(float64(g)*0.35 + 30)
			b = uint8(float64(b)*0.35 + 30)
		}

		bg := RGB{float64(r), float64(g), float64(b)}
		style := lipgloss.NewStyle().Background(lipgloss.Color(RGBToHex(bg)))
		if isActive {
			style = style.Foreground(readableOn(bg)).Bold(true)
		} else {
			style = style.Foreground(TextSecondary)
		}
		result += style.Render(string(ch))
	}

	return result
}

// interpolateColors returns RGB for a position 0.0-1.0 across the color array
func interpolateColors(pos float64, colors []RGB) (uint8, uint8, uint8) {
	if len(colors) < 2 {
		if len(colors) == 1 {
			return uint8(colors[0].R), uint8(colors[0].G), uint8(colors[0].B)
		}
		return 128, 128, 128
	}

	scaled := pos * float64(len(colors)-1)
	idx := int(scaled)
	if idx >= len(colors)-1 {
		idx = len(colors) - 2
	}
	frac := scaled - float64(idx)

	c1, c2 := colors[idx], colors[idx+1]
	r := uint8(c1.R + frac*(c2.R-c1.R))
	g := uint8(c1.G + frac*(c2.G-c1.G))
	b := uint8(c1.B + frac*(c2.B-c1.B))

	return r, g, b
}

// HexToRGB parses #RRGGBB (an alpha suffix is ignored). Invalid input
// yields mid gray.
func HexToRGB(hex string) RGB {
	if !IsValidHexColor(hex) {
		return RGB{128, 128, 128}
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex[1:7], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{128, 128, 128}
	}
	return RGB{float64(r), float64(g), float64(b)}
}

// RGBToHex formats c as #rrggbb.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R), uint8(c.G), uint8(c.B))
}
