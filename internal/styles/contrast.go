package styles

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// minTextContrast is the WCAG AA ratio for bold text.
const minTextContrast = 3.0

var (
	black = RGB{0, 0, 0}
	white = RGB{255, 255, 255}
)

func contrastRatio(fg, bg RGB) float64 {
	l1 := relativeLuminance(fg)
	l2 := relativeLuminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// readableOn picks black or white, whichever contrasts more with bg.
func readableOn(bg RGB) lipgloss.Color {
	if contrastRatio(black, bg) >= contrastRatio(white, bg) {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

// textOn keeps fg when it is legible on bg and falls back to readableOn.
func textOn(fg, bg string) lipgloss.Color {
	if IsValidHexColor(fg) && contrastRatio(HexToRGB(fg), HexToRGB(bg)) >= minTextContrast {
		return lipgloss.Color(fg)
	}
	return readableOn(HexToRGB(bg))
}

func relativeLuminance(c RGB) float64 {
	r := linearize(c.R / 255.0)
	g := linearize(c.G / 255.0)
	b := linearize(c.B / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
