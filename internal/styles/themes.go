package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects access to themeRegistry and currentTheme for thread safety
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors
type ColorPalette struct {
	// Brand colors
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`

	// Status colors
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`

	// Text colors
	TextPrimary   string `json:"textPrimary"`
	TextSecondary string `json:"textSecondary"`
	TextMuted     string `json:"textMuted"`
	TextSubtle    string `json:"textSubtle"`

	// Background colors
	BgPrimary   string `json:"bgPrimary"`
	BgSecondary string `json:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary"`

	// Border colors
	BorderNormal string `json:"borderNormal"`
	BorderActive string `json:"borderActive"`

	// Color stops for the tab gradient
	TabColors []string `json:"tabColors"`

	// Glamour theme name
	MarkdownTheme string `json:"markdownTheme"`
}

// Theme represents a complete theme configuration
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// Built-in themes
var (
	DefaultTheme = Theme{
		Name:        "default",
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary:   "#7C3AED", // Purple
			Secondary: "#3B82F6", // Blue
			Accent:    "#F59E0B", // Amber

			Success: "#10B981",
			Warning: "#F59E0B",
			Error:   "#EF4444",
			Info:    "#3B82F6",

			TextPrimary:   "#F9FAFB",
			TextSecondary: "#9CA3AF",
			TextMuted:     "#6B7280",
			TextSubtle:    "#4B5563",

			BgPrimary:   "#111827",
			BgSecondary: "#1F2937",
			BgTertiary:  "#374151",

			BorderNormal: "#374151",
			BorderActive: "#7C3AED",

			TabColors: []string{"#7C3AED", "#3B82F6", "#10B981"},

			MarkdownTheme: "dark",
		},
	}

	// DraculaTheme is a Dracula-inspired dark theme with vibrant colors
	DraculaTheme = Theme{
		Name:        "dracula",
		DisplayName: "Dracula",
		Colors: ColorPalette{
			Primary:   "#BD93F9", // Purple
			Secondary: "#8BE9FD", // Cyan
			Accent:    "#FFB86C", // Orange

			Success: "#50FA7B",
			Warning: "#FFB86C",
			Error:   "#FF5555",
			Info:    "#8BE9FD",

			TextPrimary:   "#F8F8F2",
			TextSecondary: "#BFBFBF",
			TextMuted:     "#6272A4",
			TextSubtle:    "#44475A",

			BgPrimary:   "#282A36",
			BgSecondary: "#343746",
			BgTertiary:  "#44475A",

			BorderNormal: "#44475A",
			BorderActive: "#BD93F9",

			TabColors: []string{"#BD93F9", "#FF79C6", "#8BE9FD"},

			MarkdownTheme: "dracula",
		},
	}

	// LightTheme suits terminals with a light background.
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			Primary:   "#6D28D9",
			Secondary: "#2563EB",
			Accent:    "#B45309",

			Success: "#047857",
			Warning: "#B45309",
			Error:   "#B91C1C",
			Info:    "#2563EB",

			TextPrimary:   "#111827",
			TextSecondary: "#374151",
			TextMuted:     "#6B7280",
			TextSubtle:    "#9CA3AF",

			BgPrimary:   "#FFFFFF",
			BgSecondary: "#F3F4F6",
			BgTertiary:  "#E5E7EB",

			BorderNormal: "#D1D5DB",
			BorderActive: "#6D28D9",

			TabColors: []string{"#A78BFA", "#60A5FA", "#34D399"},

			MarkdownTheme: "light",
		},
	}
)

// themeRegistry holds all available themes
var themeRegistry = map[string]Theme{
	"default": DefaultTheme,
	"dracula": DraculaTheme,
	"light":   LightTheme,
}

// currentTheme tracks the active theme name
var currentTheme = "default"

// IsValidHexColor checks if a string is a valid hex color code (#RRGGBB or #RRGGBBAA)
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme checks if a theme name exists in the registry
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns a theme by name, or the default theme if not found
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if theme, ok := themeRegistry[name]; ok {
		return theme
	}
	return DefaultTheme
}

// GetCurrentThemeName returns the name of the currently active theme
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the names of all available themes in sorted order
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme applies a theme by name with optional per-color overrides
// keyed by palette JSON name (e.g. "primary"). Unknown names fall back to
// the default theme; invalid override colors are ignored.
func ApplyTheme(name string, overrides map[string]string) {
	theme := GetTheme(name)
	palette := theme.Colors
	palette.TabColors = append([]string(nil), palette.TabColors...)
	for key, value := range overrides {
		applyOverride(&palette, key, value)
	}

	themeMu.Lock()
	currentTheme = theme.Name
	applyPalette(palette)
	themeMu.Unlock()
}

// applyOverride sets one palette color if value is a valid hex color.
func applyOverride(p *ColorPalette, key, value string) {
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "primary":
		p.Primary = value
	case "secondary":
		p.Secondary = value
	case "accent":
		p.Accent = value
	case "success":
		p.Success = value
	case "warning":
		p.Warning = value
	case "error":
		p.Error = value
	case "info":
		p.Info = value
	case "textPrimary":
		p.TextPrimary = value
	case "textSecondary":
		p.TextSecondary = value
	case "textMuted":
		p.TextMuted = value
	case "textSubtle":
		p.TextSubtle = value
	case "bgPrimary":
		p.BgPrimary = value
	case "bgSecondary":
		p.BgSecondary = value
	case "bgTertiary":
		p.BgTertiary = value
	case "borderNormal":
		p.BorderNormal = value
	case "borderActive":
		p.BorderActive = value
	}
}

// applyPalette copies palette colors into the package variables and
// rebuilds every style.
func applyPalette(p ColorPalette) {
	Primary = lipgloss.Color(p.Primary)
	Secondary = lipgloss.Color(p.Secondary)
	Accent = lipgloss.Color(p.Accent)

	Success = lipgloss.Color(p.Success)
	Warning = lipgloss.Color(p.Warning)
	Error = lipgloss.Color(p.Error)
	Info = lipgloss.Color(p.Info)

	TextPrimary = lipgloss.Color(p.TextPrimary)
	TextSecondary = lipgloss.Color(p.TextSecondary)
	TextMuted = lipgloss.Color(p.TextMuted)
	TextSubtle = lipgloss.Color(p.TextSubtle)

	BgPrimary = lipgloss.Color(p.BgPrimary)
	BgSecondary = lipgloss.Color(p.BgSecondary)
	BgTertiary = lipgloss.Color(p.BgTertiary)

	BorderNormal = lipgloss.Color(p.BorderNormal)
	BorderActive = lipgloss.Color(p.BorderActive)

	ToastSuccessTextColor = textOn("#000000", p.Success)
	ToastErrorTextColor = textOn("#FFFFFF", p.Error)

	if len(p.TabColors) > 0 {
		stops := make([]RGB, 0, len(p.TabColors))
		for _, hex := range p.TabColors {
			stops = append(stops, HexToRGB(hex))
		}
		TabColors = stops
	}

	if p.MarkdownTheme != "" {
		CurrentMarkdownTheme = p.MarkdownTheme
	}

	rebuildStyles()
}
