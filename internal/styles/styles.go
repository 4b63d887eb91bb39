package styles

import "github.com/charmbracelet/lipgloss"

// Color palette, set by ApplyTheme. Defaults match the "default" theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#3B82F6") // Blue
	Accent    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#EF4444") // Red
	Info    = lipgloss.Color("#3B82F6") // Blue

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")
	TextSubtle    = lipgloss.Color("#4B5563")

	// Background colors
	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	// Border colors
	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")

	// Markdown style passed to glamour.
	CurrentMarkdownTheme = "dark"
)

// RGB is a color used for gradient tab rendering.
type RGB struct {
	R, G, B float64
}

// TabColors drives the tab gradient.
var TabColors = []RGB{{124, 58, 237}, {59, 130, 246}, {16, 185, 129}}

// Panel styles
var (
	// Active panel with highlighted border
	PanelActive lipgloss.Style
	// Inactive panel with subtle border
	PanelInactive lipgloss.Style
)

// Text styles
var (
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	KeyHint lipgloss.Style
	Logo    lipgloss.Style
)

// Toast styles for status messages
var (
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
)

// List item styles
var (
	ListItemNormal   lipgloss.Style
	ListItemSelected lipgloss.Style
	ListCursor       lipgloss.Style
)

// Note board styles
var (
	// Row being dragged
	NoteDragging lipgloss.Style
	// Row held but not yet dragging
	NotePressed lipgloss.Style
	Trash       lipgloss.Style
	// Trash while a note is being dragged elsewhere
	TrashArmed lipgloss.Style
	// Trash with a dragged note hovering over it
	TrashHot       lipgloss.Style
	Snackbar       lipgloss.Style
	SnackbarAction lipgloss.Style
)

// Quiz styles
var (
	QuizOption         lipgloss.Style
	QuizOptionSelected lipgloss.Style
	QuizScore          lipgloss.Style
)

// Storefront styles
var (
	ShopWordmark lipgloss.Style
	ShopBanner   lipgloss.Style
	Badge        lipgloss.Style
	Favorite     lipgloss.Style
	NavActive    lipgloss.Style
	NavInactive  lipgloss.Style
)

// Footer and header
var (
	Footer lipgloss.Style
	Header lipgloss.Style
)

// Modal styles
var (
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
)

// Button styles
var (
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the current palette.
func rebuildStyles() {
	PanelActive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderActive).
		Padding(0, 1)
	PanelInactive = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	Title = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	Body = lipgloss.NewStyle().Foreground(TextPrimary)
	Muted = lipgloss.NewStyle().Foreground(TextMuted)
	Subtle = lipgloss.NewStyle().Foreground(TextSubtle)
	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)
	Logo = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	ToastSuccess = lipgloss.NewStyle().
		Background(Success).
		Foreground(ToastSuccessTextColor).
		Bold(true).
		Padding(0, 1)
	ToastError = lipgloss.NewStyle().
		Background(Error).
		Foreground(ToastErrorTextColor).
		Bold(true).
		Padding(0, 1)

	ListItemNormal = lipgloss.NewStyle().Foreground(TextPrimary)
	ListItemSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary)
	ListCursor = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	NoteDragging = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Bold(true)
	NotePressed = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary).
		Italic(true)
	Trash = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Foreground(TextMuted).
		Padding(0, 1)
	TrashArmed = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Warning).
		Foreground(Warning).
		Padding(0, 1)
	TrashHot = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Error).
		Foreground(Error).
		Bold(true).
		Padding(0, 1)
	Snackbar = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(BgTertiary).
		Padding(0, 1)
	SnackbarAction = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	QuizOption = lipgloss.NewStyle().Foreground(TextPrimary).Padding(0, 1)
	QuizOptionSelected = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Bold(true).
		Padding(0, 1)
	QuizScore = lipgloss.NewStyle().Foreground(Success).Bold(true)

	ShopWordmark = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	ShopBanner = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 2)
	Badge = lipgloss.NewStyle().
		Foreground(ToastErrorTextColor).
		Background(Error).
		Bold(true)
	Favorite = lipgloss.NewStyle().Foreground(Error)
	NavActive = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Underline(true)
	NavInactive = lipgloss.NewStyle().Foreground(TextMuted)

	Footer = lipgloss.NewStyle().Foreground(TextMuted).Background(BgSecondary)
	Header = lipgloss.NewStyle().Background(BgSecondary)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)
	ModalTitle = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true).
		MarginBottom(1)

	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 2)
	ButtonFocused = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Background(Primary).
		Padding(0, 2).
		Bold(true)
}
