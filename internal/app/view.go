package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/ui"
)

const (
	headerHeight = 2 // header line + spacing
	footerHeight = 1
	minWidth     = 40
	minHeight    = 12
)

// contentHeight is the number of rows handed to the active plugin.
func (m Model) contentHeight() int {
	h := m.height - headerHeight
	if m.showFooter {
		h -= footerHeight
	}
	if h < 0 {
		h = 0
	}
	return h
}

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show warning if terminal is too small
	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.ToastError.Render(msg))
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString("\n") // spacing between header and content

	b.WriteString(m.renderContent(m.width, m.contentHeight()))

	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	bg := b.String()
	if m.showHelp {
		return m.renderHelpOverlay(bg)
	}
	return bg
}

// titleWidth is the fixed width reserved for the wordmark so tabs do not
// shift while the intro plays.
func (m Model) titleWidth() int {
	return lipgloss.Width(" "+appName) + 1
}

func (m Model) renderTabs() (string, []int) {
	plugins := m.registry.Plugins()
	tabs := make([]string, 0, len(plugins))
	widths := make([]int, 0, len(plugins))
	for i, p := range plugins {
		tab := styles.RenderTab(p.Name(), i, len(plugins), i == m.activePlugin)
		tabs = append(tabs, tab)
		widths = append(widths, lipgloss.Width(tab))
	}
	return strings.Join(tabs, " "), widths
}

func (m Model) renderHeader() string {
	var title string
	if m.intro.Active && !m.intro.Done {
		title = lipgloss.NewStyle().Width(m.titleWidth()).Render(" " + m.intro.View())
	} else {
		title = styles.Logo.Render(" "+appName) + " "
	}

	tabBar, _ := m.renderTabs()
	clock := styles.Muted.Render(m.clock.Format("15:04"))

	spacing := m.width - m.titleWidth() - lipgloss.Width(tabBar) - lipgloss.Width(clock)
	if spacing < 0 {
		spacing = 0
	}

	header := title + strings.Repeat(" ", spacing/2) + tabBar + strings.Repeat(" ", spacing-(spacing/2)) + clock
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(header)
}

// getTabBounds calculates the X position bounds for each tab in the header.
// Must match renderHeader.
func (m Model) getTabBounds() []TabBounds {
	tabBar, widths := m.renderTabs()
	clockWidth := lipgloss.Width(m.clock.Format("15:04"))

	spacing := m.width - m.titleWidth() - lipgloss.Width(tabBar) - clockWidth
	if spacing < 0 {
		spacing = 0
	}

	bounds := make([]TabBounds, len(widths))
	x := m.titleWidth() + spacing/2
	for i, w := range widths {
		bounds[i] = TabBounds{Start: x, End: x + w}
		x += w + 1 // +1 for space between tabs
	}
	return bounds
}

// renderContent renders the main content area.
func (m Model) renderContent(width, height int) string {
	p := m.ActivePlugin()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Muted.Render("No screens loaded"))
	}
	if height == 0 {
		return ""
	}
	content := p.View(width, height)
	// MaxHeight truncates content that exceeds the allocated space.
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// renderFooter renders the bottom bar with key hints and status.
func (m Model) renderFooter() string {
	var status string
	if m.statusMsg != "" {
		toastStyle := styles.ToastSuccess
		if m.statusIsError {
			toastStyle = styles.ToastError
		}
		status = toastStyle.Render(m.statusMsg)
	}

	statusWidth := lipgloss.Width(status)
	hints := renderHintLineTruncated(m.footerHints(), m.width-statusWidth-2)

	spacing := m.width - lipgloss.Width(hints) - statusWidth
	if spacing < 0 {
		spacing = 0
	}
	footer := hints + strings.Repeat(" ", spacing) + status

	// MaxWidth keeps the footer on a single line.
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(footer)
}

type footerHint struct {
	keys  string
	label string
}

func (m Model) footerHints() []footerHint {
	// Plugin-specific hints first
	var hints []footerHint
	if p := m.ActivePlugin(); p != nil {
		hints = m.pluginFooterHints(p, m.activeContext)
	}
	return append(hints, m.globalFooterHints()...)
}

func (m Model) globalFooterHints() []footerHint {
	var hints []footerHint
	for _, id := range []string{"next-plugin", "toggle-help", "quit"} {
		keys := m.keymap.KeysFor(id, "global")
		if len(keys) == 0 {
			continue
		}
		label := id
		if c, ok := m.keymap.GetCommand(id); ok {
			label = strings.ToLower(c.Name)
		}
		hints = append(hints, footerHint{keys: keys[0], label: label})
	}
	return hints
}

func (m Model) pluginFooterHints(p plugin.Plugin, context string) []footerHint {
	if context == "" || context == "global" {
		return nil
	}

	cmds := make([]plugin.Command, 0)
	for _, c := range p.Commands() {
		if c.Context == context {
			cmds = append(cmds, c)
		}
	}
	priority := func(c plugin.Command) int {
		if c.Priority == 0 {
			return 99
		}
		return c.Priority
	}
	sort.SliceStable(cmds, func(i, j int) bool { return priority(cmds[i]) < priority(cmds[j]) })

	var hints []footerHint
	for _, c := range cmds {
		keys := m.keymap.KeysFor(c.ID, context)
		if len(keys) == 0 {
			continue
		}
		hints = append(hints, footerHint{keys: formatBindingKeys(keys), label: c.Name})
	}
	return hints
}

// renderHintLineTruncated renders hints but stops adding when maxWidth is exceeded.
func renderHintLineTruncated(hints []footerHint, maxWidth int) string {
	if len(hints) == 0 || maxWidth <= 0 {
		return ""
	}
	var result string
	for _, hint := range hints {
		if hint.keys == "" || hint.label == "" {
			continue
		}
		part := fmt.Sprintf("%s %s", styles.KeyHint.Render(hint.keys), hint.label)
		candidate := part
		if result != "" {
			candidate = result + "  " + part
		}
		if lipgloss.Width(candidate) > maxWidth {
			break
		}
		result = candidate
	}
	return result
}

// renderHelpOverlay renders the help modal over content.
func (m Model) renderHelpOverlay(content string) string {
	modal := styles.ModalBox.Render(m.buildHelpContent())
	return ui.OverlayModal(content, modal, m.width, m.height)
}

// buildHelpContent lists global shortcuts and the active screen's commands
// grouped by category.
func (m Model) buildHelpContent() string {
	var b strings.Builder

	b.WriteString(styles.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Global"))
	b.WriteString("\n")
	seen := make(map[string]bool)
	for _, binding := range m.keymap.BindingsForContext("global") {
		c, ok := m.keymap.GetCommand(binding.Command)
		if !ok || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		writeHelpLine(&b, formatBindingKeys(m.keymap.KeysFor(c.ID, "global")), c.Name)
	}

	if p := m.ActivePlugin(); p != nil {
		byCategory := make(map[plugin.Category][]plugin.Command)
		var order []plugin.Category
		for _, c := range p.Commands() {
			if _, ok := byCategory[c.Category]; !ok {
				order = append(order, c.Category)
			}
			byCategory[c.Category] = append(byCategory[c.Category], c)
		}
		for _, cat := range order {
			b.WriteString("\n")
			b.WriteString(styles.Title.Render(p.Name() + " · " + string(cat)))
			b.WriteString("\n")
			for _, c := range byCategory[cat] {
				writeHelpLine(&b, formatBindingKeys(m.keymap.KeysFor(c.ID, c.Context)), c.Description)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtle.Render("Press ? or esc to close"))
	return b.String()
}

func writeHelpLine(b *strings.Builder, keys, label string) {
	if keys == "" {
		return
	}
	fmt.Fprintf(b, "  %s %s\n", styles.Muted.Render(ui.PadRight(keys, 11)), label)
}

// formatBindingKeys formats multiple keys into a display string.
func formatBindingKeys(keys []string) string {
	switch len(keys) {
	case 0:
		return ""
	case 1:
		return keys[0]
	}
	// Show up to 2 keys
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, ", ")
}
