package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/plugin"
)

// Message types for tea.Cmd
type (
	// TickMsg is sent on each clock tick.
	TickMsg time.Time

	// ErrorMsg represents an error condition.
	ErrorMsg struct {
		Err error
	}

	// ConfigReloadedMsg carries a config re-read after the file changed.
	ConfigReloadedMsg struct {
		Config *config.Config
	}
)

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReportError returns a command to report an error.
func ReportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// waitForReload blocks on the watcher channel and delivers the next config.
// A closed channel ends the loop.
func waitForReload(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// pluginFocused returns a command that tells the new active plugin it has
// focus.
func pluginFocused() tea.Cmd {
	return func() tea.Msg {
		return plugin.PluginFocusedMsg{}
	}
}
