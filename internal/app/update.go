package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/plugin"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.MouseMsg:
		return m.handleMouseMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case IntroTickMsg:
		if m.intro.Active && !m.intro.Done {
			m.intro.Update(introFrame)
			if !m.intro.Done {
				return m, IntroTick()
			}
		}
		return m, nil

	case TickMsg:
		m.clock = time.Time(message)
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(message.Message, message.Duration, message.IsError)
		return m, nil

	case ErrorMsg:
		m.lastError = message.Err
		m.registry.Context().Logger.Error("app error", "err", message.Err)
		m.ShowToast("Error: "+message.Err.Error(), 5*time.Second, true)
		return m, nil

	case msg.SwitchScreenMsg:
		return m, m.FocusPluginByID(message.ID)

	case ConfigReloadedMsg:
		cmd := m.applyConfig(message.Config)
		return m, tea.Batch(cmd, waitForReload(m.reloads),
			msg.ShowToast("Config reloaded", 2*time.Second))
	}

	// Forward other messages to every plugin so timers reach their owner
	// even when another screen is focused.
	for _, p := range m.registry.Plugins() {
		if _, cmd := p.Update(message); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.updateContext()

	return m, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := k.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		switch m.keymap.Lookup(key, "global") {
		case "toggle-help", "back", "quit":
			m.showHelp = false
		}
		return m, nil
	}

	// Text input contexts: forward every key so typing is not eaten by
	// app shortcuts.
	if m.consumesTextInput() {
		return m.forwardToPlugin(k)
	}

	id := m.keymap.Lookup(key, m.activeContext)
	if cmd, ok := m.runCommand(id); ok {
		return m, cmd
	}
	if cmd := m.keymap.Handle(k, m.activeContext); cmd != nil {
		return m, cmd
	}
	return m.forwardToPlugin(k)
}

// runCommand executes app-level commands that change the model.
func (m *Model) runCommand(id string) (tea.Cmd, bool) {
	switch id {
	case "next-plugin":
		return m.NextPlugin(), true
	case "prev-plugin":
		return m.PrevPlugin(), true
	case "focus-plugin-1":
		return m.SetActivePlugin(0), true
	case "focus-plugin-2":
		return m.SetActivePlugin(1), true
	case "focus-plugin-3":
		return m.SetActivePlugin(2), true
	case "toggle-help":
		m.showHelp = !m.showHelp
		return nil, true
	case "toggle-footer":
		m.showFooter = !m.showFooter
		return nil, true
	}
	return nil, false
}

func (m Model) consumesTextInput() bool {
	if tc, ok := m.ActivePlugin().(plugin.TextInputConsumer); ok {
		return tc.ConsumesTextInput()
	}
	return false
}

// forwardToPlugin sends a message to the active plugin only.
func (m Model) forwardToPlugin(message tea.Msg) (tea.Model, tea.Cmd) {
	p := m.ActivePlugin()
	if p == nil {
		return m, nil
	}
	_, cmd := p.Update(message)
	m.updateContext()
	return m, cmd
}

// handleMouseMsg routes clicks on the tab bar to the app and everything
// else to the active plugin in content coordinates.
func (m Model) handleMouseMsg(mm tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if mm.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return m, nil
	}

	if mm.Y == 0 && mm.Action == tea.MouseActionPress && mm.Button == tea.MouseButtonLeft {
		for i, b := range m.getTabBounds() {
			if mm.X >= b.Start && mm.X < b.End {
				return m, m.SetActivePlugin(i)
			}
		}
		return m, nil
	}

	// Presses outside the content area are dropped. Motion and release
	// still reach the plugin so a drag can end anywhere.
	inContent := mm.Y >= headerHeight && mm.Y < headerHeight+m.contentHeight()
	if mm.Action == tea.MouseActionPress && !inContent {
		return m, nil
	}

	mm.Y -= headerHeight
	return m.forwardToPlugin(mm)
}

// updateContext sets activeContext based on current state.
func (m *Model) updateContext() {
	if p := m.ActivePlugin(); p != nil {
		m.activeContext = p.FocusContext()
	} else {
		m.activeContext = "global"
	}
}
