package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/state"
	"github.com/marcus/noteboard/internal/styles"
)

const appName = "noteboard"

// TabBounds represents the X position range of a tab for mouse hit testing.
type TabBounds struct {
	Start, End int
}

// Model is the root Bubble Tea model for the noteboard application.
type Model struct {
	// Configuration
	cfg     *config.Config
	reloads <-chan *config.Config

	// Plugin management
	registry     *plugin.Registry
	activePlugin int

	// Keymap
	keymap        *keymap.Registry
	activeContext string

	// UI state
	width, height int
	showHelp      bool
	showFooter    bool
	clock         time.Time

	// Status/toast messages
	statusMsg     string
	statusExpiry  time.Time
	statusIsError bool

	// Error handling
	lastError error

	// Ready state
	ready bool

	// Intro animation
	intro IntroModel
}

// New creates a new application model. initialScreen optionally names the
// plugin to focus on startup; reloads, when non-nil, delivers config
// changes from a watcher.
func New(reg *plugin.Registry, cfg *config.Config, initialScreen string, reloads <-chan *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	km := reg.Context().Keymap
	km.ApplyOverrides(cfg.Keymap.Overrides)
	registerCommands(km)

	m := Model{
		cfg:           cfg,
		reloads:       reloads,
		registry:      reg,
		keymap:        km,
		activeContext: "global",
		showFooter:    cfg.UI.ShowFooter,
		clock:         time.Now(),
		intro:         NewIntroModel(appName),
	}

	for i, p := range reg.Plugins() {
		if p.ID() == initialScreen {
			m.activePlugin = i
			break
		}
	}
	if p := m.ActivePlugin(); p != nil {
		p.SetFocused(true)
		m.activeContext = p.FocusContext()
	}
	return m
}

// registerCommands declares the app-level commands. Quit has a handler;
// the rest change the model and are run by runCommand.
func registerCommands(km *keymap.Registry) {
	for _, c := range []keymap.Command{
		{ID: "quit", Name: "Quit", Context: "global", Handler: func() tea.Cmd { return tea.Quit }},
		{ID: "next-plugin", Name: "Next screen", Context: "global"},
		{ID: "prev-plugin", Name: "Previous screen", Context: "global"},
		{ID: "focus-plugin-1", Name: "Notes", Context: "global"},
		{ID: "focus-plugin-2", Name: "Quiz", Context: "global"},
		{ID: "focus-plugin-3", Name: "Shop", Context: "global"},
		{ID: "toggle-help", Name: "Help", Context: "global"},
		{ID: "toggle-footer", Name: "Footer", Context: "global"},
	} {
		km.RegisterCommand(c)
	}
}

// Init initializes the model and returns initial commands.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), IntroTick(), waitForReload(m.reloads)}

	// Start all registered plugins
	cmds = append(cmds, m.registry.Start()...)
	return tea.Batch(cmds...)
}

// ActivePlugin returns the currently active plugin.
func (m Model) ActivePlugin() plugin.Plugin {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return nil
	}
	if m.activePlugin >= len(plugins) {
		m.activePlugin = 0
	}
	return plugins[m.activePlugin]
}

// SetActivePlugin sets the active plugin by index and returns a command
// to notify the plugin it has been focused. Switching saves every
// plugin's instance state and remembers the new screen.
func (m *Model) SetActivePlugin(idx int) tea.Cmd {
	plugins := m.registry.Plugins()
	if idx < 0 || idx >= len(plugins) || idx == m.activePlugin {
		return nil
	}

	if current := m.ActivePlugin(); current != nil {
		current.SetFocused(false)
	}
	if err := m.registry.SaveState(); err != nil {
		m.registry.Context().Logger.Warn("save state on switch", "err", err)
	}

	m.activePlugin = idx
	next := m.ActivePlugin()
	next.SetFocused(true)
	m.activeContext = next.FocusContext()
	if err := state.SetLastScreen(next.ID()); err != nil {
		m.registry.Context().Logger.Warn("save last screen", "err", err)
	}
	return pluginFocused()
}

// NextPlugin switches to the next plugin.
func (m *Model) NextPlugin() tea.Cmd {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return nil
	}
	return m.SetActivePlugin((m.activePlugin + 1) % len(plugins))
}

// PrevPlugin switches to the previous plugin.
func (m *Model) PrevPlugin() tea.Cmd {
	plugins := m.registry.Plugins()
	if len(plugins) == 0 {
		return nil
	}
	idx := m.activePlugin - 1
	if idx < 0 {
		idx = len(plugins) - 1
	}
	return m.SetActivePlugin(idx)
}

// FocusPluginByID switches to a plugin by its ID.
func (m *Model) FocusPluginByID(id string) tea.Cmd {
	for i, p := range m.registry.Plugins() {
		if p.ID() == id {
			return m.SetActivePlugin(i)
		}
	}
	return nil
}

// ShowToast displays a temporary status message.
func (m *Model) ShowToast(msg string, duration time.Duration, isError bool) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(duration)
	m.statusIsError = isError
}

// ClearToast clears any expired toast message.
func (m *Model) ClearToast() {
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsError = false
	}
}

// applyConfig swaps in a reloaded config and rebuilds the plugins.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	m.cfg = cfg
	m.keymap.ApplyOverrides(cfg.Keymap.Overrides)
	m.showFooter = cfg.UI.ShowFooter
	styles.ApplyTheme(cfg.UI.Theme, cfg.UI.Colors)

	cmds := m.registry.Reinit(cfg)
	if p := m.ActivePlugin(); p != nil {
		p.SetFocused(true)
	}
	m.updateContext()
	m.registry.Context().Logger.Info("config reloaded")
	return tea.Batch(cmds...)
}
