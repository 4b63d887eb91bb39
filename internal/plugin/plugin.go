package plugin

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/state"
)

// Plugin defines the interface for every noteboard screen.
type Plugin interface {
	ID() string
	Name() string
	Icon() string
	Init(ctx *Context) error
	Start() tea.Cmd
	Stop()
	Update(msg tea.Msg) (Plugin, tea.Cmd)
	View(width, height int) string
	IsFocused() bool
	SetFocused(bool)
	Commands() []Command
	FocusContext() string
}

// TextInputConsumer is an optional capability for plugins that need
// alphanumeric key input to be forwarded as typed text instead of being
// intercepted by app-level shortcuts.
type TextInputConsumer interface {
	ConsumesTextInput() bool
}

// InstanceStater is implemented by plugins that keep transient state
// across a suspend/resume of the app. SaveInstanceState is called when the
// app suspends or the plugin is replaced. RestoreInstanceState is called
// once after Init with whatever was saved last time; an empty bundle means
// a fresh start.
type InstanceStater interface {
	SaveInstanceState() state.Bundle
	RestoreInstanceState(b state.Bundle)
}

// Category represents a logical grouping of commands for the help overlay.
type Category string

const (
	CategoryNavigation Category = "Navigation"
	CategoryActions    Category = "Actions"
	CategoryEdit       Category = "Edit"
	CategorySystem     Category = "System"
)

// Command represents a keybinding command exposed by a plugin.
type Command struct {
	ID          string         // Unique identifier (e.g., "delete-note")
	Name        string         // Short name for footer (e.g., "Delete")
	Description string         // Full description for help
	Category    Category       // Logical grouping for help display
	Handler     func() tea.Cmd // Action to execute (optional)
	Context     string         // Activation context
	Priority    int            // Footer display priority: 1=highest, 0=default (treated as 99)
}

// PluginFocusedMsg is sent to a plugin when it becomes the active plugin.
// Plugins can use this to refresh data or update their state on focus.
type PluginFocusedMsg struct{}

// EpochMessage is implemented by async messages that need staleness detection.
// Messages from timers and other async operations should embed an Epoch
// field and implement this interface.
type EpochMessage interface {
	GetEpoch() uint64
}

// IsStale returns true if the message's epoch doesn't match the current context epoch.
// Use this in Update() handlers to discard ticks scheduled before a restart:
//
//	if plugin.IsStale(p.ctx, msg) { return p, nil }
func IsStale(ctx *Context, msg EpochMessage) bool {
	return ctx != nil && msg.GetEpoch() != ctx.Epoch
}
