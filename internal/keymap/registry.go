package keymap

import (
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Command is an action a binding can trigger.
type Command struct {
	ID      string
	Name    string
	Context string
	Handler func() tea.Cmd
}

// Registry resolves keys to commands per context. Bindings in a specific
// context shadow global ones.
type Registry struct {
	mu        sync.RWMutex
	bindings  []Binding
	commands  map[string]Command
	overrides map[string]string // key -> command, applied in every context
}

// NewRegistry creates a registry loaded with DefaultBindings.
func NewRegistry() *Registry {
	return &Registry{
		bindings:  DefaultBindings(),
		commands:  make(map[string]Command),
		overrides: make(map[string]string),
	}
}

// RegisterCommand makes a command available to Handle.
func (r *Registry) RegisterCommand(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd.ID] = cmd
}

// GetCommand returns a registered command by ID.
func (r *Registry) GetCommand(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.commands[id]
	return c, ok
}

// SetOverride binds key to command ahead of the default table.
func (r *Registry) SetOverride(key, command string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[key] = command
}

// ApplyOverrides replaces all overrides with m.
func (r *Registry) ApplyOverrides(m map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides = make(map[string]string, len(m))
	for k, v := range m {
		r.overrides[k] = v
	}
}

// Lookup returns the command bound to key in context, falling back to the
// global context. The empty string means unbound.
func (r *Registry) Lookup(key, context string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.overrides[key]; ok {
		return c
	}
	for _, b := range r.bindings {
		if b.Context == context && b.Key == key {
			return b.Command
		}
	}
	for _, b := range r.bindings {
		if b.Context == "global" && b.Key == key {
			return b.Command
		}
	}
	return ""
}

// Handle runs the handler of the command bound to msg in context, if any.
func (r *Registry) Handle(msg tea.KeyMsg, context string) tea.Cmd {
	id := r.Lookup(msg.String(), context)
	if id == "" {
		return nil
	}
	cmd, ok := r.GetCommand(id)
	if !ok || cmd.Handler == nil {
		return nil
	}
	return cmd.Handler()
}

// BindingsForContext returns the bindings declared for context, sorted by key.
func (r *Registry) BindingsForContext(context string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Binding
	for _, b := range r.bindings {
		if b.Context == context {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// KeysFor returns every key bound to command in context, overrides first.
func (r *Registry) KeysFor(command, context string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var keys []string
	for k, c := range r.overrides {
		if c == command {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, b := range r.bindings {
		if b.Context == context && b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}
