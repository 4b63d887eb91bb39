package plugin

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/state"
)

// Registry owns the set of plugins and their lifecycle.
type Registry struct {
	mu          sync.RWMutex
	ctx         *Context
	plugins     []Plugin
	unavailable map[string]string // plugin ID -> reason
}

// NewRegistry creates a registry bound to ctx.
func NewRegistry(ctx *Context) *Registry {
	return &Registry{
		ctx:         ctx,
		unavailable: make(map[string]string),
	}
}

// Context returns the shared plugin context.
func (r *Registry) Context() *Context {
	return r.ctx
}

// Register initialises p and adds it to the registry. Plugins whose Init
// fails are recorded as unavailable instead of aborting startup.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.plugins {
		if existing.ID() == p.ID() {
			return fmt.Errorf("plugin %q already registered", p.ID())
		}
	}

	if err := p.Init(r.ctx); err != nil {
		r.unavailable[p.ID()] = err.Error()
		r.ctx.Logger.Warn("plugin unavailable", "plugin", p.ID(), "err", err)
		return nil
	}

	if s, ok := p.(InstanceStater); ok {
		s.RestoreInstanceState(state.GetBundle(p.ID()))
	}

	r.plugins = append(r.plugins, p)
	return nil
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Plugin, len(r.plugins))
	copy(out, r.plugins)
	return out
}

// Get returns the plugin with the given ID.
func (r *Registry) Get(id string) Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plugins {
		if p.ID() == id {
			return p
		}
	}
	return nil
}

// Unavailable returns plugins that failed to initialise, with reasons.
func (r *Registry) Unavailable() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.unavailable))
	for k, v := range r.unavailable {
		out[k] = v
	}
	return out
}

// Start starts every plugin and returns their initial commands.
func (r *Registry) Start() []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range r.Plugins() {
		cmds = append(cmds, p.Start())
	}
	return cmds
}

// SaveState persists the instance state of every plugin that keeps one.
func (r *Registry) SaveState() error {
	var firstErr error
	for _, p := range r.Plugins() {
		s, ok := p.(InstanceStater)
		if !ok {
			continue
		}
		if err := state.SetBundle(p.ID(), s.SaveInstanceState()); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("save %s state: %w", p.ID(), err)
		}
	}
	return firstErr
}

// Stop saves instance state and stops every plugin.
func (r *Registry) Stop() {
	if err := r.SaveState(); err != nil {
		r.ctx.Logger.Error("save plugin state", "err", err)
	}
	for _, p := range r.Plugins() {
		p.Stop()
	}
}

// Reinit rebuilds every plugin from cfg, carrying instance state across.
// The epoch increments so ticks scheduled before the reinit are dropped.
func (r *Registry) Reinit(cfg *config.Config) []tea.Cmd {
	if err := r.SaveState(); err != nil {
		r.ctx.Logger.Error("save plugin state", "err", err)
	}

	r.mu.Lock()
	r.ctx.Config = cfg
	r.ctx.Epoch++
	plugins := make([]Plugin, len(r.plugins))
	copy(plugins, r.plugins)
	r.mu.Unlock()

	var cmds []tea.Cmd
	for _, p := range plugins {
		p.Stop()
		if err := p.Init(r.ctx); err != nil {
			r.ctx.Logger.Warn("plugin reinit failed", "plugin", p.ID(), "err", err)
			continue
		}
		if s, ok := p.(InstanceStater); ok {
			s.RestoreInstanceState(state.GetBundle(p.ID()))
		}
		cmds = append(cmds, p.Start())
	}
	return cmds
}
