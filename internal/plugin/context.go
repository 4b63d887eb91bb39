package plugin

import (
	"log/slog"

	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/keymap"
)

// Context carries shared services handed to every plugin at Init.
type Context struct {
	Config *config.Config
	Logger *slog.Logger
	Keymap *keymap.Registry

	// Epoch increments whenever the registry re-initialises its plugins.
	// Async messages carrying an older epoch are dropped.
	Epoch uint64
}

// NewContext returns a context with default config, a discard logger and
// the default keymap for whatever is not given.
func NewContext(cfg *config.Config, logger *slog.Logger) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Context{Config: cfg, Logger: logger, Keymap: keymap.NewRegistry()}
}
