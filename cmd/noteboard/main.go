// Package main runs the noteboard terminal app.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/marcus/noteboard/internal/app"
	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/plugins/notes"
	"github.com/marcus/noteboard/internal/plugins/quiz"
	"github.com/marcus/noteboard/internal/plugins/shop"
	"github.com/marcus/noteboard/internal/state"
	"github.com/marcus/noteboard/internal/styles"
)

// Version is set at build time via ldflags
var Version = ""

const logFile = "noteboard.log"

type options struct {
	configPath string
	screen     string
	debug      bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "noteboard",
		Short: "A terminal note board with a quiz and a storefront",
		Long: `noteboard is a mouse-aware terminal app with three screens:
a note board where notes can be dragged into the trash and restored,
a short multiple-choice quiz, and a storefront home page.`,
		Example: `noteboard --screen quiz`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&opts.screen, "screen", "", "screen to open (notes, quiz, shop)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.AddCommand(configCmd(opts))

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(effectiveVersion(Version)),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := resolveConfigPath(opts.configPath)
			if path == "" {
				return fmt.Errorf("cannot determine config path")
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.SaveTo(path, config.Default()); err != nil {
				return fmt.Errorf("write config: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), resolveConfigPath(opts.configPath))
			return nil
		},
	})

	return cmd
}

func run(ctx context.Context, opts *options) error {
	switch opts.screen {
	case "", config.ScreenNotes, config.ScreenQuiz, config.ScreenShop:
	default:
		return fmt.Errorf("unknown screen %q", opts.screen)
	}

	logger, closeLog := setupLogger(opts.debug)
	defer closeLog()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	styles.ApplyTheme(cfg.UI.Theme, cfg.UI.Colors)

	// State is optional; a missing or corrupt file starts fresh.
	if err := state.Init(); err != nil {
		logger.Warn("state load failed", "err", err)
	}

	registry := plugin.NewRegistry(plugin.NewContext(cfg, logger))

	// Registration order is tab order.
	for _, p := range []plugin.Plugin{notes.New(), quiz.New(), shop.New()} {
		if err := registry.Register(p); err != nil {
			logger.Warn("plugin unavailable", "plugin", p.ID(), "err", err)
		}
	}

	var reloads <-chan *config.Config
	if path := resolveConfigPath(opts.configPath); path != "" {
		ch, watcher, err := config.Watch(path)
		if err != nil {
			logger.Debug("config watch disabled", "path", path, "err", err)
		} else {
			reloads = ch
			defer func() { _ = watcher.Close() }()
		}
	}

	model := app.New(registry, cfg, initialScreen(opts.screen, cfg), reloads)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	registry.Stop()
	if runErr != nil {
		return fmt.Errorf("error running application: %w", runErr)
	}
	return nil
}

// initialScreen picks the flag, then the last screen used, then config.
func initialScreen(flagScreen string, cfg *config.Config) string {
	if flagScreen != "" {
		return flagScreen
	}
	if last := state.GetLastScreen(); last != "" {
		return last
	}
	return cfg.UI.StartScreen
}

// setupLogger writes to a file beside the config. The terminal belongs to
// the TUI, so a log that cannot be opened is discarded.
func setupLogger(debugLog bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if debugLog {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	closer := func() {}
	if dir := config.Dir(); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				w = f
				closer = func() { _ = f.Close() }
			}
		}
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func resolveConfigPath(path string) string {
	if path != "" {
		return config.ExpandPath(path)
	}
	return config.ConfigPath()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision == "" {
		return "devel"
	}
	ver := "devel+" + revision
	if len(ver) > 20 {
		ver = ver[:20]
	}
	if dirty {
		ver += "+dirty"
	}
	return ver
}
