package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	configDir  = ".config/noteboard"
	configFile = "config.json"
)

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// SetTestConfigPath points ConfigPath at path for the duration of a test.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Plugins rawPluginsConfig `json:"plugins"`
	Keymap  KeymapConfig     `json:"keymap"`
	UI      rawUIConfig      `json:"ui"`
}

type rawPluginsConfig struct {
	Notes rawNotesConfig `json:"notes"`
	Quiz  rawQuizConfig  `json:"quiz"`
	Shop  rawShopConfig  `json:"shop"`
}

type rawNotesConfig struct {
	UndoTimeout string `json:"undoTimeout"`
	LongPress   string `json:"longPress"`
}

type rawQuizConfig struct {
	QuestionsFile    string `json:"questionsFile"`
	ShowInstructions *bool  `json:"showInstructions"`
}

type rawShopConfig struct {
	BannerInterval string `json:"bannerInterval"`
}

type rawUIConfig struct {
	ShowFooter  *bool             `json:"showFooter"`
	StartScreen string            `json:"startScreen"`
	Theme       string            `json:"theme"`
	Colors      map[string]string `json:"colors"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/noteboard/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil // Return defaults on error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// Merge raw config into defaults
	mergeConfig(cfg, &raw)

	cfg.Plugins.Quiz.QuestionsFile = ExpandPath(cfg.Plugins.Quiz.QuestionsFile)
	if f := cfg.Plugins.Quiz.QuestionsFile; f != "" {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			slog.Warn("quiz questions file not found", "path", f)
		}
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Notes
	mergeDuration(&cfg.Plugins.Notes.UndoTimeout, raw.Plugins.Notes.UndoTimeout, "plugins.notes.undoTimeout")
	mergeDuration(&cfg.Plugins.Notes.LongPress, raw.Plugins.Notes.LongPress, "plugins.notes.longPress")

	// Quiz
	if raw.Plugins.Quiz.QuestionsFile != "" {
		cfg.Plugins.Quiz.QuestionsFile = raw.Plugins.Quiz.QuestionsFile
	}
	if raw.Plugins.Quiz.ShowInstructions != nil {
		cfg.Plugins.Quiz.ShowInstructions = *raw.Plugins.Quiz.ShowInstructions
	}

	// Shop
	mergeDuration(&cfg.Plugins.Shop.BannerInterval, raw.Plugins.Shop.BannerInterval, "plugins.shop.bannerInterval")

	// Keymap
	if raw.Keymap.Overrides != nil {
		for k, v := range raw.Keymap.Overrides {
			cfg.Keymap.Overrides[k] = v
		}
	}

	// UI
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.StartScreen != "" {
		cfg.UI.StartScreen = raw.UI.StartScreen
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
	if len(raw.UI.Colors) > 0 {
		cfg.UI.Colors = raw.UI.Colors
	}
}

func mergeDuration(dst *time.Duration, s, field string) {
	if s == "" {
		return
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		slog.Warn("ignoring invalid duration", "field", field, "value", s, "err", err)
		return
	}
	*dst = d
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// Dir returns the directory holding config, state and logs.
func Dir() string {
	p := ConfigPath()
	if p == "" {
		return ""
	}
	return filepath.Dir(p)
}
