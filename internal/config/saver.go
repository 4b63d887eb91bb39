package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary that uses string durations.
type saveConfig struct {
	Plugins savePluginsConfig `json:"plugins"`
	Keymap  KeymapConfig      `json:"keymap"`
	UI      UIConfig          `json:"ui"`
}

type savePluginsConfig struct {
	Notes saveNotesConfig `json:"notes"`
	Quiz  saveQuizConfig  `json:"quiz"`
	Shop  saveShopConfig  `json:"shop"`
}

type saveNotesConfig struct {
	UndoTimeout string `json:"undoTimeout,omitempty"`
	LongPress   string `json:"longPress,omitempty"`
}

type saveQuizConfig struct {
	QuestionsFile    string `json:"questionsFile,omitempty"`
	ShowInstructions *bool  `json:"showInstructions,omitempty"`
}

type saveShopConfig struct {
	BannerInterval string `json:"bannerInterval,omitempty"`
}

// toSaveConfig converts Config to the JSON-serializable format.
func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Plugins: savePluginsConfig{
			Notes: saveNotesConfig{
				UndoTimeout: cfg.Plugins.Notes.UndoTimeout.String(),
				LongPress:   cfg.Plugins.Notes.LongPress.String(),
			},
			Quiz: saveQuizConfig{
				QuestionsFile:    cfg.Plugins.Quiz.QuestionsFile,
				ShowInstructions: &cfg.Plugins.Quiz.ShowInstructions,
			},
			Shop: saveShopConfig{
				BannerInterval: cfg.Plugins.Shop.BannerInterval.String(),
			},
		},
		Keymap: cfg.Keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config to ~/.config/noteboard/config.json, keeping any
// top-level keys it does not manage.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path.
func SaveTo(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("save config: no config path")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	merged := map[string]json.RawMessage{}
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &merged); err != nil {
			return fmt.Errorf("parse existing config: %w", err)
		}
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var managedKeys map[string]json.RawMessage
	if err := json.Unmarshal(managed, &managedKeys); err != nil {
		return err
	}
	for k, v := range managedKeys {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
