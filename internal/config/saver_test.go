package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSave_PreservesUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	// Write a config file that includes keys not managed by Save
	initial := []byte(`{
  "themes": [
    {"name": "dusk", "primary": "#7C3AED"}
  ],
  "customKey": "should survive"
}`)
	if err := os.WriteFile(path, initial, 0644); err != nil {
		t.Fatal(err)
	}

	// Point Save() at our temp file
	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	cfg := Default()
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal saved config: %v", err)
	}

	if _, ok := raw["themes"]; !ok {
		t.Error("Save() deleted 'themes' key from config.json")
	}
	if _, ok := raw["customKey"]; !ok {
		t.Error("Save() deleted 'customKey' from config.json")
	}

	var themes []map[string]interface{}
	if err := json.Unmarshal(raw["themes"], &themes); err != nil {
		t.Fatalf("unmarshal themes: %v", err)
	}
	if len(themes) != 1 || themes[0]["name"] != "dusk" {
		t.Errorf("themes not intact: %v", themes)
	}

	// Verify managed keys are also present
	for _, key := range []string{"plugins", "keymap", "ui"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Save() did not write %q key", key)
		}
	}
}

func TestSave_WorksWithNoExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	SetTestConfigPath(path)
	defer ResetTestConfigPath()

	cfg := Default()
	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if _, ok := raw["plugins"]; !ok {
		t.Error("missing 'plugins' key")
	}
}

func TestSave_LoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Plugins.Notes.UndoTimeout = 7 * time.Second
	cfg.Plugins.Quiz.ShowInstructions = false
	cfg.UI.StartScreen = ScreenShop
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if got.Plugins.Notes.UndoTimeout != 7*time.Second {
		t.Errorf("undo timeout = %v, want 7s", got.Plugins.Notes.UndoTimeout)
	}
	if got.Plugins.Quiz.ShowInstructions {
		t.Error("showInstructions should round-trip as false")
	}
	if got.UI.StartScreen != ScreenShop {
		t.Errorf("start screen = %q, want shop", got.UI.StartScreen)
	}
}

func TestSave_InvalidExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := SaveTo(path, Default()); err == nil {
		t.Error("SaveTo should refuse to clobber an unparseable config")
	}
}

func TestSaveTo_EmptyPath(t *testing.T) {
	if err := SaveTo("", Default()); err == nil {
		t.Error("SaveTo with empty path should error")
	}
}
