package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/noteboard/internal/config"
	"github.com/marcus/noteboard/internal/state"
)

func TestInitialScreen(t *testing.T) {
	if err := state.InitWithDir(t.TempDir()); err != nil {
		t.Fatalf("init state: %v", err)
	}
	cfg := config.Default()
	cfg.UI.StartScreen = config.ScreenShop

	if got := initialScreen("", cfg); got != config.ScreenShop {
		t.Errorf("no flag, no state: got %q, want %q", got, config.ScreenShop)
	}

	if err := state.SetLastScreen(config.ScreenQuiz); err != nil {
		t.Fatalf("set last screen: %v", err)
	}
	if got := initialScreen("", cfg); got != config.ScreenQuiz {
		t.Errorf("last screen: got %q, want %q", got, config.ScreenQuiz)
	}
	if got := initialScreen(config.ScreenNotes, cfg); got != config.ScreenNotes {
		t.Errorf("flag: got %q, want %q", got, config.ScreenNotes)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	opts := &options{}

	var out bytes.Buffer
	cmd := configCmd(opts)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("printed %q, want %q", out.String(), path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if _, err := config.LoadFrom(path); err != nil {
		t.Fatalf("written config does not load: %v", err)
	}

	cmd = configCmd(opts)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"init", "--config", path})
	if err := cmd.Execute(); err == nil {
		t.Error("second init should refuse to overwrite")
	}

	out.Reset()
	cmd = configCmd(opts)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"path", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("path printed %q, want %q", out.String(), path)
	}
}

func TestEffectiveVersion(t *testing.T) {
	if got := effectiveVersion("v1.2.3"); got != "v1.2.3" {
		t.Errorf("got %q, want v1.2.3", got)
	}
	if got := effectiveVersion(""); got == "" {
		t.Error("fallback version should not be empty")
	}
}
