package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// swap points the package at a temp state file and restores the globals
// when the test ends.
func swap(t *testing.T) string {
	t.Helper()
	originalPath := path
	originalCurrent := current
	originalHash := savedHash
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
		savedHash = originalHash
	})

	stateFile := filepath.Join(t.TempDir(), "state.json")
	path = stateFile
	current = &State{Screens: map[string]Bundle{}}
	savedHash = 0
	return stateFile
}

func TestInit(t *testing.T) {
	swap(t)
	tmpDir := t.TempDir()

	if err := InitWithDir(filepath.Join(tmpDir, ".config", "noteboard")); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}
	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if current.Screens == nil {
		t.Error("screens map should be initialized")
	}
	if Path() != filepath.Join(tmpDir, ".config", "noteboard", "state.json") {
		t.Errorf("Path() = %q", Path())
	}
}

func TestLoad_NonExistent(t *testing.T) {
	stateFile := swap(t)
	path = filepath.Join(filepath.Dir(stateFile), "nonexistent", "state.json")

	if err := Load(); err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}
	if got := GetBundle("quiz").GetInt("score", 0); got != 0 {
		t.Errorf("score = %d, want default 0", got)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	stateFile := swap(t)
	if err := os.WriteFile(stateFile, []byte("invalid json"), 0644); err != nil {
		t.Fatalf("failed to write invalid JSON: %v", err)
	}
	if err := Load(); err == nil {
		t.Error("Load() should return error for invalid JSON")
	}
}

func TestBundle_Defaults(t *testing.T) {
	b := NewBundle()
	if got := b.GetInt("selected_answer", -1); got != -1 {
		t.Errorf("GetInt default = %d, want -1", got)
	}
	if got := b.GetString("player_name", "Player"); got != "Player" {
		t.Errorf("GetString default = %q, want Player", got)
	}
	if !b.Empty() {
		t.Error("new bundle should be empty")
	}

	var zero Bundle
	zero.PutInt("score", 0)
	zero.PutString("player_name", "")
	if got := zero.GetInt("score", 9); got != 0 {
		t.Errorf("stored zero should win over default, got %d", got)
	}
	if got := zero.GetString("player_name", "Player"); got != "" {
		t.Errorf("stored empty string should win over default, got %q", got)
	}
}

func TestSetBundle_RoundTrip(t *testing.T) {
	stateFile := swap(t)

	b := NewBundle()
	b.PutInt("current_question", 3)
	b.PutInt("score", 2)
	b.PutInt("selected_answer", 1)
	b.PutString("player_name", "Ada")
	if err := SetBundle("quiz", b); err != nil {
		t.Fatalf("SetBundle() failed: %v", err)
	}

	// Simulate a fresh process
	current = nil
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	got := GetBundle("quiz")
	tests := []struct {
		key  string
		want int
	}{
		{"current_question", 3},
		{"score", 2},
		{"selected_answer", 1},
	}
	for _, tt := range tests {
		if v := got.GetInt(tt.key, -99); v != tt.want {
			t.Errorf("%s = %d, want %d", tt.key, v, tt.want)
		}
	}
	if name := got.GetString("player_name", ""); name != "Ada" {
		t.Errorf("player_name = %q, want Ada", name)
	}

	data, _ := os.ReadFile(stateFile)
	var raw State
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not valid JSON: %v", err)
	}
	if raw.Screens["quiz"].Ints["score"] != 2 {
		t.Errorf("saved score = %d, want 2", raw.Screens["quiz"].Ints["score"])
	}
}

func TestGetBundle_ReturnsCopy(t *testing.T) {
	swap(t)
	b := NewBundle()
	b.PutInt("score", 1)
	if err := SetBundle("quiz", b); err != nil {
		t.Fatal(err)
	}

	got := GetBundle("quiz")
	got.PutInt("score", 5)
	if GetBundle("quiz").GetInt("score", 0) != 1 {
		t.Error("mutating a returned bundle must not change stored state")
	}
}

func TestClearBundle(t *testing.T) {
	swap(t)
	b := NewBundle()
	b.PutInt("score", 4)
	_ = SetBundle("quiz", b)

	if err := ClearBundle("quiz"); err != nil {
		t.Fatalf("ClearBundle() failed: %v", err)
	}
	if !GetBundle("quiz").Empty() {
		t.Error("bundle should be empty after clear")
	}
}

func TestSave_CreateDirectories(t *testing.T) {
	stateFile := swap(t)
	path = filepath.Join(filepath.Dir(stateFile), "deep", "nested", "noteboard", "state.json")

	if err := SetLastScreen("quiz"); err != nil {
		t.Fatalf("SetLastScreen() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("state file not created: %v", err)
	}
}

func TestSave_SkipsUnchanged(t *testing.T) {
	stateFile := swap(t)

	if err := SetLastScreen("notes"); err != nil {
		t.Fatal(err)
	}
	// Tamper with the file; an unchanged save must not rewrite it.
	if err := os.WriteFile(stateFile, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Save(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(stateFile)
	if string(data) != "{}" {
		t.Error("unchanged state should not be rewritten")
	}

	if err := SetLastScreen("quiz"); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(stateFile)
	if string(data) == "{}" {
		t.Error("changed state should be written")
	}
}

func TestSave_NilCurrent(t *testing.T) {
	swap(t)
	current = nil
	path = "/tmp/nonexistent/state.json"

	if err := Save(); err != nil {
		t.Fatalf("Save() with nil current should not error, got %v", err)
	}
}

func TestLastScreen(t *testing.T) {
	swap(t)
	current = nil
	if GetLastScreen() != "" {
		t.Error("nil state should have no last screen")
	}
	if err := SetLastScreen("shop"); err != nil {
		t.Fatal(err)
	}
	if GetLastScreen() != "shop" {
		t.Errorf("GetLastScreen() = %q, want shop", GetLastScreen())
	}
}

func TestConcurrentAccess(t *testing.T) {
	swap(t)

	var wg sync.WaitGroup
	errs := make(chan error, 10)

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b := NewBundle()
			b.PutInt("score", n)
			if err := SetBundle("quiz", b); err != nil {
				errs <- err
			}
		}(i)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = GetBundle("quiz")
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent access error: %v", err)
		}
	}
}
