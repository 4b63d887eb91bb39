package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// State holds values that survive a suspend/resume of the app.
type State struct {
	// Last screen the user was on, restored at startup.
	LastScreen string `json:"lastScreen,omitempty"`

	// Per-screen instance state, keyed by screen ID.
	Screens map[string]Bundle `json:"screens,omitempty"`
}

// Bundle is a flat record of scalars a screen saves before it is suspended
// and reads back when it resumes.
type Bundle struct {
	Ints    map[string]int    `json:"ints,omitempty"`
	Strings map[string]string `json:"strings,omitempty"`
}

// NewBundle returns an empty bundle ready for writes.
func NewBundle() Bundle {
	return Bundle{Ints: map[string]int{}, Strings: map[string]string{}}
}

// GetInt returns the saved int for key, or def when absent.
func (b Bundle) GetInt(key string, def int) int {
	if v, ok := b.Ints[key]; ok {
		return v
	}
	return def
}

// PutInt stores an int.
func (b *Bundle) PutInt(key string, v int) {
	if b.Ints == nil {
		b.Ints = map[string]int{}
	}
	b.Ints[key] = v
}

// GetString returns the saved string for key, or def when absent.
func (b Bundle) GetString(key, def string) string {
	if v, ok := b.Strings[key]; ok {
		return v
	}
	return def
}

// PutString stores a string.
func (b *Bundle) PutString(key, v string) {
	if b.Strings == nil {
		b.Strings = map[string]string{}
	}
	b.Strings[key] = v
}

// Empty reports whether nothing was saved.
func (b Bundle) Empty() bool {
	return len(b.Ints) == 0 && len(b.Strings) == 0
}

func (b Bundle) clone() Bundle {
	out := NewBundle()
	for k, v := range b.Ints {
		out.Ints[k] = v
	}
	for k, v := range b.Strings {
		out.Strings[k] = v
	}
	return out
}

var (
	current   *State
	mu        sync.RWMutex
	path      string
	savedHash uint64
)

// Init loads state from the default location.
func Init() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitWithDir(filepath.Join(home, ".config", "noteboard"))
}

// InitWithDir loads state from a specified directory.
// This is primarily for testing to avoid reading real user state.
func InitWithDir(dir string) error {
	path = filepath.Join(dir, "state.json")
	return Load()
}

// Path returns the state file location.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return path
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{Screens: map[string]Bundle{}}
	savedHash = 0

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, current); err != nil {
		return err
	}
	if current.Screens == nil {
		current.Screens = map[string]Bundle{}
	}
	return nil
}

// Save writes state to disk. Unchanged content is not rewritten.
func Save() error {
	mu.Lock()
	defer mu.Unlock()

	if current == nil || path == "" {
		return nil
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}
	sum := xxhash.Sum64(data)
	if sum == savedHash {
		return nil
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	savedHash = sum
	return nil
}

// GetBundle returns a copy of the screen's saved bundle. A screen that
// never saved gets an empty bundle, so every lookup falls back to its
// default.
func GetBundle(screen string) Bundle {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return NewBundle()
	}
	b, ok := current.Screens[screen]
	if !ok {
		return NewBundle()
	}
	return b.clone()
}

// SetBundle stores the screen's bundle and persists it.
func SetBundle(screen string, b Bundle) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	if current.Screens == nil {
		current.Screens = map[string]Bundle{}
	}
	current.Screens[screen] = b.clone()
	mu.Unlock()
	return Save()
}

// ClearBundle forgets the screen's saved state.
func ClearBundle(screen string) error {
	mu.Lock()
	if current == nil || current.Screens == nil {
		mu.Unlock()
		return nil
	}
	delete(current.Screens, screen)
	mu.Unlock()
	return Save()
}

// GetLastScreen returns the screen that was active at the last suspend.
func GetLastScreen() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.LastScreen
}

// SetLastScreen records the active screen.
func SetLastScreen(screen string) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LastScreen = screen
	mu.Unlock()
	return Save()
}
