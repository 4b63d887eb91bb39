package config

import "time"

// Screen IDs accepted by UI.StartScreen.
const (
	ScreenNotes = "notes"
	ScreenQuiz  = "quiz"
	ScreenShop  = "shop"
)

const (
	defaultUndoTimeout    = 4 * time.Second
	defaultLongPress      = 500 * time.Millisecond
	defaultBannerInterval = 5 * time.Second
)

// Config is the root configuration structure.
type Config struct {
	Plugins PluginsConfig `json:"plugins"`
	Keymap  KeymapConfig  `json:"keymap"`
	UI      UIConfig      `json:"ui"`
}

// PluginsConfig holds per-screen configuration.
type PluginsConfig struct {
	Notes NotesPluginConfig `json:"notes"`
	Quiz  QuizPluginConfig  `json:"quiz"`
	Shop  ShopPluginConfig  `json:"shop"`
}

// NotesPluginConfig configures the note board.
type NotesPluginConfig struct {
	// UndoTimeout is how long the "Note deleted." prompt stays up.
	UndoTimeout time.Duration `json:"undoTimeout"`
	// LongPress is how long a row must be held before it can be dragged.
	LongPress time.Duration `json:"longPress"`
}

// QuizPluginConfig configures the quiz.
type QuizPluginConfig struct {
	// QuestionsFile is an optional YAML question bank. Empty uses the
	// built-in questions.
	QuestionsFile    string `json:"questionsFile,omitempty"`
	ShowInstructions bool   `json:"showInstructions"`
}

// ShopPluginConfig configures the storefront.
type ShopPluginConfig struct {
	// BannerInterval is the carousel auto-advance period. Zero disables it.
	BannerInterval time.Duration `json:"bannerInterval"`
}

// KeymapConfig holds key binding overrides.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	ShowFooter  bool   `json:"showFooter"`
	StartScreen string `json:"startScreen,omitempty"`
	// Theme names a built-in color theme; Colors overrides single palette
	// entries by name, e.g. {"primary": "#FF79C6"}.
	Theme  string            `json:"theme,omitempty"`
	Colors map[string]string `json:"colors,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Plugins: PluginsConfig{
			Notes: NotesPluginConfig{
				UndoTimeout: defaultUndoTimeout,
				LongPress:   defaultLongPress,
			},
			Quiz: QuizPluginConfig{
				ShowInstructions: true,
			},
			Shop: ShopPluginConfig{
				BannerInterval: defaultBannerInterval,
			},
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			ShowFooter:  true,
			StartScreen: ScreenNotes,
			Theme:       "default",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Plugins.Notes.UndoTimeout <= 0 {
		c.Plugins.Notes.UndoTimeout = defaultUndoTimeout
	}
	if c.Plugins.Notes.LongPress <= 0 {
		c.Plugins.Notes.LongPress = defaultLongPress
	}
	if c.Plugins.Shop.BannerInterval < 0 {
		c.Plugins.Shop.BannerInterval = 0
	}
	switch c.UI.StartScreen {
	case ScreenNotes, ScreenQuiz, ScreenShop:
	default:
		c.UI.StartScreen = ScreenNotes
	}
	return nil
}
