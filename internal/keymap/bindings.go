package keymap

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: "quit", Context: "global"},
		{Key: "ctrl+c", Command: "quit", Context: "global"},
		{Key: "`", Command: "next-plugin", Context: "global"},
		{Key: "~", Command: "prev-plugin", Context: "global"},
		{Key: "1", Command: "focus-plugin-1", Context: "global"},
		{Key: "2", Command: "focus-plugin-2", Context: "global"},
		{Key: "3", Command: "focus-plugin-3", Context: "global"},
		{Key: "?", Command: "toggle-help", Context: "global"},
		{Key: "ctrl+h", Command: "toggle-footer", Context: "global"},
		{Key: "j", Command: "cursor-down", Context: "global"},
		{Key: "down", Command: "cursor-down", Context: "global"},
		{Key: "k", Command: "cursor-up", Context: "global"},
		{Key: "up", Command: "cursor-up", Context: "global"},
		{Key: "enter", Command: "select", Context: "global"},
		{Key: "esc", Command: "back", Context: "global"},

		// Notes board (list focused)
		{Key: "tab", Command: "focus-input", Context: "notes"},
		{Key: "i", Command: "focus-input", Context: "notes"},
		{Key: "d", Command: "delete-note", Context: "notes"},
		{Key: "u", Command: "undo-delete", Context: "notes"},
		{Key: "m", Command: "move-to-trash", Context: "notes"},
		{Key: "y", Command: "yank-note", Context: "notes"},

		// Notes board (input focused)
		{Key: "enter", Command: "add-note", Context: "notes-input"},
		{Key: "tab", Command: "focus-list", Context: "notes-input"},
		{Key: "esc", Command: "focus-list", Context: "notes-input"},

		// Notes board (keyboard drag in progress)
		{Key: "enter", Command: "drop-note", Context: "notes-drag"},
		{Key: "esc", Command: "cancel-drag", Context: "notes-drag"},
		{Key: "left", Command: "drag-left", Context: "notes-drag"},
		{Key: "right", Command: "drag-right", Context: "notes-drag"},
		{Key: "up", Command: "drag-up", Context: "notes-drag"},
		{Key: "down", Command: "drag-down", Context: "notes-drag"},

		// Quiz
		{Key: "1", Command: "answer-1", Context: "quiz"},
		{Key: "2", Command: "answer-2", Context: "quiz"},
		{Key: "3", Command: "answer-3", Context: "quiz"},
		{Key: "4", Command: "answer-4", Context: "quiz"},
		{Key: "enter", Command: "next-question", Context: "quiz"},
		{Key: "n", Command: "edit-name", Context: "quiz"},
		{Key: "R", Command: "restart-quiz", Context: "quiz"},
		{Key: "enter", Command: "save-name", Context: "quiz-name"},
		{Key: "esc", Command: "cancel-name", Context: "quiz-name"},

		// Shop
		{Key: "/", Command: "search", Context: "shop"},
		{Key: "h", Command: "prev-banner", Context: "shop"},
		{Key: "l", Command: "next-banner", Context: "shop"},
		{Key: "left", Command: "prev-banner", Context: "shop"},
		{Key: "right", Command: "next-banner", Context: "shop"},
		{Key: "f", Command: "toggle-favorite", Context: "shop"},
		{Key: "c", Command: "toggle-compare", Context: "shop"},
		{Key: "tab", Command: "next-tab", Context: "shop"},
		{Key: "shift+tab", Command: "prev-tab", Context: "shop"},
		{Key: "esc", Command: "clear-search", Context: "shop-search"},
		{Key: "enter", Command: "apply-search", Context: "shop-search"},
	}
}
