package notes

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/board"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/styles"
)

const (
	pluginID   = "notes"
	pluginName = "notes"
	pluginIcon = "N"

	defaultUndoTimeout = 4 * time.Second
	defaultLongPress   = 500 * time.Millisecond

	// Keyboard drag step sizes in cells.
	dragStepX = 4
	dragStepY = 1
)

// undoPrompt is the visible "Note deleted." snackbar.
type undoPrompt struct {
	Seq     uint64
	Message string
}

// Plugin implements the note board screen.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	board *board.Board
	unsub func()

	// View dimensions
	width  int
	height int

	// List state
	cursor    int
	scrollOff int

	// Input state
	input        textinput.Model
	inputFocused bool

	// Undo prompt, nil when hidden
	prompt *undoPrompt

	// Keyboard-driven drag in progress
	keyDrag bool

	mouseHandler *mouse.Handler

	// Commands produced by board events, flushed at the end of Update.
	queued []tea.Cmd
}

// New creates a new notes plugin.
func New() *Plugin {
	return &Plugin{}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Board exposes the underlying board session.
func (p *Plugin) Board() *board.Board { return p.board }

// Init initializes the plugin with context. The board survives re-init so
// a config reload does not drop notes.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx

	if p.board == nil {
		p.board = board.New()
	}
	if p.unsub != nil {
		p.unsub()
	}
	p.unsub = p.board.List.Subscribe(p.onEvent)

	p.board.Cancel()
	p.keyDrag = false
	p.prompt = nil
	p.queued = nil

	if p.mouseHandler == nil {
		p.mouseHandler = mouse.NewHandler()
	}
	p.mouseHandler.EndDrag()

	ti := textinput.New()
	ti.Placeholder = "Write a note…"
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.PromptStyle = styles.ListCursor
	ti.PlaceholderStyle = styles.Muted
	ti.SetValue(p.board.Input)
	p.input = ti
	p.inputFocused = false
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {
	p.board.Cancel()
	p.mouseHandler.EndDrag()
	p.keyDrag = false
}

func (p *Plugin) undoTimeout() time.Duration {
	if p.ctx != nil && p.ctx.Config != nil && p.ctx.Config.Plugins.Notes.UndoTimeout > 0 {
		return p.ctx.Config.Plugins.Notes.UndoTimeout
	}
	return defaultUndoTimeout
}

func (p *Plugin) longPressDelay() time.Duration {
	if p.ctx != nil && p.ctx.Config != nil && p.ctx.Config.Plugins.Notes.LongPress > 0 {
		return p.ctx.Config.Plugins.Notes.LongPress
	}
	return defaultLongPress
}

func (p *Plugin) keys() *keymap.Registry {
	if p.ctx != nil && p.ctx.Keymap != nil {
		return p.ctx.Keymap
	}
	return keymap.NewRegistry()
}

// onEvent reacts to board events.
func (p *Plugin) onEvent(e board.Event) {
	switch e.Kind {
	case board.EventAdded:
		p.cursor = 0
		p.scrollOff = 0
		p.ctx.Logger.Debug("notes: added", "id", e.Note.ID)

	case board.EventDeleted:
		p.prompt = &undoPrompt{Seq: e.Seq, Message: e.Message}
		p.clampCursor()
		seq, epoch := e.Seq, p.ctx.Epoch
		p.queued = append(p.queued, tea.Tick(p.undoTimeout(), func(time.Time) tea.Msg {
			return undoExpiredMsg{Seq: seq, Epoch: epoch}
		}))
		p.ctx.Logger.Debug("notes: deleted", "id", e.Note.ID, "index", e.Index, "seq", e.Seq)

	case board.EventRestored:
		p.prompt = nil
		p.cursor = e.Index
		p.ensureCursorVisible()
		p.ctx.Logger.Debug("notes: restored", "id", e.Note.ID, "index", e.Index)

	case board.EventDragStarted:
		p.ctx.Logger.Debug("notes: drag started", "id", e.Note.ID)

	case board.EventDragEnded:
		p.keyDrag = false
		p.mouseHandler.EndDrag()
	}
}

// flush returns the commands queued by board events.
func (p *Plugin) flush(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, p.queued...)
	p.queued = nil
	return tea.Batch(cmds...)
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	var cmd tea.Cmd

	switch m := m.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height

	case tea.KeyMsg:
		cmd = p.handleKey(m)

	case tea.MouseMsg:
		cmd = p.handleMouse(m)

	case longPressMsg:
		if plugin.IsStale(p.ctx, m) {
			return p, nil
		}
		if p.board.LongPress(m.Seq) {
			d := p.board.Drag()
			p.mouseHandler.StartDrag(d.X, d.Y, regionNote, d.NoteID)
		}

	case undoExpiredMsg:
		if plugin.IsStale(p.ctx, m) {
			return p, nil
		}
		if p.prompt != nil && p.prompt.Seq == m.Seq {
			p.prompt = nil
		}

	case plugin.PluginFocusedMsg:
		p.clampCursor()
	}

	return p, p.flush(cmd)
}

// handleKey processes key input.
func (p *Plugin) handleKey(m tea.KeyMsg) tea.Cmd {
	km := p.keys()
	key := m.String()

	if p.board.Drag().Active() {
		switch km.Lookup(key, "notes-drag") {
		case "drag-left":
			p.nudgeDrag(-dragStepX, 0)
		case "drag-right":
			p.nudgeDrag(dragStepX, 0)
		case "drag-up":
			p.nudgeDrag(0, -dragStepY)
		case "drag-down":
			p.nudgeDrag(0, dragStepY)
		case "drop-note":
			p.board.Release()
		case "cancel-drag", "back":
			p.board.Cancel()
		}
		return nil
	}

	if p.inputFocused {
		switch km.Lookup(key, "notes-input") {
		case "add-note":
			return p.submit()
		case "focus-list":
			p.blurInput()
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(m)
		p.board.Input = p.input.Value()
		return cmd
	}

	switch km.Lookup(key, "notes") {
	case "cursor-down":
		p.moveCursor(1)
	case "cursor-up":
		p.moveCursor(-1)
	case "focus-input":
		return p.focusInput()
	case "delete-note":
		if n, ok := p.cursorNote(); ok {
			p.board.List.DeleteByID(n.ID)
		}
	case "undo-delete":
		p.undo()
	case "move-to-trash":
		p.startKeyDrag()
	case "yank-note":
		return p.yankNote()
	case "back":
		p.board.Cancel()
	}
	return nil
}

// submit adds the input as a note.
func (p *Plugin) submit() tea.Cmd {
	p.board.Input = p.input.Value()
	if _, ok := p.board.Submit(); !ok {
		return nil
	}
	p.input.SetValue("")
	return nil
}

// undo restores the pending deletion. A visible prompt restricts undo to
// its own deletion.
func (p *Plugin) undo() bool {
	if p.prompt != nil {
		return p.board.List.UndoIf(p.prompt.Seq)
	}
	return p.board.List.Undo()
}

func (p *Plugin) focusInput() tea.Cmd {
	p.inputFocused = true
	return p.input.Focus()
}

func (p *Plugin) blurInput() {
	p.inputFocused = false
	p.input.Blur()
}

// startKeyDrag picks up the note under the cursor with the pointer at its
// row.
func (p *Plugin) startKeyDrag() {
	n, ok := p.cursorNote()
	if !ok {
		return
	}
	x, y := dragOriginX, p.rowY(p.cursor)
	if p.board.BeginDrag(n.ID, x, y) {
		p.keyDrag = true
	}
}

func (p *Plugin) nudgeDrag(dx, dy int) {
	d := p.board.Drag()
	x, y := d.X+dx, d.Y+dy
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if p.width > 0 && x >= p.width {
		x = p.width - 1
	}
	if p.height > 0 && y >= p.height {
		y = p.height - 1
	}
	p.board.Move(x, y)
}

// yankNote copies the note under the cursor to the system clipboard.
func (p *Plugin) yankNote() tea.Cmd {
	n, ok := p.cursorNote()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(n.Text); err != nil {
		p.ctx.Logger.Warn("notes: copy failed", "err", err)
		return msg.ShowErrorToast("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied note", 2*time.Second)
}

func (p *Plugin) cursorNote() (board.Note, bool) {
	notes := p.board.List.Notes()
	if p.cursor < 0 || p.cursor >= len(notes) {
		return board.Note{}, false
	}
	return notes[p.cursor], true
}

func (p *Plugin) moveCursor(delta int) {
	p.cursor += delta
	p.clampCursor()
	p.ensureCursorVisible()
}

func (p *Plugin) clampCursor() {
	n := p.board.List.Len()
	if p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *Plugin) ensureCursorVisible() {
	rows := p.visibleRows()
	if rows <= 0 {
		return
	}
	if p.cursor < p.scrollOff {
		p.scrollOff = p.cursor
	}
	if p.cursor >= p.scrollOff+rows {
		p.scrollOff = p.cursor - rows + 1
	}
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state. Losing focus cancels any gesture.
func (p *Plugin) SetFocused(f bool) {
	p.focused = f
	if !f {
		p.board.Cancel()
		p.mouseHandler.EndDrag()
		p.keyDrag = false
	}
}

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	if p.board.Drag().Active() {
		return []plugin.Command{
			{ID: "drop-note", Name: "Drop", Description: "Drop the note where the pointer is", Category: plugin.CategoryActions, Context: "notes-drag", Priority: 1},
			{ID: "cancel-drag", Name: "Cancel", Description: "Put the note back", Category: plugin.CategoryActions, Context: "notes-drag", Priority: 2},
			{ID: "drag-right", Name: "Move", Description: "Move the dragged note", Category: plugin.CategoryNavigation, Context: "notes-drag", Priority: 3},
		}
	}
	if p.inputFocused {
		return []plugin.Command{
			{ID: "add-note", Name: "Add", Description: "Add the typed note", Category: plugin.CategoryEdit, Context: "notes-input", Priority: 1},
			{ID: "focus-list", Name: "List", Description: "Back to the list", Category: plugin.CategoryNavigation, Context: "notes-input", Priority: 2},
		}
	}

	cmds := []plugin.Command{
		{ID: "focus-input", Name: "New", Description: "Type a new note", Category: plugin.CategoryEdit, Context: "notes", Priority: 1},
		{ID: "delete-note", Name: "Delete", Description: "Delete selected note", Category: plugin.CategoryActions, Context: "notes", Priority: 3},
		{ID: "move-to-trash", Name: "Drag", Description: "Drag selected note to the trash", Category: plugin.CategoryActions, Context: "notes", Priority: 4},
		{ID: "yank-note", Name: "Yank", Description: "Copy note text", Category: plugin.CategoryActions, Context: "notes", Priority: 5},
	}
	if _, ok := p.board.List.Pending(); ok {
		cmds = append(cmds,
			plugin.Command{ID: "undo-delete", Name: "Undo", Description: "Restore the last deleted note", Category: plugin.CategoryActions, Context: "notes", Priority: 2},
		)
	}
	return cmds
}

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string {
	if p.board.Drag().Active() {
		return "notes-drag"
	}
	if p.inputFocused {
		return "notes-input"
	}
	return "notes"
}

// ConsumesTextInput reports whether the note input is focused.
func (p *Plugin) ConsumesTextInput() bool {
	return p.inputFocused || p.board.Drag().Active()
}
