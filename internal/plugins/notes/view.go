package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/noteboard/internal/board"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/ui"
)

// Layout, in cells relative to the plugin's origin.
const (
	inputRow    = 1
	listTop     = 3
	trashWidth  = 14
	trashHeight = 3
	dragOriginX = 2
	ghostWidth  = 24

	addButtonLabel = "Add"
	trashLabel     = "Trash"
	undoLabel      = "[" + board.UndoActionLabel + "]"
	deleteGlyph    = "✕"
)

// visibleRows is the number of list rows that fit. The last line is kept
// for the undo prompt.
func (p *Plugin) visibleRows() int {
	return p.height - listTop - 1
}

// rowY returns the screen row of list index i.
func (p *Plugin) rowY(i int) int {
	return listTop + i - p.scrollOff
}

func (p *Plugin) listWidth() int {
	w := p.width - trashWidth - 2
	if w < 10 {
		w = 10
	}
	return w
}

func (p *Plugin) trashX() int {
	x := p.width - trashWidth
	if x < p.listWidth()+1 {
		x = p.listWidth() + 1
	}
	return x
}

// View renders the plugin and rebuilds its hit regions and trash target.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height
	p.mouseHandler.Clear()

	content := p.renderBoard()
	content = p.renderTrash(content)
	content = p.renderGhost(content)
	content = p.renderPrompt(content)

	// Constrain output to allocated height
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

func (p *Plugin) renderBoard() string {
	var lines []string
	listW := p.listWidth()

	// Header
	count := styles.Muted.Render(fmt.Sprintf(" (%d)", p.board.List.Len()))
	lines = append(lines, styles.Title.Render("Notes")+count)

	// Input row
	btnStyle := styles.Button
	if p.board.CanSubmit() {
		btnStyle = styles.ButtonFocused
	}
	btn := btnStyle.Render(addButtonLabel)
	btnW := lipgloss.Width(btn)
	inputW := listW - btnW - 1
	p.input.Width = inputW - lipgloss.Width(p.input.Prompt) - 1
	inputView := lipgloss.NewStyle().Width(inputW).MaxWidth(inputW).Render(p.input.View())
	lines = append(lines, inputView+" "+btn)
	p.mouseHandler.HitMap.AddRect(regionInput, 0, inputRow, inputW, 1, nil)
	p.mouseHandler.HitMap.AddRect(regionAdd, inputW+1, inputRow, btnW, 1, nil)

	lines = append(lines, "")

	notes := p.board.List.Notes()
	if len(notes) == 0 {
		lines = append(lines, styles.Muted.Render("No notes yet. Press tab to write one."))
		return strings.Join(lines, "\n")
	}

	drag := p.board.Drag()
	rows := p.visibleRows()
	for i := p.scrollOff; i < len(notes) && i < p.scrollOff+rows; i++ {
		n := notes[i]
		isCursor := i == p.cursor && !p.inputFocused

		prefix := "  "
		if isCursor {
			prefix = styles.ListCursor.Render("> ")
		}
		text := ui.PadRight(n.Text, listW-4)

		var row string
		switch {
		case p.board.Selected(n.ID):
			row = styles.NoteDragging.Render(text)
		case drag.State == board.DragPressed && drag.NoteID == n.ID:
			row = styles.NotePressed.Render(text)
		case isCursor:
			row = styles.ListItemSelected.Render(text)
		default:
			row = styles.ListItemNormal.Render(text)
		}
		lines = append(lines, prefix+row+" "+styles.Muted.Render(deleteGlyph))
		p.mouseHandler.HitMap.AddRect(regionNote, 0, p.rowY(i), listW-2, 1, n.ID)
		p.mouseHandler.HitMap.AddRect(regionDelete, listW-1, p.rowY(i), 1, 1, n.ID)
	}

	return strings.Join(lines, "\n")
}

// renderTrash draws the drop target and hands its bounds to the board.
func (p *Plugin) renderTrash(content string) string {
	style := styles.Trash
	switch d := p.board.Drag(); {
	case d.Active() && d.OverTarget:
		style = styles.TrashHot
	case d.Active():
		style = styles.TrashArmed
	}
	box := style.Width(trashWidth - 2).Render(trashLabel)

	x := p.trashX()
	p.board.SetTarget(board.RectFromCells(x, listTop, trashWidth, trashHeight))
	p.mouseHandler.HitMap.AddRect(regionTrash, x, listTop, trashWidth, trashHeight, nil)
	return ui.OverlayAt(content, box, x, listTop, p.width, p.height)
}

// renderGhost draws the dragged note next to the pointer.
func (p *Plugin) renderGhost(content string) string {
	d := p.board.Drag()
	if !d.Active() {
		return content
	}
	n, ok := p.board.List.Get(d.NoteID)
	if !ok {
		return content
	}
	w := ghostWidth
	if room := p.width - d.X - 1; room < w {
		w = room
	}
	if w <= 0 {
		return content
	}
	ghost := styles.NoteDragging.Render(ui.Truncate(n.Text, w))
	return ui.OverlayAt(content, ghost, d.X+1, d.Y, p.width, p.height)
}

// renderPrompt draws the undo snackbar along the bottom edge.
func (p *Plugin) renderPrompt(content string) string {
	if p.prompt == nil {
		return content
	}
	bar := styles.Snackbar.Render(p.prompt.Message + "  " + styles.SnackbarAction.Render(undoLabel))
	out, x, y := ui.OverlayBottom(content, bar, p.width, p.height, 0)

	// Snackbar has one cell of left padding.
	undoX := x + 1 + lipgloss.Width(p.prompt.Message) + 2
	p.mouseHandler.HitMap.AddRect(regionUndo, undoX, y, lipgloss.Width(undoLabel), 1, p.prompt.Seq)
	return out
}
