package notes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/board"
	"github.com/marcus/noteboard/internal/mouse"
)

// Hit region IDs
const (
	regionInput  = "input"
	regionAdd    = "add-button"
	regionNote   = "note"
	regionTrash  = "trash"
	regionUndo   = "undo"
	regionDelete = "delete"
)

// handleMouse processes mouse events on the board.
func (p *Plugin) handleMouse(m tea.MouseMsg) tea.Cmd {
	if p.keyDrag {
		return nil
	}
	action := p.mouseHandler.HandleMouse(m)

	switch action.Type {
	case mouse.ActionClick, mouse.ActionDoubleClick:
		return p.handleMouseClick(action)

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		if action.Delta < 0 {
			p.moveCursor(-1)
		} else {
			p.moveCursor(1)
		}

	case mouse.ActionHover:
		if p.board.Drag().State == board.DragPressed {
			p.board.Move(action.X, action.Y)
		}

	case mouse.ActionDrag:
		p.board.Move(action.X, action.Y)

	case mouse.ActionDragEnd:
		p.board.Move(action.X, action.Y)
		p.board.Release()

	case mouse.ActionRelease:
		// Released before the long-press fired: a plain click.
		if p.board.Drag().State == board.DragPressed {
			p.board.Release()
		}
	}
	return nil
}

// handleMouseClick handles presses on hit regions.
func (p *Plugin) handleMouseClick(action mouse.MouseAction) tea.Cmd {
	if action.Region == nil {
		return nil
	}

	switch action.Region.ID {
	case regionInput:
		return p.focusInput()

	case regionAdd:
		return p.submit()

	case regionUndo:
		if seq, ok := action.Region.Data.(uint64); ok {
			p.board.List.UndoIf(seq)
		}

	case regionDelete:
		if id, ok := action.Region.Data.(int); ok {
			p.board.Cancel()
			p.board.List.DeleteByID(id)
		}

	case regionNote:
		id, ok := action.Region.Data.(int)
		if !ok {
			return nil
		}
		if idx := p.board.List.IndexOf(id); idx >= 0 {
			p.cursor = idx
		}
		p.blurInput()

		seq, ok := p.board.Press(id, action.X, action.Y)
		if !ok {
			return nil
		}
		epoch := p.ctx.Epoch
		return tea.Tick(p.longPressDelay(), func(time.Time) tea.Msg {
			return longPressMsg{Seq: seq, Epoch: epoch}
		})
	}
	return nil
}
