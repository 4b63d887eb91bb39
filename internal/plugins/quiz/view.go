package quiz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/styles"
	"github.com/marcus/noteboard/internal/ui"
)

// Hit region IDs
const (
	regionName   = "name-input"
	regionStart  = "start"
	regionOption = "option"
	regionNext   = "next"
)

// Layout rows
const (
	nameInputRow = 3
	startRow     = 4
	optionTop    = 5
)

const instructionsMarkdown = `## Instructions

- Enter your name above
- Press **enter** or click **Start Quiz** to begin
- Answer %d questions
- Your score is tracked as you go
- Quit and relaunch mid-quiz: your progress is restored
`

// View renders the plugin.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height
	p.mouseHandler.Clear()

	var content string
	if p.phase == phaseName {
		content = p.renderName()
	} else {
		content = p.renderQuestion()
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

func (p *Plugin) renderName() string {
	var lines []string

	title, label, button := "Quiz App", "Enter your name", "Start Quiz"
	if p.renaming {
		title, label, button = "Rename player", "New name", "Save"
	}
	lines = append(lines, styles.Title.Render(title), "", styles.Muted.Render(label))

	inputW := p.nameInput.Width + lipgloss.Width(p.nameInput.Prompt) + 1
	lines = append(lines, p.nameInput.View())
	p.mouseHandler.HitMap.AddRect(regionName, 0, nameInputRow, inputW, 1, nil)

	btnStyle := styles.Button
	if p.renaming || strings.TrimSpace(p.nameInput.Value()) != "" {
		btnStyle = styles.ButtonFocused
	}
	btn := btnStyle.Render(button)
	lines = append(lines, btn)
	p.mouseHandler.HitMap.AddRect(regionStart, 0, startRow, lipgloss.Width(btn), 1, nil)

	if !p.renaming && p.showInstructions() {
		lines = append(lines, "", p.renderInstructions())
	}
	return strings.Join(lines, "\n")
}

func (p *Plugin) showInstructions() bool {
	return p.ctx == nil || p.ctx.Config == nil || p.ctx.Config.Plugins.Quiz.ShowInstructions
}

// renderInstructions renders the markdown help, re-rendering only when the
// width changes.
func (p *Plugin) renderInstructions() string {
	wrap := p.width - 4
	if wrap < 20 {
		wrap = 20
	}
	if p.mdOut != "" && p.mdWidth == wrap {
		return p.mdOut
	}

	src := fmt.Sprintf(instructionsMarkdown, len(p.questions))
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.CurrentMarkdownTheme),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		p.ctx.Logger.Warn("quiz: glamour init failed", "err", err)
		return src
	}
	out, err := r.Render(src)
	if err != nil {
		p.ctx.Logger.Warn("quiz: render instructions", "err", err)
		return src
	}
	p.mdWidth = wrap
	p.mdOut = strings.Trim(out, "\n")
	return p.mdOut
}

func (p *Plugin) renderQuestion() string {
	s := p.session
	var lines []string

	header := styles.Title.Render("Quiz") + styles.Muted.Render(" · "+s.Player())
	score := styles.QuizScore.Render(fmt.Sprintf("Score: %d/%d", s.Score(), s.Total()))
	gap := p.width - lipgloss.Width(header) - lipgloss.Width(score)
	if gap < 2 {
		gap = 2
	}
	lines = append(lines, header+strings.Repeat(" ", gap)+score)
	lines = append(lines, styles.Muted.Render(fmt.Sprintf("Question %d of %d", s.Index()+1, s.Total())))
	lines = append(lines, "")

	q := s.Question()
	lines = append(lines, styles.Title.Render(ui.Truncate(q.Text, p.width)), "")

	optW := p.width - 2
	if optW > 50 {
		optW = 50
	}
	answered := s.ShowNext()
	for i, opt := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		mark := ""
		if answered {
			switch {
			case i == q.Correct:
				mark = " ✓"
			case i == s.Selected():
				mark = " ✗"
			}
		}
		text := ui.PadRight(label+mark, optW-2)
		style := styles.QuizOption
		if i == s.Selected() {
			style = styles.QuizOptionSelected
		}
		lines = append(lines, style.Render(text))
		p.mouseHandler.HitMap.AddRect(regionOption, 0, optionTop+i, optW, 1, i)
	}

	if answered {
		btn := styles.ButtonFocused.Render(s.NextLabel())
		lines = append(lines, "", btn)
		p.mouseHandler.HitMap.AddRect(regionNext, 0, optionTop+len(q.Options)+1, lipgloss.Width(btn), 1, nil)
	}
	return strings.Join(lines, "\n")
}

// handleMouse processes clicks on the name screen and answer options.
func (p *Plugin) handleMouse(m tea.MouseMsg) tea.Cmd {
	action := p.mouseHandler.HandleMouse(m)
	if action.Type != mouse.ActionClick && action.Type != mouse.ActionDoubleClick {
		return nil
	}
	if action.Region == nil {
		return nil
	}

	switch action.Region.ID {
	case regionName:
		return p.nameInput.Focus()
	case regionStart:
		return p.submitName()
	case regionOption:
		if i, ok := action.Region.Data.(int); ok {
			return p.answer(i)
		}
	case regionNext:
		return p.next()
	}
	return nil
}
