package quiz

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/noteboard/internal/keymap"
	"github.com/marcus/noteboard/internal/mouse"
	"github.com/marcus/noteboard/internal/msg"
	"github.com/marcus/noteboard/internal/plugin"
	"github.com/marcus/noteboard/internal/quiz"
	"github.com/marcus/noteboard/internal/state"
	"github.com/marcus/noteboard/internal/styles"
)

const (
	pluginID   = "quiz"
	pluginName = "quiz"
	pluginIcon = "Q"

	answerToastDuration = 1500 * time.Millisecond
	finishToastDuration = 3 * time.Second
)

type phase int

const (
	phaseName phase = iota
	phaseQuestion
)

// Plugin implements the quiz screen.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	questions []quiz.Question
	loadErr   error

	session  *quiz.Session
	phase    phase
	renaming bool

	nameInput textinput.Model

	width  int
	height int

	mouseHandler *mouse.Handler

	// Rendered instructions, keyed by wrap width.
	mdWidth int
	mdOut   string
}

// New creates a new quiz plugin.
func New() *Plugin {
	return &Plugin{mouseHandler: mouse.NewHandler()}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Session returns the run in progress, or nil on the name screen.
func (p *Plugin) Session() *quiz.Session { return p.session }

// Init loads the question bank and resets to the name screen. A bank that
// fails to load falls back to the built-in questions.
func (p *Plugin) Init(ctx *plugin.Context) error {
	p.ctx = ctx
	p.loadErr = nil

	path := ""
	if ctx.Config != nil {
		path = ctx.Config.Plugins.Quiz.QuestionsFile
	}
	qs, err := quiz.LoadFile(path)
	if err != nil {
		ctx.Logger.Warn("quiz: question bank unusable, using built-in questions", "path", path, "err", err)
		p.loadErr = err
		qs = quiz.DefaultQuestions()
	}
	p.questions = qs
	p.mdOut = ""

	p.resetToName()
	return nil
}

// Start reports a bank load failure once the program is running.
func (p *Plugin) Start() tea.Cmd {
	if p.loadErr != nil {
		return msg.ShowErrorToast("Question bank: "+p.loadErr.Error(), finishToastDuration)
	}
	return nil
}

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// SaveInstanceState returns the run in progress. The name screen saves an
// empty bundle so a finished quiz is not brought back.
func (p *Plugin) SaveInstanceState() state.Bundle {
	if p.session == nil {
		return state.NewBundle()
	}
	return p.session.Save()
}

// RestoreInstanceState resumes a saved run.
func (p *Plugin) RestoreInstanceState(b state.Bundle) {
	if b.Empty() {
		return
	}
	p.session = quiz.Restore(p.questions, b)
	p.phase = phaseQuestion
	p.renaming = false
	p.nameInput.Blur()
	p.ctx.Logger.Debug("quiz: restored", "player", p.session.Player(),
		"question", p.session.Index(), "score", p.session.Score())
}

func (p *Plugin) keys() *keymap.Registry {
	if p.ctx != nil && p.ctx.Keymap != nil {
		return p.ctx.Keymap
	}
	return keymap.NewRegistry()
}

func (p *Plugin) newNameInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your name"
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Width = 30
	ti.PromptStyle = styles.ListCursor
	ti.PlaceholderStyle = styles.Muted
	ti.Focus()
	return ti
}

// resetToName drops the run and shows an empty name screen.
func (p *Plugin) resetToName() {
	p.session = nil
	p.phase = phaseName
	p.renaming = false
	p.nameInput = p.newNameInput()
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case tea.WindowSizeMsg:
		p.width = m.Width
		p.height = m.Height

	case tea.KeyMsg:
		return p, p.handleKey(m)

	case tea.MouseMsg:
		return p, p.handleMouse(m)
	}
	return p, nil
}

func (p *Plugin) handleKey(m tea.KeyMsg) tea.Cmd {
	km := p.keys()
	key := m.String()

	if p.phase == phaseName {
		switch km.Lookup(key, "quiz-name") {
		case "save-name":
			return p.submitName()
		case "cancel-name":
			p.cancelRename()
			return nil
		}
		var cmd tea.Cmd
		p.nameInput, cmd = p.nameInput.Update(m)
		return cmd
	}

	switch cmd := km.Lookup(key, "quiz"); cmd {
	case "answer-1", "answer-2", "answer-3", "answer-4":
		n, _ := strconv.Atoi(strings.TrimPrefix(cmd, "answer-"))
		return p.answer(n - 1)
	case "next-question":
		return p.next()
	case "edit-name":
		return p.startRename()
	case "restart-quiz":
		p.restart()
	}
	return nil
}

// submitName starts a run, or renames the player when editing mid-run.
// A blank name cannot start a run.
func (p *Plugin) submitName() tea.Cmd {
	name := p.nameInput.Value()
	if p.renaming {
		p.session.SetPlayer(name)
		p.renaming = false
		p.phase = phaseQuestion
		p.nameInput.Blur()
		return nil
	}
	if strings.TrimSpace(name) == "" {
		return nil
	}
	p.session = quiz.NewSession(p.questions, name)
	p.phase = phaseQuestion
	p.nameInput.Blur()
	p.ctx.Logger.Debug("quiz: started", "player", p.session.Player(), "questions", p.session.Total())
	return nil
}

func (p *Plugin) startRename() tea.Cmd {
	p.renaming = true
	p.phase = phaseName
	p.nameInput.SetValue(p.session.Player())
	p.nameInput.CursorEnd()
	return p.nameInput.Focus()
}

func (p *Plugin) cancelRename() {
	if !p.renaming {
		return
	}
	p.renaming = false
	p.phase = phaseQuestion
	p.nameInput.Blur()
}

// answer selects option i and toasts the verdict.
func (p *Plugin) answer(i int) tea.Cmd {
	if p.session == nil {
		return nil
	}
	r, ok := p.session.Answer(i)
	if !ok {
		return nil
	}
	if r.Correct {
		return msg.ShowToast(r.Message(), answerToastDuration)
	}
	return msg.ShowErrorToast(r.Message(), answerToastDuration)
}

// next advances the run. Finishing clears the saved run and returns to the
// name screen.
func (p *Plugin) next() tea.Cmd {
	if p.session == nil || !p.session.ShowNext() {
		return nil
	}
	if !p.session.Next() {
		return nil
	}
	done := p.session.CompletionMessage()
	p.ctx.Logger.Info("quiz: finished", "player", p.session.Player(),
		"score", p.session.Score(), "total", p.session.Total())
	p.clearSaved()
	p.resetToName()
	return msg.ShowToast(done, finishToastDuration)
}

func (p *Plugin) restart() {
	p.clearSaved()
	p.resetToName()
}

func (p *Plugin) clearSaved() {
	if err := state.ClearBundle(pluginID); err != nil {
		p.ctx.Logger.Warn("quiz: clear saved state", "err", err)
	}
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	if p.phase == phaseName {
		if p.renaming {
			return []plugin.Command{
				{ID: "save-name", Name: "Save", Description: "Save player name", Category: plugin.CategoryEdit, Context: "quiz-name", Priority: 1},
				{ID: "cancel-name", Name: "Cancel", Description: "Keep current name", Category: plugin.CategoryNavigation, Context: "quiz-name", Priority: 2},
			}
		}
		return []plugin.Command{
			{ID: "save-name", Name: "Start", Description: "Start the quiz", Category: plugin.CategoryActions, Context: "quiz-name", Priority: 1},
		}
	}

	var cmds []plugin.Command
	if p.session != nil && p.session.ShowNext() {
		cmds = append(cmds, plugin.Command{ID: "next-question", Name: p.session.NextLabel(), Description: "Advance the quiz", Category: plugin.CategoryNavigation, Context: "quiz", Priority: 1})
	} else {
		cmds = append(cmds, plugin.Command{ID: "answer-1", Name: "Answer", Description: "Pick an option", Category: plugin.CategoryActions, Context: "quiz", Priority: 1})
	}
	cmds = append(cmds,
		plugin.Command{ID: "edit-name", Name: "Rename", Description: "Change player name", Category: plugin.CategoryEdit, Context: "quiz", Priority: 3},
		plugin.Command{ID: "restart-quiz", Name: "Restart", Description: "Start over", Category: plugin.CategoryActions, Context: "quiz", Priority: 4},
	)
	return cmds
}

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string {
	if p.phase == phaseName {
		return "quiz-name"
	}
	return "quiz"
}

// ConsumesTextInput reports whether the name field is active.
func (p *Plugin) ConsumesTextInput() bool {
	return p.phase == phaseName
}
