package play

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quizkit/internal/quiz"
)

// NoticeIncomplete is shown when the quiz is submitted with unanswered questions.
const NoticeIncomplete = "Almost there! Please answer every question before submitting the quiz."

// Options configures the terminal quiz.
type Options struct {
	NoColor   bool
	Evaluator quiz.Evaluator
}

// row is one focusable line: a choice control, a text field, or the submit button.
type row struct {
	question int
	control  int
	text     bool
	submit   bool
}

// Model is the Bubble Tea model of an interactive quiz.
type Model struct {
	form      *quiz.Form
	evaluator quiz.Evaluator
	state     quiz.State
	rows      []row
	cursor    int
	inputs    []textinput.Model
	result    *quiz.ScoreResult
	notice    string
	keys      keyMap
	help      help.Model
	noColor   bool
	quitting  bool
}

// NewModel constructs a quiz model over a rendered form.
func NewModel(form *quiz.Form, opts Options) Model {
	m := Model{
		form:      form,
		evaluator: opts.Evaluator,
		keys:      defaultKeyMap(),
		help:      help.New(),
		noColor:   opts.NoColor,
	}
	for _, item := range form.Questions {
		for c := range item.Controls {
			m.rows = append(m.rows, row{question: item.Index, control: c})
		}
		if item.Text != nil {
			m.rows = append(m.rows, row{question: item.Index, control: -1, text: true})
		}
	}
	m.rows = append(m.rows, row{question: -1, control: -1, submit: true})
	m.reset()
	return m
}

// reset restores the unanswered state.
func (m *Model) reset() {
	m.state = quiz.NewState(m.form)
	m.inputs = make([]textinput.Model, m.form.Len())
	for _, item := range m.form.Questions {
		if item.Text == nil {
			continue
		}
		input := textinput.New()
		input.Placeholder = "Type your answer"
		input.Prompt = "› "
		input.CharLimit = 200
		m.inputs[item.Index] = input
	}
	m.result = nil
	m.notice = ""
	m.cursor = 0
	m.focus()
}

// focus focuses the text field under the cursor and blurs the rest.
func (m *Model) focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	current := m.rows[m.cursor]
	if current.text {
		cmd = m.inputs[current.question].Focus()
	}
	return cmd
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	current := m.rows[m.cursor]
	if current.text {
		var cmd tea.Cmd
		m.inputs[current.question], cmd = m.inputs[current.question].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.rows[m.cursor]
	if current.text && !textNavigation(msg.String()) {
		var cmd tea.Cmd
		m.inputs[current.question], cmd = m.inputs[current.question].Update(msg)
		m.state.Answers[current.question].Text = m.inputs[current.question].Value()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m, m.move(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.move(1)
	case key.Matches(msg, m.keys.Toggle):
		m.toggle(current)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, m.focus()
	case key.Matches(msg, m.keys.Submit):
		if current.submit {
			m.submit()
			return m, nil
		}
		return m, m.move(1)
	}
	return m, nil
}

// move shifts the cursor, clamped to the row list.
func (m *Model) move(delta int) tea.Cmd {
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	return m.focus()
}

// toggle flips a choice control. Single-answer questions keep at most one selection.
func (m *Model) toggle(current row) {
	if current.text || current.submit {
		return
	}
	item := m.form.Questions[current.question]
	selected := m.state.Answers[current.question].Selected
	if item.Exclusive() {
		was := selected[current.control]
		clear(selected)
		selected[current.control] = !was
		return
	}
	selected[current.control] = !selected[current.control]
}

// submit scores the current snapshot or shows the incomplete notice.
func (m *Model) submit() {
	m.notice = ""
	m.result = nil
	result, err := m.evaluator.Evaluate(m.form, m.state.Clone())
	var incomplete *quiz.IncompleteSubmissionError
	if errors.As(err, &incomplete) {
		m.notice = NoticeIncomplete
		return
	}
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.result = &result
}

// Result returns the last score, if the quiz was scored.
func (m Model) Result() *quiz.ScoreResult {
	return m.result
}

// State returns the current input snapshot.
func (m Model) State() quiz.State {
	return m.state.Clone()
}
