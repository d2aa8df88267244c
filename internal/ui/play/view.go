package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizkit/internal/quiz"
)

var (
	colorTitle     = lipgloss.Color("33")
	colorCursor    = lipgloss.Color("212")
	colorIncorrect = lipgloss.Color("160")
	colorCorrect   = lipgloss.Color("34")
	colorMuted     = lipgloss.Color("242")
	colorNotice    = lipgloss.Color("214")
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	title := m.form.Title
	if title == "" {
		title = "Quiz"
	}
	sections := []string{stylize(title, m.noColor, colorTitle, true), ""}

	incorrect := map[int]bool{}
	if m.result != nil {
		for _, index := range m.result.Incorrect {
			incorrect[index] = true
		}
	}
	for _, item := range m.form.Questions {
		sections = append(sections, m.renderQuestion(item, incorrect[item.Index]))
	}

	submit := "[ Submit ]"
	if m.rows[m.cursor].submit {
		submit = stylize("> "+submit, m.noColor, colorCursor, true)
	} else {
		submit = "  " + submit
	}
	sections = append(sections, submit)

	if m.notice != "" {
		sections = append(sections, "", stylize(m.notice, m.noColor, colorNotice, false))
	}
	if m.result != nil {
		sections = append(sections, "", renderScore(*m.result, m.form, m.noColor))
	}
	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderQuestion(item quiz.InteractiveQuestion, incorrect bool) string {
	header := fmt.Sprintf("%d. %s", item.Index+1, item.Prompt)
	if incorrect {
		header = stylize("✗ "+header, m.noColor, colorIncorrect, true)
	} else if m.result != nil && m.result.PerQuestionCorrect[item.Index] {
		header = stylize("✓ "+header, m.noColor, colorCorrect, false)
	}
	lines := []string{header}
	answer := m.state.Answer(item.Index)

	switch {
	case item.Unsupported:
		lines = append(lines, "   "+stylize("Unsupported question type.", m.noColor, colorMuted, false))
	case item.Text != nil:
		lines = append(lines, m.cursorMark(row{question: item.Index, control: -1, text: true})+m.inputs[item.Index].View())
	default:
		for c, control := range item.Controls {
			lines = append(lines, m.cursorMark(row{question: item.Index, control: c})+checkbox(item.Exclusive(), answer.IsSelected(c))+" "+control.Value)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) cursorMark(target row) string {
	if m.rows[m.cursor] == target {
		return stylize(" > ", m.noColor, colorCursor, true)
	}
	return "   "
}

func checkbox(exclusive, selected bool) string {
	switch {
	case exclusive && selected:
		return "(•)"
	case exclusive:
		return "( )"
	case selected:
		return "[x]"
	default:
		return "[ ]"
	}
}

// renderScore renders the score box with the tier message.
func renderScore(result quiz.ScoreResult, form *quiz.Form, noColor bool) string {
	body := result.ScoreLine() + "\n" + result.Tier.Message(form.Feedback)
	if noColor {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorTitle).
		Padding(0, 1).
		Render(body)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color, bold bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Bold(bold).Render(text)
}
