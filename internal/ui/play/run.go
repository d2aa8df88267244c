package play

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizkit/internal/quiz"
)

// Run plays the quiz on the given terminal streams until the user quits.
// It returns the last score, or nil when the quiz was never scored.
func Run(ctx context.Context, form *quiz.Form, opts Options, in io.Reader, out io.Writer) (*quiz.ScoreResult, error) {
	program := tea.NewProgram(
		NewModel(form, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("play quiz: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return model.Result(), nil
}
