package quiz

import (
	"errors"
	"fmt"

	"quizkit/internal/question"
)

// Form is the rendered, interactive view of a bank. It is never mutated after Render returns.
type Form struct {
	Title     string
	Feedback  question.Feedback
	Questions []InteractiveQuestion
}

// InteractiveQuestion carries the controls for one bank question with frozen correctness metadata.
type InteractiveQuestion struct {
	Index       int
	Type        question.Type
	Prompt      string
	Group       string
	Controls    []Control
	Text        *TextControl
	Unsupported bool
}

// Control is one selectable option.
type Control struct {
	Value     string
	IsCorrect bool
}

// TextControl is the free-text entry of a free-form question.
type TextControl struct {
	AcceptableAnswers []string
}

// Accepts reports whether input matches one of the acceptable answers.
func (control *TextControl) Accepts(input string) bool {
	if control == nil {
		return false
	}
	normalized := question.NormalizeAnswerText(input)
	for _, answer := range control.AcceptableAnswers {
		if answer == normalized {
			return true
		}
	}
	return false
}

// Exclusive reports whether at most one control may be selected at a time.
func (item InteractiveQuestion) Exclusive() bool {
	return item.Type == question.SingleAnswer
}

// Len returns the number of questions, or zero for a nil form.
func (form *Form) Len() int {
	if form == nil {
		return 0
	}
	return len(form.Questions)
}

// GroupName derives the control-group identity for the question at index.
func GroupName(index int) string {
	return fmt.Sprintf("question%d", index+1)
}

// Render builds a fresh Form for the questions. An empty list yields a MalformedBankError.
func Render(questions []question.Question) (*Form, error) {
	if len(questions) == 0 {
		return nil, &MalformedBankError{Diagnostic: "the question bank is empty", Err: ErrEmptyBank}
	}
	items := make([]InteractiveQuestion, 0, len(questions))
	for index, q := range questions {
		items = append(items, renderQuestion(index, q))
	}
	return &Form{Questions: items}, nil
}

// RenderBank renders a decoded bank, keeping its title and feedback.
func RenderBank(bank question.Bank) (*Form, error) {
	form, err := Render(bank.Questions)
	if err != nil {
		return nil, err
	}
	form.Title = bank.Title
	form.Feedback = bank.Feedback
	return form, nil
}

// RenderData decodes raw bank data and renders it. Decode failures are reported as a MalformedBankError.
func RenderData(data []byte, format question.Format) (*Form, error) {
	bank, err := question.Decode(data, format)
	if err != nil {
		diagnostic := err.Error()
		if errors.Is(err, question.ErrUnrecognizedBank) {
			diagnostic = "the question bank is not a list of questions"
		}
		return nil, &MalformedBankError{Diagnostic: diagnostic, Err: err}
	}
	return RenderBank(bank)
}

func renderQuestion(index int, q question.Question) InteractiveQuestion {
	item := InteractiveQuestion{
		Index:  index,
		Type:   q.Type,
		Prompt: q.Prompt,
		Group:  GroupName(index),
	}
	switch q.Type {
	case question.SingleAnswer:
		var answer string
		if len(q.Answer) > 0 {
			answer = q.Answer[0]
		}
		item.Controls = make([]Control, 0, len(q.Options))
		for _, option := range q.Options {
			item.Controls = append(item.Controls, Control{Value: option, IsCorrect: option == answer})
		}
	case question.MultipleAnswer:
		item.Controls = make([]Control, 0, len(q.Options))
		for _, option := range q.Options {
			item.Controls = append(item.Controls, Control{Value: option, IsCorrect: q.Answer.Contains(option)})
		}
	case question.FreeForm:
		accepted := make([]string, 0, len(q.Answer))
		for _, answer := range q.Answer {
			normalized := question.NormalizeAnswerText(answer)
			if normalized == "" {
				continue
			}
			accepted = append(accepted, normalized)
		}
		item.Text = &TextControl{AcceptableAnswers: accepted}
	default:
		item.Unsupported = true
	}
	return item
}
