package page

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"quizkit/internal/question"
	"quizkit/internal/quiz"
)

//go:generate templ generate

// NoticeIncomplete is shown when a submission leaves questions unanswered.
const NoticeIncomplete = "Almost there! Please answer every question before submitting the quiz."

// FailureHeading is shown when the bank cannot be rendered.
const FailureHeading = "Quiz data could not be loaded."

const defaultTitle = "Quiz"

// View is everything the quiz page shows for one request.
type View struct {
	Form   *quiz.Form
	State  quiz.State
	Result *quiz.ScoreResult
	Notice string
	// StylesheetURL links the stylesheet; when empty the embedded stylesheet is inlined.
	StylesheetURL string
	// Action is the form submission target. Static pages leave it empty and render no submit form.
	Action string
}

// Render writes a component into a string.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var builder strings.Builder
	if err := component.Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func pageTitle(form *quiz.Form) string {
	if form != nil && form.Title != "" {
		return form.Title
	}
	return defaultTitle
}

func formQuestions(form *quiz.Form) []quiz.InteractiveQuestion {
	if form == nil {
		return nil
	}
	return form.Questions
}

func formFeedback(form *quiz.Form) question.Feedback {
	if form == nil {
		return question.Feedback{}
	}
	return form.Feedback
}

func isIncorrect(result *quiz.ScoreResult, index int) bool {
	if result == nil {
		return false
	}
	for _, incorrect := range result.Incorrect {
		if incorrect == index {
			return true
		}
	}
	return false
}

func questionClass(item quiz.InteractiveQuestion, incorrect bool) string {
	classes := "question " + string(item.Type)
	if item.Unsupported {
		classes = "question unsupported-type"
	}
	if incorrect {
		classes += " incorrect"
	}
	return classes
}

func controlType(item quiz.InteractiveQuestion) string {
	if item.Exclusive() {
		return "radio"
	}
	return "checkbox"
}

// inlineStylesheet returns the embedded stylesheet as a style element, or nothing if it cannot be read.
func inlineStylesheet() string {
	css, err := Stylesheet()
	if err != nil {
		return ""
	}
	return "<style>" + css + "</style>"
}
