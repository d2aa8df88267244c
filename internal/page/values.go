package page

import (
	"net/url"

	"quizkit/internal/quiz"
)

// StateFromValues reads posted form values into a State shaped for form.
// Values that match no rendered control are ignored.
func StateFromValues(form *quiz.Form, values url.Values) quiz.State {
	state := quiz.NewState(form)
	for _, item := range formQuestions(form) {
		posted := values[item.Group]
		answer := &state.Answers[item.Index]
		if item.Text != nil {
			if len(posted) > 0 {
				answer.Text = posted[0]
			}
			continue
		}
		for _, value := range posted {
			for i, control := range item.Controls {
				if control.Value == value {
					answer.Selected[i] = true
				}
			}
		}
	}
	return state
}
