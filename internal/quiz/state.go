package quiz

import (
	"fmt"
	"strings"
)

// State is a snapshot of the user's input for a Form. Hosts own and mutate it; evaluation only reads it.
type State struct {
	Answers []Answer
}

// Answer is the input for one question: one flag per control, or the free text.
type Answer struct {
	Selected []bool
	Text     string
}

// NewState returns a blank state shaped for form.
func NewState(form *Form) State {
	state := State{Answers: make([]Answer, form.Len())}
	for i := range state.Answers {
		state.Answers[i].Selected = make([]bool, len(form.Questions[i].Controls))
	}
	return state
}

// Answer returns the input for the question at index; missing entries read as blank.
func (state State) Answer(index int) Answer {
	if index < 0 || index >= len(state.Answers) {
		return Answer{}
	}
	return state.Answers[index]
}

// Clone returns a deep copy so a snapshot can be kept while the host keeps editing.
func (state State) Clone() State {
	clone := State{Answers: make([]Answer, len(state.Answers))}
	for i, answer := range state.Answers {
		clone.Answers[i] = Answer{Text: answer.Text, Selected: append([]bool(nil), answer.Selected...)}
	}
	return clone
}

// IsSelected reports whether control i is selected.
func (answer Answer) IsSelected(i int) bool {
	return i >= 0 && i < len(answer.Selected) && answer.Selected[i]
}

// SelectedCount returns the number of selected controls.
func (answer Answer) SelectedCount() int {
	count := 0
	for _, selected := range answer.Selected {
		if selected {
			count++
		}
	}
	return count
}

// Response is an answer addressed by option value rather than control position.
type Response struct {
	Index    int
	Selected []string
	Text     string
}

// StateFromResponses builds a State from value-addressed responses. Unknown indices or option values are errors.
func StateFromResponses(form *Form, responses []Response) (State, error) {
	state := NewState(form)
	for _, response := range responses {
		if response.Index < 0 || response.Index >= form.Len() {
			return State{}, fmt.Errorf("answer for question %d: no such question", response.Index+1)
		}
		item := form.Questions[response.Index]
		answer := &state.Answers[response.Index]
		answer.Text = response.Text
		for _, value := range response.Selected {
			position := item.controlIndex(value)
			if position < 0 {
				return State{}, fmt.Errorf("answer for question %d: unknown option %q", response.Index+1, value)
			}
			answer.Selected[position] = true
		}
	}
	return state, nil
}

func (item InteractiveQuestion) controlIndex(value string) int {
	for _, candidate := range []string{value, strings.TrimSpace(value)} {
		for i, control := range item.Controls {
			if control.Value == candidate {
				return i
			}
		}
	}
	return -1
}
