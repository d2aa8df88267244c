package quiz

import (
	"testing"

	"quizkit/internal/question"
)

func sampleQuestions() []question.Question {
	return []question.Question{
		{
			Prompt:  "Who is the author of The Lord of the Rings?",
			Type:    question.SingleAnswer,
			Options: []string{"C.S. Lewis", "J.R.R. Tolkien", "George R.R. Martin", "Ursula K. Le Guin"},
			Answer:  question.AnswerKey{"J.R.R. Tolkien"},
		},
		{
			Prompt:  "Which of the following are members of the Fellowship?",
			Type:    question.MultipleAnswer,
			Options: []string{"Gimli", "Boromir", "Éowyn", "Legolas"},
			Answer:  question.AnswerKey{"Gimli", "Boromir", "Legolas"},
		},
		{
			Prompt: "What is the name of Aragorn's sword?",
			Type:   question.FreeForm,
			Answer: question.AnswerKey{"Andúril", "Anduril"},
		},
	}
}

func mustRender(t *testing.T, questions []question.Question) *Form {
	t.Helper()
	form, err := Render(questions)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return form
}

func selectValues(t *testing.T, form *Form, state *State, index int, values ...string) {
	t.Helper()
	for _, value := range values {
		position := form.Questions[index].controlIndex(value)
		if position < 0 {
			t.Fatalf("question %d has no option %q", index, value)
		}
		state.Answers[index].Selected[position] = true
	}
}

func completeState(t *testing.T, form *Form) State {
	t.Helper()
	state := NewState(form)
	selectValues(t, form, &state, 0, "J.R.R. Tolkien")
	selectValues(t, form, &state, 1, "Gimli", "Boromir", "Legolas")
	state.Answers[2].Text = "Andúril"
	return state
}
