package quiz

import (
	"fmt"
	"strings"

	"quizkit/internal/question"
)

// UnsupportedPolicy decides how questions of an unknown type take part in a submission.
type UnsupportedPolicy int

const (
	// UnsupportedBlock keeps unsupported questions unanswerable, so the quiz cannot be submitted.
	UnsupportedBlock UnsupportedPolicy = iota
	// UnsupportedExclude skips unsupported questions for completeness and the total.
	UnsupportedExclude
)

// String returns the configuration spelling of the policy.
func (policy UnsupportedPolicy) String() string {
	switch policy {
	case UnsupportedExclude:
		return "exclude"
	default:
		return "block"
	}
}

// ParseUnsupportedPolicy reads "block" or "exclude".
func ParseUnsupportedPolicy(value string) (UnsupportedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "block":
		return UnsupportedBlock, nil
	case "exclude":
		return UnsupportedExclude, nil
	default:
		return UnsupportedBlock, fmt.Errorf("unsupported question policy %q (expected block or exclude)", value)
	}
}

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	unsupported UnsupportedPolicy
}

// WithUnsupportedPolicy selects the unsupported question policy.
func WithUnsupportedPolicy(policy UnsupportedPolicy) Option {
	return func(c *config) { c.unsupported = policy }
}

// Evaluator checks completeness and scores submissions. It holds no per-submission state.
type Evaluator struct {
	unsupported UnsupportedPolicy
}

// NewEvaluator returns an Evaluator with the default block policy unless overridden.
func NewEvaluator(opts ...Option) Evaluator {
	cfg := &config{unsupported: UnsupportedBlock}
	for _, opt := range opts {
		opt(cfg)
	}
	return Evaluator{unsupported: cfg.unsupported}
}

// Policy returns the configured unsupported question policy.
func (evaluator Evaluator) Policy() UnsupportedPolicy {
	return evaluator.unsupported
}

// ScoreResult is the outcome of one evaluated submission.
type ScoreResult struct {
	CorrectCount       int
	Total              int
	PerQuestionCorrect []bool
	Incorrect          []int
	Tier               Tier
	Percentage         float64
}

// AllAnswered reports whether every question satisfies its answered condition under the default policy.
func AllAnswered(form *Form, state State) bool {
	return NewEvaluator().AllAnswered(form, state)
}

// Evaluate scores a submission under the default policy.
func Evaluate(form *Form, state State) (ScoreResult, error) {
	return NewEvaluator().Evaluate(form, state)
}

// AllAnswered reports whether the submission is complete. A form without questions is never complete.
func (evaluator Evaluator) AllAnswered(form *Form, state State) bool {
	if form.Len() == 0 {
		return false
	}
	counted := 0
	for _, item := range form.Questions {
		if item.Unsupported && evaluator.unsupported == UnsupportedExclude {
			continue
		}
		if !isAnswered(item, state.Answer(item.Index)) {
			return false
		}
		counted++
	}
	return counted > 0
}

// Unanswered lists the indices of questions that block submission.
func (evaluator Evaluator) Unanswered(form *Form, state State) []int {
	var missing []int
	for _, item := range form.questions() {
		if item.Unsupported && evaluator.unsupported == UnsupportedExclude {
			continue
		}
		if !isAnswered(item, state.Answer(item.Index)) {
			missing = append(missing, item.Index)
		}
	}
	return missing
}

// Evaluate scores the snapshot. It refuses with IncompleteSubmissionError unless AllAnswered holds.
func (evaluator Evaluator) Evaluate(form *Form, state State) (ScoreResult, error) {
	if !evaluator.AllAnswered(form, state) {
		return ScoreResult{}, &IncompleteSubmissionError{Unanswered: evaluator.Unanswered(form, state)}
	}
	snapshot := state.Clone()
	result := ScoreResult{PerQuestionCorrect: make([]bool, len(form.Questions))}
	for _, item := range form.Questions {
		if item.Unsupported && evaluator.unsupported == UnsupportedExclude {
			continue
		}
		result.Total++
		if isCorrect(item, snapshot.Answer(item.Index)) {
			result.PerQuestionCorrect[item.Index] = true
			result.CorrectCount++
			continue
		}
		result.Incorrect = append(result.Incorrect, item.Index)
	}
	result.Tier = TierFor(result.CorrectCount, result.Total)
	result.Percentage = Percentage(result.CorrectCount, result.Total)
	return result, nil
}

// Percentage returns correct/total as a percentage, or zero when total is not positive.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func (form *Form) questions() []InteractiveQuestion {
	if form == nil {
		return nil
	}
	return form.Questions
}

func isAnswered(item InteractiveQuestion, answer Answer) bool {
	switch {
	case item.Unsupported:
		return false
	case item.Type == question.SingleAnswer:
		return countSelected(item, answer) == 1
	case item.Type == question.MultipleAnswer:
		return countSelected(item, answer) >= 1
	case item.Type == question.FreeForm:
		return strings.TrimSpace(answer.Text) != ""
	default:
		return false
	}
}

func isCorrect(item InteractiveQuestion, answer Answer) bool {
	switch {
	case item.Unsupported:
		return false
	case item.Type == question.SingleAnswer:
		return singleAnswerCorrect(item.Controls, answer)
	case item.Type == question.MultipleAnswer:
		return multipleAnswerCorrect(item.Controls, answer)
	case item.Type == question.FreeForm:
		return item.Text.Accepts(answer.Text)
	default:
		return false
	}
}

func singleAnswerCorrect(controls []Control, answer Answer) bool {
	selected := -1
	for i := range controls {
		if !answer.IsSelected(i) {
			continue
		}
		if selected >= 0 {
			return false
		}
		selected = i
	}
	return selected >= 0 && controls[selected].IsCorrect
}

func multipleAnswerCorrect(controls []Control, answer Answer) bool {
	selectedAny := false
	for i, control := range controls {
		selected := answer.IsSelected(i)
		if selected != control.IsCorrect {
			return false
		}
		selectedAny = selectedAny || selected
	}
	return selectedAny
}

// countSelected ignores flags beyond the rendered controls.
func countSelected(item InteractiveQuestion, answer Answer) int {
	count := 0
	for i := range item.Controls {
		if answer.IsSelected(i) {
			count++
		}
	}
	return count
}
