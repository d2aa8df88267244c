package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"quizkit/internal/question"
	"quizkit/internal/quiz"
)

// answersFile is the on-disk form of a submission. JSON files parse as YAML.
type answersFile struct {
	Answers []answerEntry `yaml:"answers"`
}

// answerEntry addresses a question by its 1-based number.
type answerEntry struct {
	Question int                `yaml:"question"`
	Selected question.AnswerKey `yaml:"selected"`
	Text     string             `yaml:"text"`
}

// runCheck builds the handler for the check command.
func runCheck(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		bankPath := flags.String("bank", "", "Path to a YAML or JSON question bank (default: built-in bank)")
		answersPath := flags.String("answers", "", "Path to a YAML or JSON answers file")
		policy := flags.String("unsupported", "block", "Unsupported question policy: block or exclude")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if *answersPath == "" {
			fmt.Fprintln(stderr, "Missing --answers")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		evaluator, ok := evaluatorFor(*policy, stderr)
		if !ok {
			return ExitUsage
		}

		form, ok := loadForm(*bankPath, stderr)
		if !ok {
			return ExitError
		}
		responses, err := loadAnswers(*answersPath)
		if err != nil {
			fmt.Fprintf(stderr, "Answers invalid: %v\n", err)
			return ExitError
		}
		state, err := quiz.StateFromResponses(form, responses)
		if err != nil {
			fmt.Fprintf(stderr, "Answers invalid: %v\n", err)
			return ExitError
		}

		result, err := evaluator.Evaluate(form, state)
		var incomplete *quiz.IncompleteSubmissionError
		if errors.As(err, &incomplete) {
			fmt.Fprintln(stderr, "Almost there! Please answer every question before submitting the quiz.")
			fmt.Fprintf(stderr, "Unanswered: %s\n", joinNumbers(incomplete.Unanswered))
			return ExitError
		}
		if err != nil {
			fmt.Fprintf(stderr, "Evaluation failed: %v\n", err)
			return ExitError
		}
		printResult(stdout, form, result)
		return ExitOK
	}
}

// loadAnswers decodes an answers file into value-addressed responses.
func loadAnswers(path string) ([]quiz.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var file answersFile
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse answers: %w", err)
	}
	responses := make([]quiz.Response, 0, len(file.Answers))
	for i, entry := range file.Answers {
		if entry.Question < 1 {
			return nil, fmt.Errorf("answers[%d].question: must be a question number starting at 1", i)
		}
		responses = append(responses, quiz.Response{
			Index:    entry.Question - 1,
			Selected: entry.Selected,
			Text:     entry.Text,
		})
	}
	return responses, nil
}

// printResult writes the per-question marks, score, and tier message.
func printResult(w io.Writer, form *quiz.Form, result quiz.ScoreResult) {
	for _, item := range form.Questions {
		mark := "✗"
		if result.PerQuestionCorrect[item.Index] {
			mark = "✓"
		}
		if item.Unsupported {
			mark = "-"
		}
		fmt.Fprintf(w, "%s %d. %s\n", mark, item.Index+1, item.Prompt)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, result.ScoreLine())
	fmt.Fprintf(w, "Tier: %s (%.0f%%)\n", result.Tier, result.Percentage)
	fmt.Fprintln(w, result.Tier.Message(form.Feedback))
}

func joinNumbers(indices []int) string {
	parts := make([]string, 0, len(indices))
	for _, index := range indices {
		parts = append(parts, fmt.Sprintf("%d", index+1))
	}
	return strings.Join(parts, ", ")
}
