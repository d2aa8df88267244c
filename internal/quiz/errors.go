package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyBank indicates a bank with no questions.
var ErrEmptyBank = errors.New("question bank is empty")

// MalformedBankError reports a bank that cannot be rendered.
type MalformedBankError struct {
	Diagnostic string
	Err        error
}

// Error returns the diagnostic message.
func (err *MalformedBankError) Error() string {
	if err == nil {
		return ""
	}
	if err.Diagnostic == "" {
		return "quiz data could not be loaded"
	}
	return fmt.Sprintf("quiz data could not be loaded: %s", err.Diagnostic)
}

// Unwrap exposes the underlying decode error, if any.
func (err *MalformedBankError) Unwrap() error {
	if err == nil {
		return nil
	}
	return err.Err
}

// IncompleteSubmissionError is returned when a submission leaves questions unanswered.
type IncompleteSubmissionError struct {
	Unanswered []int
}

// Error lists the unanswered question numbers.
func (err *IncompleteSubmissionError) Error() string {
	if err == nil {
		return ""
	}
	numbers := make([]string, 0, len(err.Unanswered))
	for _, index := range err.Unanswered {
		numbers = append(numbers, fmt.Sprintf("%d", index+1))
	}
	if len(numbers) == 0 {
		return "not all questions answered"
	}
	return fmt.Sprintf("not all questions answered: %s", strings.Join(numbers, ", "))
}
