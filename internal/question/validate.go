package question

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate reports load-time defects in a bank. Rendering does not require a valid bank.
func Validate(bank Bank) error {
	collector := &issueCollector{}
	if bank.Version != 0 && bank.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", bank.Version))
	}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, question := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if id := strings.TrimSpace(question.ID); id != "" {
			if _, exists := seenIDs[id]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", id))
			} else {
				seenIDs[id] = struct{}{}
			}
		}
		if strings.TrimSpace(question.Prompt) == "" {
			collector.add(prefix+".question", "is required")
		}

		switch question.Type {
		case SingleAnswer, MultipleAnswer:
			validateOptions(collector, prefix, question)
			validateChoiceAnswer(collector, prefix, question)
		case FreeForm:
			validateFreeFormAnswer(collector, prefix, question)
		case "":
			collector.add(prefix+".type", "is required")
		default:
			collector.add(prefix+".type", fmt.Sprintf("unsupported type %q", question.Type))
		}
	}
	return collector.result()
}

func validateOptions(collector *issueCollector, prefix string, question Question) {
	if len(question.Options) == 0 {
		collector.add(prefix+".options", "must include at least one entry")
		return
	}
	seen := map[string]struct{}{}
	for i, option := range question.Options {
		field := fmt.Sprintf("%s.options[%d]", prefix, i)
		if strings.TrimSpace(option) == "" {
			collector.add(field, "is required")
			continue
		}
		if _, exists := seen[option]; exists {
			collector.add(field, fmt.Sprintf("duplicate option %q", option))
			continue
		}
		seen[option] = struct{}{}
	}
}

func validateChoiceAnswer(collector *issueCollector, prefix string, question Question) {
	field := prefix + ".answer"
	if len(question.Answer) == 0 {
		collector.add(field, "must include at least one entry")
		return
	}
	if question.Type == SingleAnswer && len(question.Answer) != 1 {
		collector.add(field, fmt.Sprintf("single-answer questions take exactly one answer, got %d", len(question.Answer)))
	}
	seen := map[string]struct{}{}
	for i, answer := range question.Answer {
		entry := fmt.Sprintf("%s[%d]", field, i)
		if _, exists := seen[answer]; exists {
			collector.add(entry, fmt.Sprintf("duplicate answer %q", answer))
			continue
		}
		seen[answer] = struct{}{}
		if !contains(question.Options, answer) {
			collector.add(entry, fmt.Sprintf("unknown answer %q", answer))
		}
	}
}

func validateFreeFormAnswer(collector *issueCollector, prefix string, question Question) {
	for _, answer := range question.Answer {
		if NormalizeAnswerText(answer) != "" {
			return
		}
	}
	collector.add(prefix+".answer", "must include at least one non-empty entry")
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
