package quiz

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quizkit/internal/question"
)

// TestLoadFormDefault verifies the embedded bank is used when no path is given.
func TestLoadFormDefault(t *testing.T) {
	form, err := LoadForm("", true)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if form.Len() != 10 {
		t.Fatalf("expected 10 questions, got %d", form.Len())
	}
}

// TestLoadFormMissingFile verifies unreadable banks are malformed, not fatal.
func TestLoadFormMissingFile(t *testing.T) {
	_, err := LoadForm(filepath.Join(t.TempDir(), "missing.yml"), false)
	var malformed *MalformedBankError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected malformed bank error, got %v", err)
	}
}

// TestLoadFormStrict verifies validation only applies in strict mode.
func TestLoadFormStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yml")
	payload := "- question: Pick one\n  type: single-answer\n  options: [a, b]\n  answer: c\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	if _, err := LoadForm(path, false); err != nil {
		t.Fatalf("expected lenient load to render, got %v", err)
	}
	_, err := LoadForm(path, true)
	var validationErr *question.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
