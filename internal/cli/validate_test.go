package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestValidateCommandSuccess verifies a clean bank passes.
func TestValidateCommandSuccess(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--bank", bankPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Bank OK (3 questions)") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

// TestValidateCommandDefaultBank verifies the built-in bank validates.
func TestValidateCommandDefaultBank(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
}

// TestValidateCommandReportsIssues verifies issues are listed by field.
func TestValidateCommandReportsIssues(t *testing.T) {
	bankPath := writeFile(t, "bank.json", `[{"question":"Pick","type":"single-answer","options":["a","a"],"answer":"b"}]`)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--bank", bankPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	output := stderr.String()
	for _, fragment := range []string{"Validation failed:", "questions[0].options[1]", "questions[0].answer[0]"} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in %q", fragment, output)
		}
	}
}

// TestValidateCommandRejectsArgs verifies positional arguments are usage errors.
func TestValidateCommandRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "extra"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
