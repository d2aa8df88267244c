package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestCheckCommandScores verifies an answers file is scored with per-question marks.
func TestCheckCommandScores(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	answersPath := writeFile(t, "answers.yml", `answers:
  - question: 1
    selected: "4"
  - question: 2
    selected: ["2"]
  - question: 3
    text: " THREE "
`)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"check", "--bank", bankPath, "--answers", answersPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
	output := stdout.String()
	for _, fragment := range []string{"✓ 1. 2 + 2?", "✗ 2. Even numbers", "✓ 3. Spell 3", "Your Score: 2 / 3", "Tier: good (67%)"} {
		if !strings.Contains(output, fragment) {
			t.Fatalf("expected %q in %q", fragment, output)
		}
	}
}

// TestCheckCommandJSONAnswers verifies JSON answers files are accepted.
func TestCheckCommandJSONAnswers(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	answersPath := writeFile(t, "answers.json", `{"answers":[
		{"question":1,"selected":["4"]},
		{"question":2,"selected":["2","4"]},
		{"question":3,"text":"three"}
	]}`)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"check", "--bank", bankPath, "--answers", answersPath}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Tier: perfect") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

// TestCheckCommandIncomplete verifies unanswered questions are reported and not scored.
func TestCheckCommandIncomplete(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	answersPath := writeFile(t, "answers.yml", "answers:\n  - question: 1\n    selected: \"4\"\n")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"check", "--bank", bankPath, "--answers", answersPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "Unanswered: 2, 3") || strings.Contains(stdout.String(), "Your Score") {
		t.Fatalf("unexpected output %q / %q", stdout.String(), stderr.String())
	}
}

// TestCheckCommandErrors verifies argument and answers-file errors.
func TestCheckCommandErrors(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	cases := []struct {
		name string
		args []string
		code int
	}{
		{name: "missing answers", args: []string{"check", "--bank", bankPath}, code: ExitUsage},
		{name: "bad policy", args: []string{"check", "--answers", "x.yml", "--unsupported", "skip"}, code: ExitUsage},
		{name: "unknown option", args: []string{"check", "--bank", bankPath, "--answers", writeFile(t, "a.yml", "answers:\n  - question: 1\n    selected: \"5\"\n")}, code: ExitError},
		{name: "question zero", args: []string{"check", "--bank", bankPath, "--answers", writeFile(t, "b.yml", "answers:\n  - question: 0\n")}, code: ExitError},
		{name: "unknown field", args: []string{"check", "--bank", bankPath, "--answers", writeFile(t, "c.yml", "answers:\n  - number: 1\n")}, code: ExitError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := Run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("expected exit %d, got %d: %s", tc.code, code, stderr.String())
			}
		})
	}
}
